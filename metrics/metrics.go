package metrics

import (
	"io"
	"net"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/DataDog/datadog-go/v5/statsd"

	"github.com/sidewayslabs/sideways/config"
	"github.com/sidewayslabs/sideways/errors"
	"github.com/sidewayslabs/sideways/logger"
)

// holder wraps the client interface so it can live in an atomic.Pointer.
type holder struct {
	client statsd.ClientInterface
}

// global is the ambient metrics client: installed once by Init, read by
// every emission call for the rest of process life.
var global atomic.Pointer[holder]

// Init constructs the StatsD client and installs it as the ambient client.
// It dials the configured host:port over UDP from an ephemeral local
// endpoint; buffering, batching, and asynchronous dispatch are owned by
// the wrapped client. A second call returns ErrCodeAlreadyInitialized and
// leaves the first client in place.
func Init(cfg config.Config) error {
	logger.Info("initializing metrics", logger.Fields(
		"host", cfg.StatsdHost,
		"port", cfg.StatsdPort,
		"prefix", cfg.MetricsPrefix,
	))

	addr := net.JoinHostPort(cfg.StatsdHost, strconv.Itoa(cfg.StatsdPort))
	raddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return errors.Wrap(errors.ErrCodeSocketBind, "resolving statsd address "+addr, err)
	}
	conn, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		return errors.Wrap(errors.ErrCodeSocketBind, "dialing statsd address "+addr, err)
	}

	if err := InitWithWriter(cfg, conn); err != nil {
		_ = conn.Close()
		return err
	}
	return nil
}

// InitWithWriter wraps the given transport with the configured namespace
// prefix and static tags and installs the result as the ambient client.
// It backs Init and lets tests and custom transports bypass the network.
func InitWithWriter(cfg config.Config, w io.WriteCloser) error {
	opts := []statsd.Option{}
	if cfg.MetricsPrefix != "" {
		prefix := cfg.MetricsPrefix
		if !strings.HasSuffix(prefix, ".") {
			prefix += "."
		}
		opts = append(opts, statsd.WithNamespace(prefix))
	}
	if len(cfg.Tags) > 0 {
		opts = append(opts, statsd.WithTags(formatTags(cfg.Tags)))
	}

	client, err := statsd.NewWithWriter(w, opts...)
	if err != nil {
		return errors.Wrap(errors.ErrCodeSinkCreation, "creating metric sink", err)
	}

	if !global.CompareAndSwap(nil, &holder{client: client}) {
		_ = client.Close()
		return errors.New(errors.ErrCodeAlreadyInitialized, "ambient metrics client already installed")
	}

	logger.Info("metrics initialized")
	return nil
}

// Client returns the ambient client, or nil if metrics were never
// initialized (or initialization was skipped/failed).
func Client() statsd.ClientInterface {
	if h := global.Load(); h != nil {
		return h.client
	}
	return nil
}

// formatTags renders a tag map as "key:value" pairs in stable order.
func formatTags(tags map[string]string) []string {
	out := make([]string, 0, len(tags))
	for k, v := range tags {
		out = append(out, k+":"+v)
	}
	sort.Strings(out)
	return out
}
