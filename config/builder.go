package config

// Builder assembles a Config fluently. It is seeded from FromEnv, so builder
// setters apply after environment resolution and win per-field when called.
type Builder struct {
	cfg Config
}

// NewBuilder returns a Builder seeded from the environment-resolved record.
func NewBuilder() *Builder {
	return &Builder{cfg: FromEnv()}
}

// TracingEnabled sets whether span export is enabled.
func (b *Builder) TracingEnabled(enabled bool) *Builder {
	b.cfg.TracingEnabled = enabled
	return b
}

// MetricsEnabled sets whether the metrics client is enabled.
func (b *Builder) MetricsEnabled(enabled bool) *Builder {
	b.cfg.MetricsEnabled = enabled
	return b
}

// Service sets the service name.
func (b *Builder) Service(service string) *Builder {
	b.cfg.Service = service
	return b
}

// Environment sets the deployment environment label.
func (b *Builder) Environment(env string) *Builder {
	b.cfg.Environment = env
	return b
}

// AgentURL sets the trace agent address.
func (b *Builder) AgentURL(url string) *Builder {
	b.cfg.AgentURL = url
	return b
}

// LogFilter sets the severity filter expression.
func (b *Builder) LogFilter(filter string) *Builder {
	b.cfg.LogFilter = filter
	return b
}

// StatsdHost sets the StatsD transport host.
func (b *Builder) StatsdHost(host string) *Builder {
	b.cfg.StatsdHost = host
	return b
}

// StatsdPort sets the StatsD transport port.
func (b *Builder) StatsdPort(port int) *Builder {
	b.cfg.StatsdPort = port
	return b
}

// MetricsPrefix sets the metrics namespace prefix.
func (b *Builder) MetricsPrefix(prefix string) *Builder {
	b.cfg.MetricsPrefix = prefix
	return b
}

// Tag adds a static tag attached to every emitted metric. A later Tag with
// the same key replaces the earlier value.
func (b *Builder) Tag(key, value string) *Builder {
	if b.cfg.Tags == nil {
		b.cfg.Tags = make(map[string]string)
	}
	b.cfg.Tags[key] = value
	return b
}

// Tags adds all entries of the given map as static tags.
func (b *Builder) Tags(tags map[string]string) *Builder {
	for k, v := range tags {
		b.Tag(k, v)
	}
	return b
}

// Build returns the assembled record as an independent value.
func (b *Builder) Build() Config {
	cfg := b.cfg
	cfg.Tags = cloneTags(b.cfg.Tags)
	return cfg
}
