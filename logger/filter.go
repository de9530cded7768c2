package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sidewayslabs/sideways/config"
)

// directive is a single parsed filter clause: a minimum level, optionally
// scoped to a target prefix.
type directive struct {
	target string
	level  zerolog.Level
}

// Filter is a parsed severity filter expression. An expression is a
// comma-separated list of directives, each either a bare level ("warn") or
// a target-scoped level ("storage=debug"). The bare level is the default
// floor; the longest matching target prefix wins.
type Filter struct {
	def        zerolog.Level
	directives []directive
}

// DefaultFilter is the hardcoded fallback: a plain "info" floor.
func DefaultFilter() Filter {
	return Filter{def: zerolog.InfoLevel}
}

// ParseFilter parses a severity filter expression.
func ParseFilter(expr string) (Filter, error) {
	f := Filter{def: zerolog.InfoLevel}
	if strings.TrimSpace(expr) == "" {
		return Filter{}, fmt.Errorf("empty filter expression")
	}

	sawDefault := false
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if target, levelName, ok := strings.Cut(part, "="); ok {
			target = strings.TrimSpace(target)
			level, err := zerolog.ParseLevel(strings.TrimSpace(levelName))
			if err != nil || target == "" {
				return Filter{}, fmt.Errorf("invalid directive %q", part)
			}
			f.directives = append(f.directives, directive{target: target, level: level})
			continue
		}

		level, err := zerolog.ParseLevel(part)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid level %q", part)
		}
		f.def = level
		sawDefault = true
	}

	if !sawDefault && len(f.directives) == 0 {
		return Filter{}, fmt.Errorf("no directives in %q", expr)
	}
	return f, nil
}

// Level returns the effective minimum level for a target.
func (f Filter) Level(target string) zerolog.Level {
	level := f.def
	best := -1
	for _, d := range f.directives {
		if strings.HasPrefix(target, d.target) && len(d.target) > best {
			best = len(d.target)
			level = d.level
		}
	}
	return level
}

// Enabled reports whether a record at the given level for the given target
// passes the filter.
func (f Filter) Enabled(target string, level zerolog.Level) bool {
	return level >= f.Level(target)
}

// ResolveFilter builds a Filter for the given configuration, falling through
// on any parse failure: the raw environment value first, then the configured
// expression, then the hardcoded "info" floor. It is total and never fails.
func ResolveFilter(cfg config.Config) Filter {
	if expr, ok := os.LookupEnv(config.EnvLogFilter); ok {
		f, err := ParseFilter(expr)
		if err == nil {
			return f
		}
		fmt.Fprintf(os.Stderr, "[logger] warning: ignoring unparseable %s=%q: %v\n", config.EnvLogFilter, expr, err)
	}

	if cfg.LogFilter != "" {
		f, err := ParseFilter(cfg.LogFilter)
		if err == nil {
			return f
		}
		fmt.Fprintf(os.Stderr, "[logger] warning: ignoring unparseable log filter %q: %v\n", cfg.LogFilter, err)
	}

	return DefaultFilter()
}
