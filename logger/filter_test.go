package logger

import (
	"os"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sidewayslabs/sideways/config"
)

func TestParseFilter(t *testing.T) {
	t.Run("bare level", func(t *testing.T) {
		f, err := ParseFilter("warn")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Level("") != zerolog.WarnLevel {
			t.Errorf("expected warn floor, got %v", f.Level(""))
		}
	})

	t.Run("directives with default", func(t *testing.T) {
		f, err := ParseFilter("warn,storage=debug,storage/pg=trace")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Level("handler") != zerolog.WarnLevel {
			t.Errorf("expected warn for unmatched target, got %v", f.Level("handler"))
		}
		if f.Level("storage") != zerolog.DebugLevel {
			t.Errorf("expected debug for storage, got %v", f.Level("storage"))
		}
		// longest matching prefix wins
		if f.Level("storage/pg/pool") != zerolog.TraceLevel {
			t.Errorf("expected trace for storage/pg/pool, got %v", f.Level("storage/pg/pool"))
		}
	})

	t.Run("directives only", func(t *testing.T) {
		f, err := ParseFilter("storage=debug")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Level("other") != zerolog.InfoLevel {
			t.Errorf("expected info default, got %v", f.Level("other"))
		}
	})

	t.Run("invalid expressions", func(t *testing.T) {
		for _, expr := range []string{"", "   ", "verbose", "storage=loud", "=debug", ","} {
			if _, err := ParseFilter(expr); err == nil {
				t.Errorf("expected parse error for %q", expr)
			}
		}
	})
}

func TestFilterEnabled(t *testing.T) {
	f, err := ParseFilter("warn,storage=debug")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		target string
		level  zerolog.Level
		want   bool
	}{
		{"handler", zerolog.InfoLevel, false},
		{"handler", zerolog.WarnLevel, true},
		{"handler", zerolog.ErrorLevel, true},
		{"storage", zerolog.DebugLevel, true},
		{"storage", zerolog.TraceLevel, false},
	}
	for _, tc := range tests {
		if got := f.Enabled(tc.target, tc.level); got != tc.want {
			t.Errorf("Enabled(%q, %v) = %v, want %v", tc.target, tc.level, got, tc.want)
		}
	}
}

func TestResolveFilter(t *testing.T) {
	cfg := config.Default()

	t.Run("env value wins when parseable", func(t *testing.T) {
		t.Setenv(config.EnvLogFilter, "error")
		f := ResolveFilter(cfg)
		if f.Level("") != zerolog.ErrorLevel {
			t.Errorf("expected error floor from env, got %v", f.Level(""))
		}
	})

	t.Run("unparseable env falls through to config", func(t *testing.T) {
		t.Setenv(config.EnvLogFilter, "loudness=11")
		c := cfg
		c.LogFilter = "debug"
		f := ResolveFilter(c)
		if f.Level("") != zerolog.DebugLevel {
			t.Errorf("expected debug floor from config, got %v", f.Level(""))
		}
	})

	t.Run("unparseable config falls through to info", func(t *testing.T) {
		t.Setenv(config.EnvLogFilter, "")
		os.Unsetenv(config.EnvLogFilter)
		c := cfg
		c.LogFilter = "not-a-level"
		f := ResolveFilter(c)
		if f.Level("") != zerolog.InfoLevel {
			t.Errorf("expected hardcoded info floor, got %v", f.Level(""))
		}
	})
}

func TestLoggerRespectsFilter(t *testing.T) {
	f, err := ParseFilter("warn,storage=debug")
	if err != nil {
		t.Fatal(err)
	}

	var buf safeBuffer
	l := New(&buf, f)

	l.Log(zerolog.InfoLevel, "handler", "dropped")
	l.Log(zerolog.WarnLevel, "handler", "kept-warn")
	l.Log(zerolog.DebugLevel, "storage", "kept-debug")

	out := buf.String()
	if containsLine(out, "dropped") {
		t.Error("expected info record below the warn floor to be dropped")
	}
	if !containsLine(out, "kept-warn") {
		t.Error("expected warn record to be written")
	}
	if !containsLine(out, "kept-debug") {
		t.Error("expected storage debug record to be written")
	}
}
