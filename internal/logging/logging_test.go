// internal/logging/logging_test.go
package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func TestLevelSelection(t *testing.T) {
	cases := []struct {
		opts Options
		want hclog.Level
	}{
		{Options{}, hclog.Info},
		{Options{Level: "warn"}, hclog.Warn},
		{Options{Level: "nonsense"}, hclog.Info},
		{Options{Level: "warn", Verbose: true}, hclog.Debug},
		{Options{Verbose: true, Quiet: true}, hclog.Error}, // quiet wins
	}
	for _, c := range cases {
		log := New(&bytes.Buffer{}, c.opts)
		if !log.IsError() {
			t.Fatalf("%+v: error level always enabled", c.opts)
		}
		if got := log.IsDebug(); got != (c.want <= hclog.Debug) {
			t.Errorf("%+v: IsDebug = %v", c.opts, got)
		}
		if got := log.IsInfo(); got != (c.want <= hclog.Info) {
			t.Errorf("%+v: IsInfo = %v", c.opts, got)
		}
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{JSON: true})
	log.Info("hello", "k", "v")
	if !strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Fatalf("not JSON: %q", buf.String())
	}
}

func TestLoggerName(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, Options{}).Info("x")
	if !strings.Contains(buf.String(), "epitizer") {
		t.Fatalf("missing logger name: %q", buf.String())
	}
}
