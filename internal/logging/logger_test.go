package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/zainab-06-p/linkscout/internal/model"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     model.LoggingConfig
		verbose bool
	}{
		{"console default", model.LoggingConfig{Level: "info", Format: "console"}, false},
		{"json", model.LoggingConfig{Level: "warn", Format: "json"}, false},
		{"verbose override", model.LoggingConfig{Level: "error"}, true},
		{"unknown level", model.LoggingConfig{Level: "bogus"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg, tt.verbose)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if logger == nil {
				t.Fatal("expected a logger")
			}
			_ = logger.Sync()
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"nope", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
