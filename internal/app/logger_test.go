//go:build !integration

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		logPretty string
	}{
		{name: "defaults"},
		{name: "debug level", logLevel: "debug"},
		{name: "pretty output", logLevel: "info", logPretty: "true"},
		{name: "pretty disabled", logLevel: "warn", logPretty: "false"},
		{name: "unknown level falls back", logLevel: "chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.logLevel != "" {
				t.Setenv("LOG_LEVEL", tt.logLevel)
			}
			if tt.logPretty != "" {
				t.Setenv("LOG_PRETTY", tt.logPretty)
			}

			assert.NotPanics(t, func() {
				InitializeLogger()
			})
		})
	}
}
