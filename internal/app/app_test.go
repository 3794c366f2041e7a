//go:build !integration

package app

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/bakery-service/config"
)

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "creates router with default config",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port:       "8080",
					RateLimit:  100,
					RateWindow: time.Minute,
				},
				Storefront: config.StorefrontConfig{
					CartMaxAge:      time.Hour,
					CatalogCacheTTL: 30 * time.Second,
				},
			},
		},
		{
			name: "creates router with auth enabled",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port:       "8080",
					RateLimit:  100,
					RateWindow: time.Minute,
				},
				Auth: config.AuthConfig{
					Enabled: true,
					APIKeys: map[string]bool{"test-key": true},
				},
			},
		},
		{
			name: "creates router with database disabled",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port:       "8080",
					RateLimit:  100,
					RateWindow: time.Minute,
				},
				Database: config.DatabaseConfig{
					Enabled: false,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := InitializeApp(tt.cfg)
			assert.NotNil(t, router)

			// The assembled router serves the health endpoint.
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))
			assert.Equal(t, 200, w.Code)
		})
	}
}
