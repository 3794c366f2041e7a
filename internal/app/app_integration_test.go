//go:build integration

package app

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/bakery-service/config"
)

func uniqueTestDB(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano()%1000000)
}

func TestInitializeApp_Integration(t *testing.T) {
	uri := sharedMongoURI(t)

	t.Run("initialize app with MongoDB enabled", func(t *testing.T) {
		cfg := config.Config{
			Server: config.ServerConfig{
				Port:       "8080",
				RateLimit:  100,
				RateWindow: time.Minute,
			},
			Storefront: config.StorefrontConfig{
				CartMaxAge:      time.Hour,
				CatalogCacheTTL: 30 * time.Second,
			},
			Auth: config.AuthConfig{
				AdminJWTSecret: "integration-secret",
			},
			Database: config.DatabaseConfig{
				URI:                            uri,
				DatabaseName:                   uniqueTestDB("app_init"),
				Enabled:                        true,
				CircuitBreakerFailureThreshold: 5,
				CircuitBreakerSuccessThreshold: 2,
				CircuitBreakerTimeout:          30 * time.Second,
			},
		}

		router := InitializeApp(cfg)
		assert.NotNil(t, router)

		// The seeded catalog is served through the storefront API.
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/catalog/bread", nil))
		assert.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), "White Bread")
	})

	t.Run("initialize app with MongoDB disabled", func(t *testing.T) {
		cfg := config.Config{
			Server: config.ServerConfig{
				Port:       "8080",
				RateLimit:  100,
				RateWindow: time.Minute,
			},
			Database: config.DatabaseConfig{
				Enabled: false,
			},
		}

		router := InitializeApp(cfg)
		assert.NotNil(t, router)

		// Admin routes are absent without a database.
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/admin/catalog/bread", nil))
		assert.Equal(t, 404, w.Code)
	})
}
