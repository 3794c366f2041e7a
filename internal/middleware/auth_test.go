package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authTestRouter(validKeys map[string]bool) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), APIKeyAuth(validKeys))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestAPIKeyAuth(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("hashed-key-value"), bcrypt.MinCost)
	assert.NoError(t, err)

	validKeys := map[string]bool{
		"plain-key":    true,
		string(hashed): true,
	}

	tests := []struct {
		name           string
		header         string
		query          string
		expectedStatus int
	}{
		{name: "missing key", expectedStatus: http.StatusUnauthorized},
		{name: "wrong key", header: "nope", expectedStatus: http.StatusUnauthorized},
		{name: "plain key in header", header: "plain-key", expectedStatus: http.StatusOK},
		{name: "plain key in query", query: "plain-key", expectedStatus: http.StatusOK},
		{name: "bcrypt-hashed key", header: "hashed-key-value", expectedStatus: http.StatusOK},
	}

	router := authTestRouter(validKeys)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := "/protected"
			if tt.query != "" {
				path += "?api_key=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, path, nil)
			if tt.header != "" {
				req.Header.Set(APIKeyHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAPIKeyAuth_DisabledWithNoKeys(t *testing.T) {
	router := authTestRouter(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMatchAPIKey(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	keys := map[string]bool{"plain": true, string(hashed): true}

	assert.True(t, matchAPIKey(keys, "plain"))
	assert.True(t, matchAPIKey(keys, "secret"))
	assert.False(t, matchAPIKey(keys, "other"))
	assert.False(t, matchAPIKey(keys, "Secret"))
}
