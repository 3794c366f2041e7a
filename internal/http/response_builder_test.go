package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/bakery-service/internal/i18n"
	"github.com/guttosm/bakery-service/internal/middleware"
)

func responseBuilderRouter(handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/", handler)
	return router
}

func TestResponseBuilder_Success(t *testing.T) {
	router := responseBuilderRouter(func(c *gin.Context) {
		NewResponseBuilder(c).SuccessOK(gin.H{"flavor": "vanilla"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "vanilla", data["flavor"])
	assert.NotEmpty(t, body["request_id"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestResponseBuilder_SuccessCreated(t *testing.T) {
	router := responseBuilderRouter(func(c *gin.Context) {
		NewResponseBuilder(c).SuccessCreated(gin.H{"cart_id": "abc"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "abc")
}

func TestResponseBuilder_Error(t *testing.T) {
	router := responseBuilderRouter(func(c *gin.Context) {
		NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyCartNotFound, errors.New("cart abc expired"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body["error"])
	assert.Equal(t, "Cart not found", body["message"])

	details, ok := body["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "cart abc expired", details["reason"])
}

func TestResponseBuilder_Error_Localized(t *testing.T) {
	router := responseBuilderRouter(func(c *gin.Context) {
		NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyCartNotFound, nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(i18n.AcceptLanguageHeader, "pt-BR")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Carrinho não encontrado")
}
