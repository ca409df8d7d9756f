package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskBody(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"login body",
			`{"username":"joana.silva","password":"supersecret"}`,
			`{"username":"joana.silva","password":"[MASKED]"}`,
		},
		{
			"spaced and escaped",
			`{"password" : "se\"cret"}`,
			`{"password" : "[MASKED]"}`,
		},
		{
			"no password field untouched",
			`{"cep":"01310-100"}`,
			`{"cep":"01310-100"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, maskBody(tc.in))
		})
	}
}

func TestRequestLogGinMasksPasswords(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(RequestLogGin(zap.New(core), nil))
	r.POST("/api/v1/auth/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	body := `{"username":"joana.silva","password":"supersecret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	entries := logs.All()
	require.Len(t, entries, 1)
	logged := entries[0].ContextMap()["body"].(string)
	assert.NotContains(t, logged, "supersecret")
	assert.Contains(t, logged, `"password":"[MASKED]"`)
	assert.Contains(t, logged, "joana.silva")
}
