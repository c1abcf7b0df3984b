package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	assert.NoError(t, Initialize("debug", "development"))
	assert.True(t, Log.Core().Enabled(zap.DebugLevel))

	assert.NoError(t, Initialize("warn", "production"))
	assert.False(t, Log.Core().Enabled(zap.InfoLevel))

	assert.Error(t, Initialize("loud", "production"))
}

func TestRequestLogger(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	core, logs := observer.New(zap.InfoLevel)
	Log = zap.New(core)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/kitchen", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/kitchen?x=1", nil))

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "/kitchen?x=1", fields["uri"])
		assert.Equal(t, "GET", fields["method"])
		assert.EqualValues(t, http.StatusTeapot, fields["status"])
	}
}
