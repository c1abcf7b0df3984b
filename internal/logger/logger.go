package logger

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Log is the process-wide logger. It discards everything until Initialize
// is called.
var Log *zap.Logger = zap.NewNop()

// Initialize builds Log for the given level ("debug", "info", "warn",
// "error"). env "development" selects the console encoder.
func Initialize(level, env string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	var cfg zap.Config
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = lvl

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	Log = l
	return nil
}

// RequestLogger logs URI, method, status and duration of every request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("uri", c.Request.RequestURI),
			zap.String("method", c.Request.Method),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		Log.Info("request handled", fields...)
	}
}
