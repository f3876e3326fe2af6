package server

import (
	"net/http"
	"strings"
	"time"

	"musicapp/internal/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CORSPolicy is the static cross-origin policy applied to every route.
type CORSPolicy struct {
	AllowedOrigins []string
	AllowedMethods []string
}

// NewRouter registers GET /music behind recovery, request logging and CORS.
// Allowed methods without a matching route are reported as a warning.
func NewRouter(music *handlers.MusicHandler, policy CORSPolicy, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins: policy.AllowedOrigins,
		AllowMethods: policy.AllowedMethods,
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       time.Hour,
	}))

	r.GET("/music", music.ListMusic)

	if unrouted := UnroutedMethods(r, policy.AllowedMethods); len(unrouted) > 0 {
		log.Warn("cors allows methods that no route serves",
			zap.Strings("methods", unrouted))
	}
	return r
}

// UnroutedMethods returns the methods in allowed that no registered route
// answers. OPTIONS is skipped since the CORS middleware answers preflights.
func UnroutedMethods(r *gin.Engine, allowed []string) []string {
	routed := make(map[string]bool)
	for _, route := range r.Routes() {
		routed[route.Method] = true
	}

	var unrouted []string
	for _, method := range allowed {
		method = strings.ToUpper(strings.TrimSpace(method))
		if method == http.MethodOptions || routed[method] {
			continue
		}
		unrouted = append(unrouted, method)
	}
	return unrouted
}

// RequestLogger writes one zap entry per request.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if origin := c.GetHeader("Origin"); origin != "" {
			fields = append(fields, zap.String("origin", origin))
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Error("request", fields...)
			return
		}
		log.Info("request", fields...)
	}
}
