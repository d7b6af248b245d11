// Package api serves the palette session over HTTP with gin.
package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hexbot-palette/internal/metrics"
	"hexbot-palette/internal/session"
)

type Options struct {
	// KeyHash is a bcrypt hash of the API key; empty leaves mutating
	// routes open.
	KeyHash       string
	RateLimitRPM  int
	AllowedOrigin string
}

type API struct {
	sess    *session.Session
	opts    Options
	limiter *RateLimiter
}

func NewRouter(sess *session.Session, opts Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	_ = r.SetTrustedProxies(nil)

	if opts.AllowedOrigin == "" {
		opts.AllowedOrigin = "*"
	}
	api := &API{sess: sess, opts: opts, limiter: NewRateLimiter(opts.RateLimitRPM)}
	r.Use(api.cors(), api.observe())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/colour", api.getColour)
		v1.POST("/colour/random", api.requireKey(), api.rateLimit(), api.randomColour)
		v1.POST("/colour/base", api.requireKey(), api.setBase)
		v1.POST("/colour/select", api.requireKey(), api.selectRelated)
		v1.GET("/derive/:hex", api.derive)
		v1.GET("/palette", api.listPalette)
		v1.POST("/palette", api.requireKey(), api.savePalette)
		v1.DELETE("/palette/:hex", api.requireKey(), api.removePalette)
	}
	r.NoRoute(func(c *gin.Context) {
		Fail(c, http.StatusNotFound, "not found")
	})
	return r
}

func (a *API) cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", a.opts.AllowedOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, "+KeyHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (a *API) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.MetricAPIRequestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
