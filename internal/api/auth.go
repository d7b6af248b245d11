package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// KeyHeader carries the API key on mutating requests.
const KeyHeader = "X-API-Key"

// HashKey generates a bcrypt hash for an API key, suitable for API_KEY_HASH.
// cost <= 0 uses bcrypt.DefaultCost.
func HashKey(key string, cost int) (string, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(key), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyKey reports whether key matches the bcrypt hash.
func VerifyKey(hash, key string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}

// requireKey rejects requests without a matching X-API-Key. An empty hash
// leaves the route open.
func (a *API) requireKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.opts.KeyHash == "" {
			c.Next()
			return
		}
		key := strings.TrimSpace(c.GetHeader(KeyHeader))
		if key == "" {
			Fail(c, http.StatusUnauthorized, "missing "+KeyHeader)
			return
		}
		if !VerifyKey(a.opts.KeyHash, key) {
			Fail(c, http.StatusForbidden, "invalid API key")
			return
		}
		c.Next()
	}
}

// rateLimit applies the per-client limiter.
func (a *API) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		client := c.ClientIP()
		if !a.limiter.Allow(client) {
			Fail(c, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		if remaining := a.limiter.Remaining(client); remaining >= 0 {
			c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		}
		c.Next()
	}
}
