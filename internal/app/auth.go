package app

import (
	"crypto/subtle"
	"net/http"

	"github.com/findmyprof/findmyprof-go/internal/config"
	"github.com/gin-gonic/gin"
)

// metricsAuthMiddleware enforces Basic Auth on /metrics when a password is
// configured and passes every request through otherwise.
func metricsAuthMiddleware(cfg config.MetricsConfig) gin.HandlerFunc {
	enabled := cfg.AuthEnabled()
	wantUser := []byte(cfg.Username)
	wantPass := []byte(cfg.Password)

	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}

		user, pass, hasAuth := c.Request.BasicAuth()
		// Both comparisons always run so timing does not reveal which field was wrong.
		userMatch := subtle.ConstantTimeCompare([]byte(user), wantUser) == 1
		passMatch := subtle.ConstantTimeCompare([]byte(pass), wantPass) == 1

		if !hasAuth || !userMatch || !passMatch {
			c.Header("WWW-Authenticate", `Basic realm="metrics"`)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Next()
	}
}
