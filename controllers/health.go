package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contactdesk/pkg/backend"
	"contactdesk/store"
)

// Health reports the active backend, the message count, and the recorded
// reason if the networked backend was abandoned at startup.
func Health(be *backend.Backend, analytics *store.Analytics) gin.HandlerFunc {
	return func(c *gin.Context) {
		total, _, err := analytics.Counts()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "backend unavailable"})
			return
		}

		payload := gin.H{
			"backend":  string(be.Kind),
			"messages": total,
		}
		if be.FallbackErr != "" {
			payload["fallback_error"] = be.FallbackErr
		}
		c.JSON(http.StatusOK, payload)
	}
}
