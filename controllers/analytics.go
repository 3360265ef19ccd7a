package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contactdesk/store"
)

// Stats serves the admin analytics JSON.
func Stats(analytics *store.Analytics) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := analytics.Stats()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to compute stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
