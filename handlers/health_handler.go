package handlers

import (
	"context"
	"net/http"
	"time"

	"portfolio-api/helper"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db     *gorm.DB
	Helper *helper.HTTPHelper
}

func NewHealthHandler(db *gorm.DB, h *helper.HTTPHelper) *HealthHandler {
	return &HealthHandler{db: db, Helper: h}
}

// Health reports "healthy" or 503 "degraded" when the database does not answer a ping.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.Helper.Log.WithError(err).Warn("health check database ping failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}

	h.Helper.SendSuccess(c, gin.H{"status": "healthy"})
}
