package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tabledash/backend/internal/infrastructure/persistence"
)

// SystemHandler exposes liveness and readiness probes
type SystemHandler struct {
	BaseHandler
	db *persistence.Database
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(db *persistence.Database) *SystemHandler {
	return &SystemHandler{db: db}
}

// Health reports process liveness
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
}

// Ready reports whether the database is reachable
func (h *SystemHandler) Ready(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "status": "database unreachable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": "ready"})
}
