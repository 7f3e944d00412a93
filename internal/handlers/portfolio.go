package handlers

import (
	"errors"
	"net/http"

	"github.com/alimgiray/gitfolio/internal/services"
	"github.com/alimgiray/gitfolio/pkg/logger"
	"github.com/gin-gonic/gin"
)

// PortfolioHandler serves published portfolio lookups
type PortfolioHandler struct {
	contentstackService *services.ContentstackService
}

// NewPortfolioHandler creates a portfolio handler
func NewPortfolioHandler(contentstackService *services.ContentstackService) *PortfolioHandler {
	return &PortfolioHandler{contentstackService: contentstackService}
}

// GetBySlug handles GET /api/portfolios/:slug
func (h *PortfolioHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	entry, err := h.contentstackService.GetPortfolioBySlug(c.Request.Context(), slug)
	if errors.Is(err, services.ErrPortfolioNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Portfolio not found"})
		return
	}
	if err != nil {
		logger.WithError(err).Error("Portfolio lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}

	c.Data(http.StatusOK, "application/json", entry)
}
