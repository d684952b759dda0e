package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velmora/pos-backoffice/internal/apperr"
	"github.com/velmora/pos-backoffice/internal/auth"
	"github.com/velmora/pos-backoffice/internal/inventory"
	"github.com/velmora/pos-backoffice/internal/inventory/dto"
	"github.com/velmora/pos-backoffice/pkg/logger"
)

// InventoryHandler exposes the stock movement audit trail. Adjustments
// themselves only happen through order mutations and the remote-sale listener,
// so the surface is read-only.
type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{uc: uc, logger: log}
}

func (h *InventoryHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/inventory/movements", auth.RequireAdmin(), h.ListMovements)
}

func (h *InventoryHandler) ListMovements(c *gin.Context) {
	var filters dto.MovementFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	items, total, err := h.uc.ListMovements(c.Request.Context(), &filters)
	if err != nil {
		status := apperr.HTTPStatus(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("inventory: list movements failed", zap.Error(err))
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "movements": items, "total": total})
}
