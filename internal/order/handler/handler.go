package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velmora/pos-backoffice/internal/apperr"
	"github.com/velmora/pos-backoffice/internal/auth"
	"github.com/velmora/pos-backoffice/internal/model"
	"github.com/velmora/pos-backoffice/internal/order"
	"github.com/velmora/pos-backoffice/internal/order/dto"
	"github.com/velmora/pos-backoffice/pkg/logger"
)

// OrderHandler serves both order kinds from one route table: /sales for
// invoices, /purchases for purchase orders. The kind is fixed by the route,
// never by the request body.
type OrderHandler struct {
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: log}
}

// RegisterRoutes gates sales behind the seller role (admins pass too) and
// purchases behind admin, matching the legacy back-office split. Line removal
// and void re-check admin in the usecase regardless of the route.
func (h *OrderHandler) RegisterRoutes(r *gin.RouterGroup) {
	for prefix, kind := range map[string]model.OrderKind{
		"/sales":     model.OrderKindSale,
		"/purchases": model.OrderKindPurchase,
	} {
		role := auth.RequireSeller()
		if kind == model.OrderKindPurchase {
			role = auth.RequireAdmin()
		}
		g := r.Group(prefix, role)
		g.POST("", h.create(kind))
		g.GET("", h.list(kind))
		g.GET("/:id", h.get)
		g.POST("/:id/lines", h.addLine)
		g.DELETE("/:id/lines/:lineId", h.removeLine)
		g.POST("/:id/lines/:lineId/void", h.voidLine)
	}
}

func (h *OrderHandler) create(kind model.OrderKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input dto.CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		input.Kind = kind

		o, err := h.uc.CreateOrder(c.Request.Context(), &input)
		if err != nil {
			h.fail(c, "create order", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "order": o})
	}
}

func (h *OrderHandler) list(kind model.OrderKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filters dto.OrderFilters
		if err := c.ShouldBindQuery(&filters); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		filters.Kind = kind

		items, total, err := h.uc.ListOrders(c.Request.Context(), &filters)
		if err != nil {
			h.fail(c, "list orders", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": items, "total": total})
	}
}

func (h *OrderHandler) get(c *gin.Context) {
	o, lines, err := h.uc.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get order", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": o, "lines": lines})
}

func (h *OrderHandler) addLine(c *gin.Context) {
	var input dto.AddLineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	input.OrderID = c.Param("id")

	line, totals, err := h.uc.AddLine(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, "add order line", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "line": line, "updated_totals": totals})
}

func (h *OrderHandler) removeLine(c *gin.Context) {
	totals, err := h.uc.RemoveLine(c.Request.Context(), c.Param("id"), c.Param("lineId"))
	if err != nil {
		h.fail(c, "remove order line", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "updated_totals": totals})
}

func (h *OrderHandler) voidLine(c *gin.Context) {
	var input dto.VoidLineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	input.OrderID = c.Param("id")
	input.LineID = c.Param("lineId")

	totals, err := h.uc.VoidLine(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, "void order line", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "updated_totals": totals})
}

func (h *OrderHandler) fail(c *gin.Context, op string, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("order: "+op+" failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}
