package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/velmora/pos-backoffice/internal/apperr"
	"github.com/velmora/pos-backoffice/internal/auth"
	"github.com/velmora/pos-backoffice/internal/cashregister"
	"github.com/velmora/pos-backoffice/internal/model"
	"github.com/velmora/pos-backoffice/pkg/logger"
)

type CashRegisterHandler struct {
	uc     cashregister.UseCase
	logger logger.ZapLogger
}

func NewCashRegisterHandler(uc cashregister.UseCase, log logger.ZapLogger) *CashRegisterHandler {
	return &CashRegisterHandler{uc: uc, logger: log}
}

// RegisterRoutes puts the whole drawer surface behind the seller role.
func (h *CashRegisterHandler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/cash-register", auth.RequireSeller())
	g.GET("", h.Status)
	g.GET("/movements", h.ListMovements)
	g.POST("/open", h.Open)
	g.POST("/close", h.Close)
	g.POST("/movements", h.Record)
}

type openRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

type recordRequest struct {
	Operation   string          `json:"operation_type" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

func (h *CashRegisterHandler) Status(c *gin.Context) {
	status, err := h.uc.Status(c.Request.Context())
	if err != nil {
		h.fail(c, "status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"is_open":         status.IsOpen,
		"is_closed":       status.IsClosed,
		"opening_balance": status.OpeningBalance.StringFixed(2),
		"current_balance": status.CurrentBalance.StringFixed(2),
	})
}

func (h *CashRegisterHandler) ListMovements(c *gin.Context) {
	items, err := h.uc.ListToday(c.Request.Context())
	if err != nil {
		h.fail(c, "list movements", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "movements": items})
}

func (h *CashRegisterHandler) Open(c *gin.Context) {
	var req openRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	m, err := h.uc.Open(c.Request.Context(), req.Amount, req.Description)
	if err != nil {
		h.fail(c, "open", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "movement": m})
}

func (h *CashRegisterHandler) Close(c *gin.Context) {
	m, err := h.uc.Close(c.Request.Context())
	if err != nil {
		h.fail(c, "close", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "movement": m})
}

func (h *CashRegisterHandler) Record(c *gin.Context) {
	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	m, err := h.uc.Record(c.Request.Context(), model.CashOperation(req.Operation), req.Amount, req.Description, "")
	if err != nil {
		h.fail(c, "record movement", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "movement": m})
}

func (h *CashRegisterHandler) fail(c *gin.Context, op string, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("cashregister: "+op+" failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}
