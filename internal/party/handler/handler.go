package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velmora/pos-backoffice/internal/apperr"
	"github.com/velmora/pos-backoffice/internal/auth"
	"github.com/velmora/pos-backoffice/internal/party"
	"github.com/velmora/pos-backoffice/internal/party/dto"
	"github.com/velmora/pos-backoffice/pkg/logger"
)

type PartyHandler struct {
	uc     party.UseCase
	logger logger.ZapLogger
}

func NewPartyHandler(uc party.UseCase, log logger.ZapLogger) *PartyHandler {
	return &PartyHandler{uc: uc, logger: log}
}

// RegisterRoutes leaves lookups open so sellers can pick a counterparty at the
// register; mutating a party record is admin work.
func (h *PartyHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := auth.RequireAdmin()

	r.POST("/customers", admin, h.CreateCustomer)
	r.GET("/customers", h.ListCustomers)
	r.PUT("/customers/:id", admin, h.UpdateCustomer)
	r.POST("/customers/:id/toggle-status", admin, h.ToggleCustomerStatus)

	r.POST("/suppliers", admin, h.CreateSupplier)
	r.GET("/suppliers", h.ListSuppliers)
	r.PUT("/suppliers/:id", admin, h.UpdateSupplier)
	r.POST("/suppliers/:id/toggle-status", admin, h.ToggleSupplierStatus)
}

func (h *PartyHandler) CreateCustomer(c *gin.Context) {
	var input dto.CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	customer, err := h.uc.CreateCustomer(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, "create customer", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "customer": customer})
}

func (h *PartyHandler) UpdateCustomer(c *gin.Context) {
	var input dto.UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	input.ID = c.Param("id")

	customer, err := h.uc.UpdateCustomer(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, "update customer", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "customer": customer})
}

func (h *PartyHandler) ListCustomers(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active_only", "false"))
	items, err := h.uc.ListCustomers(c.Request.Context(), activeOnly)
	if err != nil {
		h.fail(c, "list customers", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "customers": items})
}

func (h *PartyHandler) ToggleCustomerStatus(c *gin.Context) {
	status, err := h.uc.ToggleCustomerStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "toggle customer status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "new_status": status})
}

func (h *PartyHandler) CreateSupplier(c *gin.Context) {
	var input dto.CreateSupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	supplier, err := h.uc.CreateSupplier(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, "create supplier", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "supplier": supplier})
}

func (h *PartyHandler) UpdateSupplier(c *gin.Context) {
	var input dto.UpdateSupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	input.ID = c.Param("id")

	supplier, err := h.uc.UpdateSupplier(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, "update supplier", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "supplier": supplier})
}

func (h *PartyHandler) ListSuppliers(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active_only", "false"))
	items, err := h.uc.ListSuppliers(c.Request.Context(), activeOnly)
	if err != nil {
		h.fail(c, "list suppliers", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "suppliers": items})
}

func (h *PartyHandler) ToggleSupplierStatus(c *gin.Context) {
	status, err := h.uc.ToggleSupplierStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "toggle supplier status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "new_status": status})
}

func (h *PartyHandler) fail(c *gin.Context, op string, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("party: "+op+" failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}
