package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velmora/pos-backoffice/internal/apperr"
	"github.com/velmora/pos-backoffice/internal/auth"
	"github.com/velmora/pos-backoffice/internal/catalog"
	"github.com/velmora/pos-backoffice/internal/catalog/dto"
	"github.com/velmora/pos-backoffice/pkg/logger"
)

type CatalogHandler struct {
	uc     catalog.UseCase
	logger logger.ZapLogger
}

func NewCatalogHandler(uc catalog.UseCase, log logger.ZapLogger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: log}
}

// RegisterRoutes keeps reads open to any authenticated role; catalog mutations
// are back-office admin work.
func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := auth.RequireAdmin()

	r.POST("/products", admin, h.CreateProduct)
	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)
	r.PUT("/products/:id", admin, h.UpdateProduct)
	r.POST("/products/:id/toggle-status", admin, h.ToggleProductStatus)

	r.POST("/categories", admin, h.CreateCategory)
	r.GET("/categories", h.ListCategories)
	r.POST("/categories/:id/toggle-status", admin, h.ToggleCategoryStatus)

	r.POST("/brands", admin, h.CreateBrand)
	r.GET("/brands", h.ListBrands)
	r.POST("/brands/:id/toggle-status", admin, h.ToggleBrandStatus)
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var input dto.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	p, err := h.uc.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, "create product", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "product": p})
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.uc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get product", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": p})
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var input dto.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	input.ID = c.Param("id")

	p, err := h.uc.UpdateProduct(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, "update product", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": p})
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var filters dto.ProductFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	items, total, err := h.uc.ListProducts(c.Request.Context(), &filters)
	if err != nil {
		h.fail(c, "list products", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": items, "total": total})
}

func (h *CatalogHandler) ToggleProductStatus(c *gin.Context) {
	status, err := h.uc.ToggleProductStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "toggle product status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "new_status": status})
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var input dto.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	cat, err := h.uc.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, "create category", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "category": cat})
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	items, err := h.uc.ListCategories(c.Request.Context())
	if err != nil {
		h.fail(c, "list categories", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "categories": items})
}

func (h *CatalogHandler) ToggleCategoryStatus(c *gin.Context) {
	status, err := h.uc.ToggleCategoryStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "toggle category status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "new_status": status})
}

func (h *CatalogHandler) CreateBrand(c *gin.Context) {
	var input dto.CreateBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	b, err := h.uc.CreateBrand(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, "create brand", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "brand": b})
}

func (h *CatalogHandler) ListBrands(c *gin.Context) {
	items, err := h.uc.ListBrands(c.Request.Context())
	if err != nil {
		h.fail(c, "list brands", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "brands": items})
}

func (h *CatalogHandler) ToggleBrandStatus(c *gin.Context) {
	status, err := h.uc.ToggleBrandStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "toggle brand status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "new_status": status})
}

func (h *CatalogHandler) fail(c *gin.Context, op string, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("catalog: "+op+" failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}
