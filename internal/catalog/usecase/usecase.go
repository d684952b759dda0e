package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/velmora/pos-backoffice/internal/apperr"
	"github.com/velmora/pos-backoffice/internal/auth"
	"github.com/velmora/pos-backoffice/internal/catalog"
	"github.com/velmora/pos-backoffice/internal/catalog/dto"
	"github.com/velmora/pos-backoffice/internal/model"
	"github.com/velmora/pos-backoffice/pkg/cache"
	"github.com/velmora/pos-backoffice/pkg/logger"
)

const productCacheTTL = 5 * time.Minute

type catalogUseCase struct {
	repo   catalog.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewCatalogUseCase(repo catalog.Repository, cache *cache.RedisClient, log logger.ZapLogger) catalog.UseCase {
	return &catalogUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

// --- Products ---

func (uc *catalogUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if input.Price.IsNegative() || input.Stock < 0 {
		return nil, apperr.New(apperr.KindValidation, "price and stock must not be negative")
	}

	p := &model.Product{
		BaseModel:  newBase(ctx),
		Code:       input.Code,
		Barcode:    optional(input.Barcode),
		Name:       input.Name,
		CategoryID: optional(input.CategoryID),
		BrandID:    optional(input.BrandID),
		Unit:       input.Unit,
		Price:      input.Price.Round(2),
		Stock:      input.Stock,
	}
	p.Description = optional(input.Description)
	p.Normalize()

	if err := uc.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *catalogUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	if uc.cache != nil {
		if val, err := uc.cache.Get(ctx, productCacheKey(id)); err == nil {
			var p model.Product
			if err := json.Unmarshal([]byte(val), &p); err == nil {
				return &p, nil
			}
		}
	}

	p, err := uc.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.New(apperr.KindNotFound, "product not found")
	}

	if uc.cache != nil {
		if data, err := json.Marshal(p); err == nil {
			_ = uc.cache.Set(ctx, productCacheKey(id), data, productCacheTTL)
		}
	}
	return p, nil
}

func (uc *catalogUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.GetProduct(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.New(apperr.KindNotFound, "product not found")
	}

	p.Code = input.Code
	p.Barcode = optional(input.Barcode)
	p.Name = input.Name
	p.Description = optional(input.Description)
	p.CategoryID = optional(input.CategoryID)
	p.BrandID = optional(input.BrandID)
	p.Unit = input.Unit
	p.Price = input.Price.Round(2)
	p.ModifiedBy = actorRef(ctx)
	p.Normalize()

	if err := uc.repo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateProductCache(context.Background(), input.ID)
	return p, nil
}

func (uc *catalogUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	return uc.repo.ListProducts(ctx, filters)
}

func (uc *catalogUseCase) ToggleProductStatus(ctx context.Context, id string) (model.Status, error) {
	p, err := uc.repo.GetProduct(ctx, id)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", apperr.New(apperr.KindNotFound, "product not found")
	}

	next := p.Status.Toggled()
	if err := uc.repo.SetProductStatus(ctx, id, next, auth.ActorFromContext(ctx).UserID); err != nil {
		return "", err
	}

	go uc.invalidateProductCache(context.Background(), id)
	return next, nil
}

func productCacheKey(id string) string {
	return fmt.Sprintf("catalog:product:%s", id)
}

func (uc *catalogUseCase) invalidateProductCache(ctx context.Context, ids ...string) {
	if uc.cache == nil {
		return
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, productCacheKey(id))
	}
	if len(keys) == 0 {
		return
	}
	if err := uc.cache.Del(ctx, keys...); err != nil {
		uc.logger.Warn("failed to invalidate product cache", zap.Error(err))
	}
}

// --- Categories ---

func (uc *catalogUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	if input.ParentID != "" {
		parent, err := uc.repo.GetCategory(ctx, input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperr.New(apperr.KindNotFound, "parent category not found")
		}
	}

	c := &model.Category{
		BaseModel:   newBase(ctx),
		ParentID:    optional(input.ParentID),
		Name:        input.Name,
		Description: optional(input.Description),
	}
	c.Normalize()

	if err := uc.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *catalogUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return uc.repo.ListCategories(ctx)
}

func (uc *catalogUseCase) ToggleCategoryStatus(ctx context.Context, id string) (model.Status, error) {
	c, err := uc.repo.GetCategory(ctx, id)
	if err != nil {
		return "", err
	}
	if c == nil {
		return "", apperr.New(apperr.KindNotFound, "category not found")
	}

	next := c.Status.Toggled()
	if err := uc.repo.SetCategoryStatus(ctx, id, next, auth.ActorFromContext(ctx).UserID); err != nil {
		return "", err
	}
	return next, nil
}

// --- Brands ---

func (uc *catalogUseCase) CreateBrand(ctx context.Context, input *dto.CreateBrandInput) (*model.Brand, error) {
	b := &model.Brand{
		BaseModel:   newBase(ctx),
		Name:        input.Name,
		Description: optional(input.Description),
	}
	b.Normalize()

	if err := uc.repo.CreateBrand(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (uc *catalogUseCase) ListBrands(ctx context.Context) ([]model.Brand, error) {
	return uc.repo.ListBrands(ctx)
}

func (uc *catalogUseCase) ToggleBrandStatus(ctx context.Context, id string) (model.Status, error) {
	b, err := uc.repo.GetBrand(ctx, id)
	if err != nil {
		return "", err
	}
	if b == nil {
		return "", apperr.New(apperr.KindNotFound, "brand not found")
	}

	next := b.Status.Toggled()
	if err := uc.repo.SetBrandStatus(ctx, id, next, auth.ActorFromContext(ctx).UserID); err != nil {
		return "", err
	}
	return next, nil
}

// --- helpers ---

func newBase(ctx context.Context) model.BaseModel {
	now := time.Now()
	return model.BaseModel{
		ID:        uuid.New().String(),
		Status:    model.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: actorRef(ctx),
	}
}

func actorRef(ctx context.Context) *string {
	actor := auth.ActorFromContext(ctx)
	if actor.UserID == "" {
		return nil
	}
	id := actor.UserID
	return &id
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
