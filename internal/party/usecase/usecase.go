package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/velmora/pos-backoffice/internal/apperr"
	"github.com/velmora/pos-backoffice/internal/auth"
	"github.com/velmora/pos-backoffice/internal/model"
	"github.com/velmora/pos-backoffice/internal/party"
	"github.com/velmora/pos-backoffice/internal/party/dto"
	"github.com/velmora/pos-backoffice/pkg/logger"
)

type partyUseCase struct {
	repo   party.Repository
	logger logger.ZapLogger
}

func NewPartyUseCase(repo party.Repository, log logger.ZapLogger) party.UseCase {
	return &partyUseCase{repo: repo, logger: log}
}

func (uc *partyUseCase) CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error) {
	c := &model.Customer{
		BaseModel: newBase(ctx),
		Name:      input.Name,
		LastName:  input.LastName,
		DNI:       input.DNI,
		Email:     optional(input.Email),
		Phone:     optional(input.Phone),
		Address:   optional(input.Address),
		Type:      customerType(input.Type),
		Gender:    input.Gender,
	}
	c.Normalize()

	if err := uc.repo.CreateCustomer(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *partyUseCase) UpdateCustomer(ctx context.Context, input *dto.UpdateCustomerInput) (*model.Customer, error) {
	c, err := uc.repo.GetCustomer(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.New(apperr.KindNotFound, "customer not found")
	}

	c.Name = input.Name
	c.LastName = input.LastName
	c.DNI = input.DNI
	c.Email = optional(input.Email)
	c.Phone = optional(input.Phone)
	c.Address = optional(input.Address)
	c.Type = customerType(input.Type)
	c.Gender = input.Gender
	c.ModifiedBy = actorRef(ctx)
	c.Normalize()

	if err := uc.repo.UpdateCustomer(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *partyUseCase) ListCustomers(ctx context.Context, activeOnly bool) ([]model.Customer, error) {
	return uc.repo.ListCustomers(ctx, activeOnly)
}

func (uc *partyUseCase) ToggleCustomerStatus(ctx context.Context, id string) (model.Status, error) {
	c, err := uc.repo.GetCustomer(ctx, id)
	if err != nil {
		return "", err
	}
	if c == nil {
		return "", apperr.New(apperr.KindNotFound, "customer not found")
	}

	next := c.Status.Toggled()
	if err := uc.repo.SetCustomerStatus(ctx, id, next, auth.ActorFromContext(ctx).UserID); err != nil {
		return "", err
	}
	return next, nil
}

func (uc *partyUseCase) CreateSupplier(ctx context.Context, input *dto.CreateSupplierInput) (*model.Supplier, error) {
	s := &model.Supplier{
		BaseModel:     newBase(ctx),
		Name:          input.Name,
		ContactPerson: optional(input.ContactPerson),
		Phone:         optional(input.Phone),
		Email:         optional(input.Email),
		Address:       optional(input.Address),
	}
	s.Normalize()

	if err := uc.repo.CreateSupplier(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *partyUseCase) UpdateSupplier(ctx context.Context, input *dto.UpdateSupplierInput) (*model.Supplier, error) {
	s, err := uc.repo.GetSupplier(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperr.New(apperr.KindNotFound, "supplier not found")
	}

	s.Name = input.Name
	s.ContactPerson = optional(input.ContactPerson)
	s.Phone = optional(input.Phone)
	s.Email = optional(input.Email)
	s.Address = optional(input.Address)
	s.ModifiedBy = actorRef(ctx)
	s.Normalize()

	if err := uc.repo.UpdateSupplier(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *partyUseCase) ListSuppliers(ctx context.Context, activeOnly bool) ([]model.Supplier, error) {
	return uc.repo.ListSuppliers(ctx, activeOnly)
}

func (uc *partyUseCase) ToggleSupplierStatus(ctx context.Context, id string) (model.Status, error) {
	s, err := uc.repo.GetSupplier(ctx, id)
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", apperr.New(apperr.KindNotFound, "supplier not found")
	}

	next := s.Status.Toggled()
	if err := uc.repo.SetSupplierStatus(ctx, id, next, auth.ActorFromContext(ctx).UserID); err != nil {
		return "", err
	}
	return next, nil
}

func customerType(s string) model.CustomerType {
	if s == string(model.CustomerJuridical) {
		return model.CustomerJuridical
	}
	return model.CustomerNatural
}

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
