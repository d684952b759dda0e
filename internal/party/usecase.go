package party

import (
	"context"

	"github.com/velmora/pos-backoffice/internal/party/dto"
	"github.com/velmora/pos-backoffice/internal/model"
)

type UseCase interface {
	CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, input *dto.UpdateCustomerInput) (*model.Customer, error)
	ListCustomers(ctx context.Context, activeOnly bool) ([]model.Customer, error)
	ToggleCustomerStatus(ctx context.Context, id string) (model.Status, error)

	CreateSupplier(ctx context.Context, input *dto.CreateSupplierInput) (*model.Supplier, error)
	UpdateSupplier(ctx context.Context, input *dto.UpdateSupplierInput) (*model.Supplier, error)
	ListSuppliers(ctx context.Context, activeOnly bool) ([]model.Supplier, error)
	ToggleSupplierStatus(ctx context.Context, id string) (model.Status, error)
}
