package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/madhawadiyanath/daycare-core/internal/apperr"
	"github.com/madhawadiyanath/daycare-core/internal/inventory/entity"
)

// SupplierService manages the supplier directory referenced by catalog items.
type SupplierService struct {
	suppliers SupplierStore
}

func NewSupplierService(suppliers SupplierStore) *SupplierService {
	return &SupplierService{suppliers: suppliers}
}

type CreateSupplierRequest struct {
	Name        string `json:"name" binding:"required"`
	ContactName string `json:"contactName"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Notes       string `json:"notes"`
}

type UpdateSupplierRequest struct {
	Name        *string `json:"name"`
	ContactName *string `json:"contactName"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	Notes       *string `json:"notes"`
}

func (s *SupplierService) Create(ctx context.Context, req *CreateSupplierRequest) (*entity.Supplier, error) {
	if req.Name == "" {
		return nil, apperr.Validation("name is required")
	}
	now := time.Now()
	sup := &entity.Supplier{
		ID:          uuid.New().String(),
		Name:        req.Name,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.suppliers.Create(ctx, sup); err != nil {
		return nil, storeErr("supplier.Create", sup.ID, err)
	}
	return sup, nil
}

func (s *SupplierService) List(ctx context.Context) ([]entity.Supplier, error) {
	suppliers, err := s.suppliers.FindAll(ctx)
	if err != nil {
		return nil, storeErr("supplier.List", "", err)
	}
	return suppliers, nil
}

func (s *SupplierService) Get(ctx context.Context, id string) (*entity.Supplier, error) {
	sup, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("supplier.Get", id, err)
	}
	return sup, nil
}

func (s *SupplierService) Update(ctx context.Context, id string, req *UpdateSupplierRequest) (*entity.Supplier, error) {
	fields := make(map[string]interface{})
	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperr.Validation("name cannot be empty")
		}
		fields["name"] = *req.Name
	}
	if req.ContactName != nil {
		fields["contact_name"] = *req.ContactName
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	fields["updated_at"] = time.Now()

	if err := s.suppliers.UpdateFields(ctx, id, fields); err != nil {
		return nil, storeErr("supplier.Update", id, err)
	}
	return s.Get(ctx, id)
}

func (s *SupplierService) Delete(ctx context.Context, id string) error {
	if err := s.suppliers.Delete(ctx, id); err != nil {
		return storeErr("supplier.Delete", id, err)
	}
	return nil
}
