package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/madhawadiyanath/daycare-core/internal/apperr"
	"github.com/madhawadiyanath/daycare-core/internal/config"
	"github.com/madhawadiyanath/daycare-core/internal/inventory/entity"
)

// CatalogService owns the current stock state of each product.
type CatalogService struct {
	items  ItemStore
	issues IssueStore
	cfg    config.InventoryConfig
}

func NewCatalogService(items ItemStore, issues IssueStore, cfg config.InventoryConfig) *CatalogService {
	return &CatalogService{items: items, issues: issues, cfg: cfg}
}

// AddItemRequest carries the fields of an administrative add. Stock is a
// pointer so that an explicit zero passes the required check.
type AddItemRequest struct {
	Name     string     `json:"name" binding:"required"`
	Category string     `json:"category" binding:"required"`
	Stock    *int64     `json:"stock" binding:"required"`
	Expiry   *time.Time `json:"expiry"`
	Supplier *string    `json:"supplier"`
}

// UpdateItemRequest is a partial update: nil fields stay untouched.
type UpdateItemRequest struct {
	Name     *string    `json:"name"`
	Category *string    `json:"category"`
	Stock    *int64     `json:"stock"`
	Expiry   *time.Time `json:"expiry"`
	Supplier *string    `json:"supplier"`
}

func (s *CatalogService) AddItem(ctx context.Context, req *AddItemRequest) (*entity.CatalogItem, error) {
	if req.Name == "" {
		return nil, apperr.Validation("name is required")
	}
	if req.Category == "" {
		return nil, apperr.Validation("category is required")
	}
	if req.Stock == nil {
		return nil, apperr.Validation("stock is required")
	}
	if *req.Stock < 0 {
		return nil, apperr.Validation("stock must not be negative")
	}

	now := time.Now()
	item := &entity.CatalogItem{
		ID:         uuid.New().String(),
		Name:       req.Name,
		Category:   req.Category,
		Stock:      *req.Stock,
		Expiry:     req.Expiry,
		Supplier:   req.Supplier,
		CreatedOn:  now,
		ModifiedOn: now,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, storeErr("catalog.AddItem", itemKey(req.Name, req.Category), err)
	}
	return item, nil
}

func (s *CatalogService) ListItems(ctx context.Context) ([]entity.CatalogItem, error) {
	items, err := s.items.FindAll(ctx)
	if err != nil {
		return nil, storeErr("catalog.ListItems", "", err)
	}
	return items, nil
}

func (s *CatalogService) UpdateItem(ctx context.Context, id string, req *UpdateItemRequest) (*entity.CatalogItem, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperr.Validation("name must not be empty")
		}
		fields["name"] = *req.Name
	}
	if req.Category != nil {
		if *req.Category == "" {
			return nil, apperr.Validation("category must not be empty")
		}
		fields["category"] = *req.Category
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, apperr.Validation("stock must not be negative")
		}
		fields["stock"] = *req.Stock
	}
	if req.Expiry != nil {
		fields["expiry"] = *req.Expiry
	}
	if req.Supplier != nil {
		fields["supplier"] = *req.Supplier
	}
	fields["modified_on"] = time.Now()

	if err := s.items.UpdateFields(ctx, id, fields); err != nil {
		return nil, storeErr("catalog.UpdateItem", id, err)
	}
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("catalog.UpdateItem", id, err)
	}
	return item, nil
}

// DeleteItem removes the item only; historical issue events for its key stay.
func (s *CatalogService) DeleteItem(ctx context.Context, id string) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return storeErr("catalog.DeleteItem", id, err)
	}
	return nil
}

func (s *CatalogService) FindByKey(ctx context.Context, name, category string) (*entity.CatalogItem, error) {
	item, err := s.items.FindByKey(ctx, name, category)
	if err != nil {
		return nil, storeErr("catalog.FindByKey", itemKey(name, category), err)
	}
	return item, nil
}

// Reconcile folds issuance recorded since the item's watermark into its stock:
// stock becomes stock - totalIssuedSinceThen. Exposed only when the
// reconciliation flag is on. Fails with a conflict, changing nothing, if the
// issued total exceeds current stock.
func (s *CatalogService) Reconcile(ctx context.Context, id string) (*entity.CatalogItem, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("catalog.Reconcile", id, err)
	}

	since := item.CreatedOn
	if item.ReconciledAt != nil {
		since = *item.ReconciledAt
	}
	// The new watermark is fixed before the sum runs. An issuance appended
	// while we sum carries an issue_date past this bound, so it falls to the
	// next reconcile instead of vanishing behind the watermark.
	upTo := time.Now()
	total, err := s.issues.TotalIssuedBetween(ctx, item.Name, item.Category, since, upTo)
	if err != nil {
		return nil, storeErr("catalog.Reconcile", id, err)
	}
	if total == 0 {
		return item, nil
	}

	if err := s.items.ReconcileStock(ctx, id, total, upTo); err != nil {
		return nil, storeErr("catalog.Reconcile", id, err)
	}
	item, err = s.items.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("catalog.Reconcile", id, err)
	}
	return item, nil
}
