package service

import (
	"context"
	"errors"
	"time"

	"github.com/madhawadiyanath/daycare-core/internal/apperr"
	"github.com/madhawadiyanath/daycare-core/internal/config"
	"github.com/madhawadiyanath/daycare-core/internal/inventory/entity"
	"github.com/madhawadiyanath/daycare-core/internal/inventory/repository"
)

// Storage ports. Services depend on these instead of a process-wide database
// handle, so tests can substitute in-memory fakes without touching the
// aggregation logic.

type ItemStore interface {
	Create(ctx context.Context, item *entity.CatalogItem) error
	FindAll(ctx context.Context) ([]entity.CatalogItem, error)
	FindByID(ctx context.Context, id string) (*entity.CatalogItem, error)
	FindByKey(ctx context.Context, name, category string) (*entity.CatalogItem, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	ReconcileStock(ctx context.Context, id string, total int64, now time.Time) error
}

type IssueStore interface {
	Append(ctx context.Context, ev *entity.IssueEvent) error
	AppendWithDeduction(ctx context.Context, ev *entity.IssueEvent) error
	FindAll(ctx context.Context) ([]entity.IssueEvent, error)
	TotalIssuedBetween(ctx context.Context, name, category string, since, upTo time.Time) (int64, error)
}

type SupplierStore interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	FindAll(ctx context.Context) ([]entity.Supplier, error)
	FindByID(ctx context.Context, id string) (*entity.Supplier, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// Services groups the inventory services for handler construction.
type Services struct {
	Catalog  *CatalogService
	Issue    *IssueService
	Summary  *SummaryService
	Supplier *SupplierService
}

func NewServices(items ItemStore, issues IssueStore, suppliers SupplierStore, cfg config.InventoryConfig) *Services {
	return &Services{
		Catalog:  NewCatalogService(items, issues, cfg),
		Issue:    NewIssueService(issues, cfg),
		Summary:  NewSummaryService(items, issues),
		Supplier: NewSupplierService(suppliers),
	}
}

// itemKey renders a (name, category) key for error context.
func itemKey(name, category string) string {
	return name + "/" + category
}

// storeErr classifies a store failure into the error taxonomy.
func storeErr(op, key string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound(op, key)
	case errors.Is(err, repository.ErrInsufficientStock):
		return apperr.Conflict(op, key, "insufficient stock")
	default:
		return apperr.Storage(op, key, err)
	}
}
