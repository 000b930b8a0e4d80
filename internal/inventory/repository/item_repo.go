package repository

import (
	"context"
	"errors"
	"time"

	"github.com/madhawadiyanath/daycare-core/internal/inventory/entity"
	"gorm.io/gorm"
)

// ItemRepository persists CatalogItems.
type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, item *entity.CatalogItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindAll returns the catalog in insertion order.
func (r *ItemRepository) FindAll(ctx context.Context) ([]entity.CatalogItem, error) {
	var items []entity.CatalogItem
	err := r.db.WithContext(ctx).
		Order("created_on ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (r *ItemRepository) FindByID(ctx context.Context, id string) (*entity.CatalogItem, error) {
	var item entity.CatalogItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByKey resolves a (name, category) key to a single item. Duplicate keys
// are legal; the most recently modified row wins, ties broken by id, so the
// choice is deterministic for a given catalog state.
func (r *ItemRepository) FindByKey(ctx context.Context, name, category string) (*entity.CatalogItem, error) {
	var item entity.CatalogItem
	err := r.db.WithContext(ctx).
		Where("name = ? AND category = ?", name, category).
		Order("modified_on DESC, id DESC").
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// UpdateFields applies a partial update as one UPDATE statement, so two racing
// updates to the same item cannot resurrect each other's overwritten fields.
func (r *ItemRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&entity.CatalogItem{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.CatalogItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ReconcileStock subtracts total from the item's stock and advances the
// reconciliation watermark in one conditional UPDATE. The stock >= total guard
// keeps stock from going negative; a guard miss on an existing item reports
// ErrInsufficientStock.
func (r *ItemRepository) ReconcileStock(ctx context.Context, id string, total int64, now time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&entity.CatalogItem{}).
		Where("id = ? AND stock >= ?", id, total).
		Updates(map[string]interface{}{
			"stock":         gorm.Expr("stock - ?", total),
			"reconciled_at": now,
			"modified_on":   now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
		return ErrInsufficientStock
	}
	return nil
}
