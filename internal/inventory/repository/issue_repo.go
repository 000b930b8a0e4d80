package repository

import (
	"context"
	"errors"
	"time"

	"github.com/madhawadiyanath/daycare-core/internal/inventory/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IssueRepository persists the append-only issuance log. No update or delete
// methods exist on purpose.
type IssueRepository struct {
	db *gorm.DB
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{db: db}
}

func (r *IssueRepository) Append(ctx context.Context, ev *entity.IssueEvent) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

// AppendWithDeduction appends the event and decrements the matching catalog
// item's stock in one transaction. The matching row (most recently modified
// for the key) is locked for the duration, so two concurrent issuances of the
// same product cannot both pass the stock check.
func (r *IssueRepository) AppendWithDeduction(ctx context.Context, ev *entity.IssueEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item entity.CatalogItem
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ? AND category = ?", ev.Name, ev.Category).
			Order("modified_on DESC, id DESC").
			First(&item).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if item.Stock < ev.Quantity {
			return ErrInsufficientStock
		}

		err = tx.Model(&entity.CatalogItem{}).
			Where("id = ?", item.ID).
			Updates(map[string]interface{}{
				"stock":       gorm.Expr("stock - ?", ev.Quantity),
				"modified_on": time.Now(),
			}).Error
		if err != nil {
			return err
		}

		return tx.Create(ev).Error
	})
}

// FindAll returns the full history in insertion order; the only read path the
// aggregation needs.
func (r *IssueRepository) FindAll(ctx context.Context) ([]entity.IssueEvent, error) {
	var events []entity.IssueEvent
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&events).Error
	return events, err
}

// TotalIssuedBetween sums quantities for a key with issue_date strictly after
// since and at or before upTo. Reconciliation stamps its watermark at upTo, so
// an event appended concurrently with a later issue_date stays ahead of the
// watermark and is counted by the next run instead of being lost.
func (r *IssueRepository) TotalIssuedBetween(ctx context.Context, name, category string, since, upTo time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entity.IssueEvent{}).
		Where("name = ? AND category = ? AND issue_date > ? AND issue_date <= ?", name, category, since, upTo).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}
