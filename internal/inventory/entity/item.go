package entity

import "time"

// CatalogItem is the current stock state of one product. (name, category) is
// the natural key but is deliberately not unique; duplicates are resolved
// deterministically at read time (most recently modified wins).
type CatalogItem struct {
	ID       string     `json:"id" gorm:"primaryKey;size:36"`
	Name     string     `json:"name" gorm:"size:200;not null;index:idx_catalog_items_key,priority:1"`
	Category string     `json:"category" gorm:"size:100;not null;index:idx_catalog_items_key,priority:2"`
	Stock    int64      `json:"stock" gorm:"not null"`
	Expiry   *time.Time `json:"expiry"`
	Supplier *string    `json:"supplier" gorm:"size:200"`

	// ReconciledAt is the watermark for the optional stock reconciliation:
	// issuance before it has already been subtracted from Stock.
	ReconciledAt *time.Time `json:"reconciledAt,omitempty"`

	CreatedOn  time.Time `json:"createdOn" gorm:"not null"`
	ModifiedOn time.Time `json:"modifiedOn" gorm:"not null;index"`
}

func (CatalogItem) TableName() string {
	return "catalog_items"
}
