package entity

import "time"

// Supplier is a reference-list entry consulted when filling the supplier
// field of a CatalogItem. Catalog items carry the supplier as free text, so
// deleting a Supplier does not touch the catalog.
type Supplier struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	ContactName string    `json:"contactName" gorm:"size:100"`
	Phone       string    `json:"phone" gorm:"size:50"`
	Email       string    `json:"email" gorm:"size:200"`
	Address     string    `json:"address" gorm:"size:500"`
	Notes       string    `json:"notes" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
