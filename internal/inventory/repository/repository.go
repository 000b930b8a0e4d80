package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Repositories groups the inventory stores handed to service construction.
type Repositories struct {
	Item     *ItemRepository
	Issue    *IssueRepository
	Supplier *SupplierRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Item:     NewItemRepository(db),
		Issue:    NewIssueRepository(db),
		Supplier: NewSupplierRepository(db),
	}
}
