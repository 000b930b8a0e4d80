package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup or targeted update matches no row.
var ErrNotFound = errors.New("record not found")

// Repositories groups the office stores handed to service construction.
type Repositories struct {
	Income     *IncomeRepository
	Expense    *ExpenseRepository
	Enrollment *EnrollmentRepository
	Event      *EventRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Income:     NewIncomeRepository(db),
		Expense:    NewExpenseRepository(db),
		Enrollment: NewEnrollmentRepository(db),
		Event:      NewEventRepository(db),
	}
}
