package service

import (
	"context"
	"errors"

	"github.com/madhawadiyanath/daycare-core/internal/apperr"
	"github.com/madhawadiyanath/daycare-core/internal/office/entity"
	"github.com/madhawadiyanath/daycare-core/internal/office/repository"
)

// Storage ports for the office services, substituted with in-memory fakes in
// tests.

type IncomeStore interface {
	Create(ctx context.Context, income *entity.Income) error
	FindAll(ctx context.Context) ([]entity.Income, error)
	FindByID(ctx context.Context, id string) (*entity.Income, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type ExpenseStore interface {
	Create(ctx context.Context, expense *entity.Expense) error
	FindAll(ctx context.Context) ([]entity.Expense, error)
	FindByID(ctx context.Context, id string) (*entity.Expense, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type EnrollmentStore interface {
	Create(ctx context.Context, req *entity.EnrollmentRequest) error
	FindAll(ctx context.Context) ([]entity.EnrollmentRequest, error)
	FindByID(ctx context.Context, id string) (*entity.EnrollmentRequest, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	UpdateStatusFromPending(ctx context.Context, id string, fields map[string]interface{}) (bool, error)
	Delete(ctx context.Context, id string) error
}

type EventStore interface {
	Create(ctx context.Context, ev *entity.CalendarEvent) error
	FindAll(ctx context.Context) ([]entity.CalendarEvent, error)
	FindByID(ctx context.Context, id string) (*entity.CalendarEvent, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// Services groups the office services for handler construction.
type Services struct {
	Finance    *FinanceService
	Enrollment *EnrollmentService
	Event      *EventService
}

func NewServices(incomes IncomeStore, expenses ExpenseStore, enrollments EnrollmentStore, events EventStore) *Services {
	return &Services{
		Finance:    NewFinanceService(incomes, expenses),
		Enrollment: NewEnrollmentService(enrollments),
		Event:      NewEventService(events),
	}
}

func storeErr(op, key string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(op, key)
	}
	return apperr.Storage(op, key, err)
}
