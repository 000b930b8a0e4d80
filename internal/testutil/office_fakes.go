package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/madhawadiyanath/daycare-core/internal/office/entity"
	"github.com/madhawadiyanath/daycare-core/internal/office/repository"
	"github.com/shopspring/decimal"
)

// FakeIncomeStore implements service.IncomeStore over a slice.
type FakeIncomeStore struct {
	Incomes []*entity.Income
}

func NewFakeIncomeStore() *FakeIncomeStore {
	return &FakeIncomeStore{}
}

func (s *FakeIncomeStore) Create(_ context.Context, income *entity.Income) error {
	cp := *income
	s.Incomes = append(s.Incomes, &cp)
	return nil
}

func (s *FakeIncomeStore) FindAll(_ context.Context) ([]entity.Income, error) {
	out := make([]entity.Income, 0, len(s.Incomes))
	for _, in := range s.Incomes {
		out = append(out, *in)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ReceivedOn.Equal(out[j].ReceivedOn) {
			return out[i].ReceivedOn.After(out[j].ReceivedOn)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *FakeIncomeStore) FindByID(_ context.Context, id string) (*entity.Income, error) {
	for _, in := range s.Incomes {
		if in.ID == id {
			cp := *in
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *FakeIncomeStore) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	for _, in := range s.Incomes {
		if in.ID == id {
			for k, v := range fields {
				switch k {
				case "source":
					in.Source = v.(string)
				case "amount":
					in.Amount = v.(decimal.Decimal)
				case "received_on":
					in.ReceivedOn = v.(time.Time)
				case "description":
					in.Description = v.(string)
				case "updated_at":
					in.UpdatedAt = v.(time.Time)
				}
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *FakeIncomeStore) Delete(_ context.Context, id string) error {
	for i, in := range s.Incomes {
		if in.ID == id {
			s.Incomes = append(s.Incomes[:i], s.Incomes[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// FakeExpenseStore implements service.ExpenseStore over a slice.
type FakeExpenseStore struct {
	Expenses []*entity.Expense
}

func NewFakeExpenseStore() *FakeExpenseStore {
	return &FakeExpenseStore{}
}

func (s *FakeExpenseStore) Create(_ context.Context, expense *entity.Expense) error {
	cp := *expense
	s.Expenses = append(s.Expenses, &cp)
	return nil
}

func (s *FakeExpenseStore) FindAll(_ context.Context) ([]entity.Expense, error) {
	out := make([]entity.Expense, 0, len(s.Expenses))
	for _, ex := range s.Expenses {
		out = append(out, *ex)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].PaidOn.Equal(out[j].PaidOn) {
			return out[i].PaidOn.After(out[j].PaidOn)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *FakeExpenseStore) FindByID(_ context.Context, id string) (*entity.Expense, error) {
	for _, ex := range s.Expenses {
		if ex.ID == id {
			cp := *ex
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *FakeExpenseStore) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	for _, ex := range s.Expenses {
		if ex.ID == id {
			for k, v := range fields {
				switch k {
				case "payee":
					ex.Payee = v.(string)
				case "amount":
					ex.Amount = v.(decimal.Decimal)
				case "paid_on":
					ex.PaidOn = v.(time.Time)
				case "description":
					ex.Description = v.(string)
				case "updated_at":
					ex.UpdatedAt = v.(time.Time)
				}
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *FakeExpenseStore) Delete(_ context.Context, id string) error {
	for i, ex := range s.Expenses {
		if ex.ID == id {
			s.Expenses = append(s.Expenses[:i], s.Expenses[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// FakeEnrollmentStore implements service.EnrollmentStore over a slice.
type FakeEnrollmentStore struct {
	Requests []*entity.EnrollmentRequest
}

func NewFakeEnrollmentStore() *FakeEnrollmentStore {
	return &FakeEnrollmentStore{}
}

func (s *FakeEnrollmentStore) Create(_ context.Context, req *entity.EnrollmentRequest) error {
	cp := *req
	s.Requests = append(s.Requests, &cp)
	return nil
}

func (s *FakeEnrollmentStore) FindAll(_ context.Context) ([]entity.EnrollmentRequest, error) {
	out := make([]entity.EnrollmentRequest, 0, len(s.Requests))
	for _, req := range s.Requests {
		out = append(out, *req)
	}
	return out, nil
}

func (s *FakeEnrollmentStore) FindByID(_ context.Context, id string) (*entity.EnrollmentRequest, error) {
	for _, req := range s.Requests {
		if req.ID == id {
			cp := *req
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *FakeEnrollmentStore) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	for _, req := range s.Requests {
		if req.ID == id {
			applyEnrollmentFields(req, fields)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *FakeEnrollmentStore) UpdateStatusFromPending(_ context.Context, id string, fields map[string]interface{}) (bool, error) {
	for _, req := range s.Requests {
		if req.ID == id && req.Status == entity.EnrollmentPending {
			applyEnrollmentFields(req, fields)
			return true, nil
		}
	}
	return false, nil
}

func (s *FakeEnrollmentStore) Delete(_ context.Context, id string) error {
	for i, req := range s.Requests {
		if req.ID == id {
			s.Requests = append(s.Requests[:i], s.Requests[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func applyEnrollmentFields(req *entity.EnrollmentRequest, fields map[string]interface{}) {
	for k, v := range fields {
		switch k {
		case "child_name":
			req.ChildName = v.(string)
		case "parent_name":
			req.ParentName = v.(string)
		case "phone":
			req.Phone = v.(string)
		case "email":
			req.Email = v.(string)
		case "start_date":
			req.StartDate = v.(time.Time)
		case "status":
			req.Status = v.(string)
		case "notes":
			req.Notes = v.(string)
		case "updated_at":
			req.UpdatedAt = v.(time.Time)
		}
	}
}

// FakeEventStore implements service.EventStore over a slice.
type FakeEventStore struct {
	Events []*entity.CalendarEvent
}

func NewFakeEventStore() *FakeEventStore {
	return &FakeEventStore{}
}

func (s *FakeEventStore) Create(_ context.Context, ev *entity.CalendarEvent) error {
	cp := *ev
	s.Events = append(s.Events, &cp)
	return nil
}

func (s *FakeEventStore) FindAll(_ context.Context) ([]entity.CalendarEvent, error) {
	out := make([]entity.CalendarEvent, 0, len(s.Events))
	for _, ev := range s.Events {
		out = append(out, *ev)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartsAt.Equal(out[j].StartsAt) {
			return out[i].StartsAt.Before(out[j].StartsAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *FakeEventStore) FindByID(_ context.Context, id string) (*entity.CalendarEvent, error) {
	for _, ev := range s.Events {
		if ev.ID == id {
			cp := *ev
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *FakeEventStore) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	for _, ev := range s.Events {
		if ev.ID == id {
			for k, v := range fields {
				switch k {
				case "title":
					ev.Title = v.(string)
				case "location":
					ev.Location = v.(string)
				case "starts_at":
					ev.StartsAt = v.(time.Time)
				case "ends_at":
					ev.EndsAt = v.(time.Time)
				case "description":
					ev.Description = v.(string)
				case "updated_at":
					ev.UpdatedAt = v.(time.Time)
				}
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *FakeEventStore) Delete(_ context.Context, id string) error {
	for i, ev := range s.Events {
		if ev.ID == id {
			s.Events = append(s.Events[:i], s.Events[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
