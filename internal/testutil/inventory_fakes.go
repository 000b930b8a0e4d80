package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/madhawadiyanath/daycare-core/internal/inventory/entity"
	"github.com/madhawadiyanath/daycare-core/internal/inventory/repository"
)

// In-memory store fakes mirroring the semantics of the gorm repositories:
// the same sentinel errors, the same ordering, the same winner rule for
// duplicate catalog keys.

// FakeItemStore implements service.ItemStore over a slice.
type FakeItemStore struct {
	Items []*entity.CatalogItem
}

func NewFakeItemStore() *FakeItemStore {
	return &FakeItemStore{}
}

func (s *FakeItemStore) Create(_ context.Context, item *entity.CatalogItem) error {
	cp := *item
	s.Items = append(s.Items, &cp)
	return nil
}

func (s *FakeItemStore) FindAll(_ context.Context) ([]entity.CatalogItem, error) {
	out := make([]entity.CatalogItem, 0, len(s.Items))
	for _, it := range s.Items {
		out = append(out, *it)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedOn.Equal(out[j].CreatedOn) {
			return out[i].CreatedOn.Before(out[j].CreatedOn)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *FakeItemStore) FindByID(_ context.Context, id string) (*entity.CatalogItem, error) {
	for _, it := range s.Items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *FakeItemStore) FindByKey(_ context.Context, name, category string) (*entity.CatalogItem, error) {
	var best *entity.CatalogItem
	for _, it := range s.Items {
		if it.Name != name || it.Category != category {
			continue
		}
		if best == nil || it.ModifiedOn.After(best.ModifiedOn) ||
			(it.ModifiedOn.Equal(best.ModifiedOn) && it.ID > best.ID) {
			best = it
		}
	}
	if best == nil {
		return nil, repository.ErrNotFound
	}
	cp := *best
	return &cp, nil
}

func (s *FakeItemStore) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	for _, it := range s.Items {
		if it.ID == id {
			applyItemFields(it, fields)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *FakeItemStore) Delete(_ context.Context, id string) error {
	for i, it := range s.Items {
		if it.ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *FakeItemStore) ReconcileStock(_ context.Context, id string, total int64, now time.Time) error {
	for _, it := range s.Items {
		if it.ID != id {
			continue
		}
		if it.Stock < total {
			return repository.ErrInsufficientStock
		}
		it.Stock -= total
		nowCp := now
		it.ReconciledAt = &nowCp
		it.ModifiedOn = now
		return nil
	}
	return repository.ErrNotFound
}

func applyItemFields(it *entity.CatalogItem, fields map[string]interface{}) {
	for k, v := range fields {
		switch k {
		case "name":
			it.Name = v.(string)
		case "category":
			it.Category = v.(string)
		case "stock":
			it.Stock = v.(int64)
		case "expiry":
			t := v.(time.Time)
			it.Expiry = &t
		case "supplier":
			sup := v.(string)
			it.Supplier = &sup
		case "modified_on":
			it.ModifiedOn = v.(time.Time)
		}
	}
}

// FakeIssueStore implements service.IssueStore over a slice. Deduction needs
// the catalog, so the fake holds a reference to the item store it runs
// against, the way the gorm repository shares the database handle.
type FakeIssueStore struct {
	Events []*entity.IssueEvent
	Items  *FakeItemStore
}

func NewFakeIssueStore(items *FakeItemStore) *FakeIssueStore {
	return &FakeIssueStore{Items: items}
}

func (s *FakeIssueStore) Append(_ context.Context, ev *entity.IssueEvent) error {
	cp := *ev
	s.Events = append(s.Events, &cp)
	return nil
}

func (s *FakeIssueStore) AppendWithDeduction(ctx context.Context, ev *entity.IssueEvent) error {
	item, err := s.Items.FindByKey(ctx, ev.Name, ev.Category)
	if err != nil {
		return err
	}
	if item.Stock < ev.Quantity {
		return repository.ErrInsufficientStock
	}
	for _, it := range s.Items.Items {
		if it.ID == item.ID {
			it.Stock -= ev.Quantity
			it.ModifiedOn = time.Now()
		}
	}
	return s.Append(ctx, ev)
}

func (s *FakeIssueStore) FindAll(_ context.Context) ([]entity.IssueEvent, error) {
	out := make([]entity.IssueEvent, 0, len(s.Events))
	for _, ev := range s.Events {
		out = append(out, *ev)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *FakeIssueStore) TotalIssuedBetween(_ context.Context, name, category string, since, upTo time.Time) (int64, error) {
	var total int64
	for _, ev := range s.Events {
		if ev.Name == name && ev.Category == category && ev.IssueDate.After(since) && !ev.IssueDate.After(upTo) {
			total += ev.Quantity
		}
	}
	return total, nil
}

// FakeSupplierStore implements service.SupplierStore over a slice.
type FakeSupplierStore struct {
	Suppliers []*entity.Supplier
}

func NewFakeSupplierStore() *FakeSupplierStore {
	return &FakeSupplierStore{}
}

func (s *FakeSupplierStore) Create(_ context.Context, sup *entity.Supplier) error {
	cp := *sup
	s.Suppliers = append(s.Suppliers, &cp)
	return nil
}

func (s *FakeSupplierStore) FindAll(_ context.Context) ([]entity.Supplier, error) {
	out := make([]entity.Supplier, 0, len(s.Suppliers))
	for _, sup := range s.Suppliers {
		out = append(out, *sup)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *FakeSupplierStore) FindByID(_ context.Context, id string) (*entity.Supplier, error) {
	for _, sup := range s.Suppliers {
		if sup.ID == id {
			cp := *sup
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *FakeSupplierStore) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	for _, sup := range s.Suppliers {
		if sup.ID == id {
			for k, v := range fields {
				switch k {
				case "name":
					sup.Name = v.(string)
				case "contact_name":
					sup.ContactName = v.(string)
				case "phone":
					sup.Phone = v.(string)
				case "email":
					sup.Email = v.(string)
				case "address":
					sup.Address = v.(string)
				case "notes":
					sup.Notes = v.(string)
				case "updated_at":
					sup.UpdatedAt = v.(time.Time)
				}
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *FakeSupplierStore) Delete(_ context.Context, id string) error {
	for i, sup := range s.Suppliers {
		if sup.ID == id {
			s.Suppliers = append(s.Suppliers[:i], s.Suppliers[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
