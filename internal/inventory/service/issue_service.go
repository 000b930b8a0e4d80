package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/madhawadiyanath/daycare-core/internal/apperr"
	"github.com/madhawadiyanath/daycare-core/internal/config"
	"github.com/madhawadiyanath/daycare-core/internal/inventory/entity"
	"github.com/madhawadiyanath/daycare-core/internal/inventory/repository"
)

// IssueService records withdrawals against the stock pool. Recording is
// decoupled from stock adjustment: the event does not have to match a catalog
// item, and stock is left alone unless the deduct_stock flag is on.
type IssueService struct {
	issues IssueStore
	cfg    config.InventoryConfig
}

func NewIssueService(issues IssueStore, cfg config.InventoryConfig) *IssueService {
	return &IssueService{issues: issues, cfg: cfg}
}

// RecordIssueRequest carries one issuance. Quantity is a pointer so the
// required check can tell zero from absent; zero is rejected either way.
type RecordIssueRequest struct {
	Category  string     `json:"category" binding:"required"`
	Name      string     `json:"name" binding:"required"`
	Quantity  *int64     `json:"quantity" binding:"required"`
	IssueDate *time.Time `json:"issueDate"`
}

func (s *IssueService) RecordIssue(ctx context.Context, req *RecordIssueRequest) (*entity.IssueEvent, error) {
	if req.Name == "" {
		return nil, apperr.Validation("name is required")
	}
	if req.Category == "" {
		return nil, apperr.Validation("category is required")
	}
	if req.Quantity == nil {
		return nil, apperr.Validation("quantity is required")
	}
	if *req.Quantity <= 0 {
		return nil, apperr.Validation("quantity must be positive")
	}

	now := time.Now()
	issueDate := now
	if req.IssueDate != nil {
		issueDate = *req.IssueDate
	}
	ev := &entity.IssueEvent{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Category:  req.Category,
		Quantity:  *req.Quantity,
		IssueDate: issueDate,
		CreatedAt: now,
	}

	key := itemKey(req.Name, req.Category)
	if s.cfg.DeductStock {
		if err := s.issues.AppendWithDeduction(ctx, ev); err != nil {
			// In deduct mode, issuing an unknown product is a consistency
			// conflict rather than a lookup miss.
			if errors.Is(err, repository.ErrNotFound) {
				return nil, apperr.Conflict("issue.RecordIssue", key, "no catalog item matches the issued product")
			}
			return nil, storeErr("issue.RecordIssue", key, err)
		}
		return ev, nil
	}

	if err := s.issues.Append(ctx, ev); err != nil {
		return nil, storeErr("issue.RecordIssue", key, err)
	}
	return ev, nil
}

// ListAll exposes the raw log, oldest first.
func (s *IssueService) ListAll(ctx context.Context) ([]entity.IssueEvent, error) {
	events, err := s.issues.FindAll(ctx)
	if err != nil {
		return nil, storeErr("issue.ListAll", "", err)
	}
	return events, nil
}
