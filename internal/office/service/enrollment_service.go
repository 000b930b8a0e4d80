package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/madhawadiyanath/daycare-core/internal/apperr"
	"github.com/madhawadiyanath/daycare-core/internal/office/entity"
)

// EnrollmentService manages enrollment requests and their status lifecycle.
type EnrollmentService struct {
	enrollments EnrollmentStore
}

func NewEnrollmentService(enrollments EnrollmentStore) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments}
}

type CreateEnrollmentRequest struct {
	ChildName  string     `json:"childName" binding:"required"`
	ParentName string     `json:"parentName" binding:"required"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email"`
	StartDate  *time.Time `json:"startDate" binding:"required"`
	Notes      string     `json:"notes"`
}

type UpdateEnrollmentRequest struct {
	ChildName  *string    `json:"childName"`
	ParentName *string    `json:"parentName"`
	Phone      *string    `json:"phone"`
	Email      *string    `json:"email"`
	StartDate  *time.Time `json:"startDate"`
	Notes      *string    `json:"notes"`
}

type DecideEnrollmentRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

func (s *EnrollmentService) Create(ctx context.Context, req *CreateEnrollmentRequest) (*entity.EnrollmentRequest, error) {
	if req.ChildName == "" {
		return nil, apperr.Validation("childName is required")
	}
	if req.ParentName == "" {
		return nil, apperr.Validation("parentName is required")
	}
	if req.StartDate == nil {
		return nil, apperr.Validation("startDate is required")
	}
	now := time.Now()
	enrollment := &entity.EnrollmentRequest{
		ID:         uuid.New().String(),
		ChildName:  req.ChildName,
		ParentName: req.ParentName,
		Phone:      req.Phone,
		Email:      req.Email,
		StartDate:  *req.StartDate,
		Status:     entity.EnrollmentPending,
		Notes:      req.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		return nil, storeErr("enrollment.Create", enrollment.ID, err)
	}
	return enrollment, nil
}

func (s *EnrollmentService) List(ctx context.Context) ([]entity.EnrollmentRequest, error) {
	requests, err := s.enrollments.FindAll(ctx)
	if err != nil {
		return nil, storeErr("enrollment.List", "", err)
	}
	return requests, nil
}

func (s *EnrollmentService) Get(ctx context.Context, id string) (*entity.EnrollmentRequest, error) {
	req, err := s.enrollments.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("enrollment.Get", id, err)
	}
	return req, nil
}

// Update edits contact fields only. Status moves exclusively through Decide.
func (s *EnrollmentService) Update(ctx context.Context, id string, req *UpdateEnrollmentRequest) (*entity.EnrollmentRequest, error) {
	fields := make(map[string]interface{})
	if req.ChildName != nil {
		if *req.ChildName == "" {
			return nil, apperr.Validation("childName cannot be empty")
		}
		fields["child_name"] = *req.ChildName
	}
	if req.ParentName != nil {
		if *req.ParentName == "" {
			return nil, apperr.Validation("parentName cannot be empty")
		}
		fields["parent_name"] = *req.ParentName
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.StartDate != nil {
		fields["start_date"] = *req.StartDate
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	fields["updated_at"] = time.Now()

	if err := s.enrollments.UpdateFields(ctx, id, fields); err != nil {
		return nil, storeErr("enrollment.Update", id, err)
	}
	return s.Get(ctx, id)
}

// Decide moves a pending request to approved or rejected. A request that is
// already decided stays as it is and the call fails with a conflict.
func (s *EnrollmentService) Decide(ctx context.Context, id string, req *DecideEnrollmentRequest) (*entity.EnrollmentRequest, error) {
	if req.Status != entity.EnrollmentApproved && req.Status != entity.EnrollmentRejected {
		return nil, apperr.Validation("status must be approved or rejected")
	}
	fields := map[string]interface{}{
		"status":     req.Status,
		"updated_at": time.Now(),
	}
	if req.Notes != "" {
		fields["notes"] = req.Notes
	}
	moved, err := s.enrollments.UpdateStatusFromPending(ctx, id, fields)
	if err != nil {
		return nil, storeErr("enrollment.Decide", id, err)
	}
	if !moved {
		current, err := s.enrollments.FindByID(ctx, id)
		if err != nil {
			return nil, storeErr("enrollment.Decide", id, err)
		}
		return nil, apperr.Conflict("enrollment.Decide", id, "request already "+current.Status)
	}
	return s.Get(ctx, id)
}

func (s *EnrollmentService) Delete(ctx context.Context, id string) error {
	if err := s.enrollments.Delete(ctx, id); err != nil {
		return storeErr("enrollment.Delete", id, err)
	}
	return nil
}
