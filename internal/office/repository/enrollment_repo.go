package repository

import (
	"context"
	"errors"

	"github.com/madhawadiyanath/daycare-core/internal/office/entity"
	"gorm.io/gorm"
)

// EnrollmentRepository persists enrollment requests.
type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) Create(ctx context.Context, req *entity.EnrollmentRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *EnrollmentRepository) FindAll(ctx context.Context) ([]entity.EnrollmentRequest, error) {
	var requests []entity.EnrollmentRequest
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&requests).Error
	return requests, err
}

func (r *EnrollmentRepository) FindByID(ctx context.Context, id string) (*entity.EnrollmentRequest, error) {
	var req entity.EnrollmentRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *EnrollmentRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&entity.EnrollmentRequest{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatusFromPending moves a pending request into a terminal status. The
// status guard lives in the WHERE clause so concurrent decisions cannot both
// win; zero rows means either a missing request or one already decided.
func (r *EnrollmentRepository) UpdateStatusFromPending(ctx context.Context, id string, fields map[string]interface{}) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entity.EnrollmentRequest{}).
		Where("id = ? AND status = ?", id, entity.EnrollmentPending).
		Updates(fields)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *EnrollmentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.EnrollmentRequest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
