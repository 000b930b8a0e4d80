package repository

import (
	"context"
	"errors"

	"github.com/madhawadiyanath/daycare-core/internal/office/entity"
	"gorm.io/gorm"
)

// EventRepository persists calendar events.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, ev *entity.CalendarEvent) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

func (r *EventRepository) FindAll(ctx context.Context) ([]entity.CalendarEvent, error) {
	var events []entity.CalendarEvent
	err := r.db.WithContext(ctx).Order("starts_at ASC, id ASC").Find(&events).Error
	return events, err
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*entity.CalendarEvent, error) {
	var ev entity.CalendarEvent
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&ev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *EventRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&entity.CalendarEvent{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.CalendarEvent{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
