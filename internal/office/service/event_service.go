package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/madhawadiyanath/daycare-core/internal/apperr"
	"github.com/madhawadiyanath/daycare-core/internal/office/entity"
)

// EventService manages the center calendar.
type EventService struct {
	events EventStore
}

func NewEventService(events EventStore) *EventService {
	return &EventService{events: events}
}

type CreateEventRequest struct {
	Title       string     `json:"title" binding:"required"`
	Location    string     `json:"location"`
	StartsAt    *time.Time `json:"startsAt" binding:"required"`
	EndsAt      *time.Time `json:"endsAt" binding:"required"`
	Description string     `json:"description"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Location    *string    `json:"location"`
	StartsAt    *time.Time `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt"`
	Description *string    `json:"description"`
}

func (s *EventService) Create(ctx context.Context, req *CreateEventRequest) (*entity.CalendarEvent, error) {
	if req.Title == "" {
		return nil, apperr.Validation("title is required")
	}
	if req.StartsAt == nil || req.EndsAt == nil {
		return nil, apperr.Validation("startsAt and endsAt are required")
	}
	if req.EndsAt.Before(*req.StartsAt) {
		return nil, apperr.Validation("endsAt cannot be before startsAt")
	}
	now := time.Now()
	ev := &entity.CalendarEvent{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Location:    req.Location,
		StartsAt:    *req.StartsAt,
		EndsAt:      *req.EndsAt,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.events.Create(ctx, ev); err != nil {
		return nil, storeErr("event.Create", ev.ID, err)
	}
	return ev, nil
}

func (s *EventService) List(ctx context.Context) ([]entity.CalendarEvent, error) {
	events, err := s.events.FindAll(ctx)
	if err != nil {
		return nil, storeErr("event.List", "", err)
	}
	return events, nil
}

func (s *EventService) Get(ctx context.Context, id string) (*entity.CalendarEvent, error) {
	ev, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("event.Get", id, err)
	}
	return ev, nil
}

func (s *EventService) Update(ctx context.Context, id string, req *UpdateEventRequest) (*entity.CalendarEvent, error) {
	fields := make(map[string]interface{})
	if req.Title != nil {
		if *req.Title == "" {
			return nil, apperr.Validation("title cannot be empty")
		}
		fields["title"] = *req.Title
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.StartsAt != nil || req.EndsAt != nil {
		// When only one bound moves, the other comes from the stored row so
		// the update cannot leave the event ending before it starts.
		start, end := req.StartsAt, req.EndsAt
		if start == nil || end == nil {
			current, err := s.events.FindByID(ctx, id)
			if err != nil {
				return nil, storeErr("event.Update", id, err)
			}
			if start == nil {
				start = &current.StartsAt
			}
			if end == nil {
				end = &current.EndsAt
			}
		}
		if end.Before(*start) {
			return nil, apperr.Validation("endsAt cannot be before startsAt")
		}
		if req.StartsAt != nil {
			fields["starts_at"] = *req.StartsAt
		}
		if req.EndsAt != nil {
			fields["ends_at"] = *req.EndsAt
		}
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	fields["updated_at"] = time.Now()

	if err := s.events.UpdateFields(ctx, id, fields); err != nil {
		return nil, storeErr("event.Update", id, err)
	}
	return s.Get(ctx, id)
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.events.Delete(ctx, id); err != nil {
		return storeErr("event.Delete", id, err)
	}
	return nil
}
