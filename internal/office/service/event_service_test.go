package service

import (
	"context"
	"testing"
	"time"

	"github.com/madhawadiyanath/daycare-core/internal/apperr"
)

func TestEventCreateValidatesRange(t *testing.T) {
	svc := newTestOfficeServices()
	ctx := context.Background()

	start := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	_, err := svc.Event.Create(ctx, &CreateEventRequest{
		Title:    "Open day",
		StartsAt: timep(start),
		EndsAt:   timep(start.Add(-time.Hour)),
	})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for inverted range, got %v", err)
	}
}

func TestEventUpdateValidatesRangeAgainstStoredBounds(t *testing.T) {
	svc := newTestOfficeServices()
	ctx := context.Background()

	start := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	ev, err := svc.Event.Create(ctx, &CreateEventRequest{
		Title:    "Open day",
		StartsAt: timep(start),
		EndsAt:   timep(end),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// moving only one bound still has to respect the stored other bound
	if _, err := svc.Event.Update(ctx, ev.ID, &UpdateEventRequest{
		EndsAt: timep(start.Add(-time.Hour)),
	}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for endsAt before stored startsAt, got %v", err)
	}
	if _, err := svc.Event.Update(ctx, ev.ID, &UpdateEventRequest{
		StartsAt: timep(end.Add(time.Hour)),
	}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for startsAt after stored endsAt, got %v", err)
	}

	current, err := svc.Event.Get(ctx, ev.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !current.StartsAt.Equal(start) || !current.EndsAt.Equal(end) {
		t.Fatalf("rejected updates changed the event: %v / %v", current.StartsAt, current.EndsAt)
	}

	// a single-bound update inside the range goes through
	updated, err := svc.Event.Update(ctx, ev.ID, &UpdateEventRequest{
		EndsAt: timep(start.Add(time.Hour)),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !updated.EndsAt.Equal(start.Add(time.Hour)) || !updated.StartsAt.Equal(start) {
		t.Fatalf("unexpected bounds after update: %v / %v", updated.StartsAt, updated.EndsAt)
	}

	// replacing both bounds with an inverted pair is still rejected
	if _, err := svc.Event.Update(ctx, ev.ID, &UpdateEventRequest{
		StartsAt: timep(end),
		EndsAt:   timep(start),
	}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for inverted pair, got %v", err)
	}
}

func TestEventListOrderedByStart(t *testing.T) {
	svc := newTestOfficeServices()
	ctx := context.Background()

	base := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	for _, offset := range []time.Duration{48 * time.Hour, 0, 24 * time.Hour} {
		if _, err := svc.Event.Create(ctx, &CreateEventRequest{
			Title:    "Activity",
			StartsAt: timep(base.Add(offset)),
			EndsAt:   timep(base.Add(offset + time.Hour)),
		}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	events, err := svc.Event.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].StartsAt.Before(events[i-1].StartsAt) {
			t.Fatalf("events out of order at %d", i)
		}
	}
}
