package service

import (
	"context"
	"testing"
	"time"

	"github.com/madhawadiyanath/daycare-core/internal/apperr"
	"github.com/madhawadiyanath/daycare-core/internal/office/entity"
)

func timep(v time.Time) *time.Time { return &v }

func seedEnrollment(t *testing.T, svc *Services) *entity.EnrollmentRequest {
	t.Helper()
	req, err := svc.Enrollment.Create(context.Background(), &CreateEnrollmentRequest{
		ChildName:  "Maya",
		ParentName: "Jordan",
		StartDate:  timep(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return req
}

func TestEnrollmentStartsPending(t *testing.T) {
	svc := newTestOfficeServices()

	req := seedEnrollment(t, svc)
	if req.Status != entity.EnrollmentPending {
		t.Fatalf("expected pending status, got %s", req.Status)
	}
}

func TestEnrollmentDecideApprove(t *testing.T) {
	svc := newTestOfficeServices()
	ctx := context.Background()

	req := seedEnrollment(t, svc)
	decided, err := svc.Enrollment.Decide(ctx, req.ID, &DecideEnrollmentRequest{Status: entity.EnrollmentApproved})
	if err != nil {
		t.Fatalf("Decide failed: %v", err)
	}
	if decided.Status != entity.EnrollmentApproved {
		t.Fatalf("expected approved, got %s", decided.Status)
	}
}

func TestEnrollmentTerminalStatusIsFinal(t *testing.T) {
	svc := newTestOfficeServices()
	ctx := context.Background()

	req := seedEnrollment(t, svc)
	if _, err := svc.Enrollment.Decide(ctx, req.ID, &DecideEnrollmentRequest{Status: entity.EnrollmentRejected}); err != nil {
		t.Fatalf("Decide failed: %v", err)
	}

	// a decided request cannot be decided again
	_, err := svc.Enrollment.Decide(ctx, req.ID, &DecideEnrollmentRequest{Status: entity.EnrollmentApproved})
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict on second decision, got %v", err)
	}

	current, err := svc.Enrollment.Get(ctx, req.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if current.Status != entity.EnrollmentRejected {
		t.Fatalf("expected status to stay rejected, got %s", current.Status)
	}
}

func TestEnrollmentDecideValidation(t *testing.T) {
	svc := newTestOfficeServices()
	ctx := context.Background()

	req := seedEnrollment(t, svc)
	if _, err := svc.Enrollment.Decide(ctx, req.ID, &DecideEnrollmentRequest{Status: "pending"}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for pending target, got %v", err)
	}
	if _, err := svc.Enrollment.Decide(ctx, req.ID, &DecideEnrollmentRequest{Status: "waitlisted"}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
}

func TestEnrollmentUpdateLeavesStatusAlone(t *testing.T) {
	svc := newTestOfficeServices()
	ctx := context.Background()

	req := seedEnrollment(t, svc)
	phone := "555-0199"
	updated, err := svc.Enrollment.Update(ctx, req.ID, &UpdateEnrollmentRequest{Phone: &phone})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Phone != phone {
		t.Fatalf("expected phone updated, got %s", updated.Phone)
	}
	if updated.Status != entity.EnrollmentPending {
		t.Fatalf("contact update must not touch status, got %s", updated.Status)
	}
	if updated.ChildName != "Maya" {
		t.Fatalf("partial update clobbered childName: %s", updated.ChildName)
	}
}

func TestEnrollmentDecideUnknownID(t *testing.T) {
	svc := newTestOfficeServices()

	_, err := svc.Enrollment.Decide(context.Background(), "missing", &DecideEnrollmentRequest{Status: entity.EnrollmentApproved})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
