package service

import (
	"context"
	"testing"

	"github.com/madhawadiyanath/daycare-core/internal/apperr"
	"github.com/madhawadiyanath/daycare-core/internal/testutil"
	"github.com/shopspring/decimal"
)

func newTestOfficeServices() *Services {
	return NewServices(
		testutil.NewFakeIncomeStore(),
		testutil.NewFakeExpenseStore(),
		testutil.NewFakeEnrollmentStore(),
		testutil.NewFakeEventStore(),
	)
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestFinanceSummaryExactTotals(t *testing.T) {
	svc := newTestOfficeServices()
	ctx := context.Background()

	// amounts chosen to break float accumulation
	for _, amt := range []string{"0.10", "0.20", "1000.37"} {
		if _, err := svc.Finance.CreateIncome(ctx, &CreateIncomeRequest{
			Source: "tuition", Amount: dec(amt),
		}); err != nil {
			t.Fatalf("CreateIncome failed: %v", err)
		}
	}
	for _, amt := range []string{"0.30", "200.07"} {
		if _, err := svc.Finance.CreateExpense(ctx, &CreateExpenseRequest{
			Payee: "grocer", Amount: dec(amt),
		}); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
	}

	summary, err := svc.Finance.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if !summary.TotalIncome.Equal(decimal.RequireFromString("1000.67")) {
		t.Fatalf("expected total income 1000.67, got %s", summary.TotalIncome)
	}
	if !summary.TotalExpense.Equal(decimal.RequireFromString("200.37")) {
		t.Fatalf("expected total expense 200.37, got %s", summary.TotalExpense)
	}
	if !summary.Balance.Equal(decimal.RequireFromString("800.30")) {
		t.Fatalf("expected balance 800.30, got %s", summary.Balance)
	}
}

func TestFinanceValidation(t *testing.T) {
	svc := newTestOfficeServices()
	ctx := context.Background()

	if _, err := svc.Finance.CreateIncome(ctx, &CreateIncomeRequest{Amount: dec("1.00")}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for missing source, got %v", err)
	}
	if _, err := svc.Finance.CreateIncome(ctx, &CreateIncomeRequest{Source: "tuition"}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for missing amount, got %v", err)
	}
	if _, err := svc.Finance.CreateExpense(ctx, &CreateExpenseRequest{Payee: "grocer", Amount: dec("-5.00")}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for negative amount, got %v", err)
	}
}

func TestFinanceUpdateAndDelete(t *testing.T) {
	svc := newTestOfficeServices()
	ctx := context.Background()

	income, err := svc.Finance.CreateIncome(ctx, &CreateIncomeRequest{
		Source: "tuition", Amount: dec("150.00"),
	})
	if err != nil {
		t.Fatalf("CreateIncome failed: %v", err)
	}

	updated, err := svc.Finance.UpdateIncome(ctx, income.ID, &UpdateIncomeRequest{Amount: dec("175.00")})
	if err != nil {
		t.Fatalf("UpdateIncome failed: %v", err)
	}
	if !updated.Amount.Equal(decimal.RequireFromString("175.00")) {
		t.Fatalf("expected amount 175.00, got %s", updated.Amount)
	}
	if updated.Source != "tuition" {
		t.Fatalf("partial update clobbered source: %s", updated.Source)
	}

	if err := svc.Finance.DeleteIncome(ctx, income.ID); err != nil {
		t.Fatalf("DeleteIncome failed: %v", err)
	}
	if err := svc.Finance.DeleteIncome(ctx, income.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found on repeat delete, got %v", err)
	}

	summary, err := svc.Finance.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if !summary.TotalIncome.Equal(decimal.Zero) {
		t.Fatalf("expected zero income after delete, got %s", summary.TotalIncome)
	}
}
