package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/madhawadiyanath/daycare-core/internal/apperr"
	"github.com/madhawadiyanath/daycare-core/internal/office/entity"
	"github.com/shopspring/decimal"
)

// FinanceService records incomes and expenses and computes their totals.
type FinanceService struct {
	incomes  IncomeStore
	expenses ExpenseStore
}

func NewFinanceService(incomes IncomeStore, expenses ExpenseStore) *FinanceService {
	return &FinanceService{incomes: incomes, expenses: expenses}
}

type CreateIncomeRequest struct {
	Source      string           `json:"source" binding:"required"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	ReceivedOn  *time.Time       `json:"receivedOn"`
	Description string           `json:"description"`
}

type UpdateIncomeRequest struct {
	Source      *string          `json:"source"`
	Amount      *decimal.Decimal `json:"amount"`
	ReceivedOn  *time.Time       `json:"receivedOn"`
	Description *string          `json:"description"`
}

type CreateExpenseRequest struct {
	Payee       string           `json:"payee" binding:"required"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	PaidOn      *time.Time       `json:"paidOn"`
	Description string           `json:"description"`
}

type UpdateExpenseRequest struct {
	Payee       *string          `json:"payee"`
	Amount      *decimal.Decimal `json:"amount"`
	PaidOn      *time.Time       `json:"paidOn"`
	Description *string          `json:"description"`
}

// FinanceSummary reports exact running totals over all recorded entries.
type FinanceSummary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
}

func validateAmount(amount *decimal.Decimal) error {
	if amount == nil {
		return apperr.Validation("amount is required")
	}
	if amount.IsNegative() {
		return apperr.Validation("amount cannot be negative")
	}
	return nil
}

func (s *FinanceService) CreateIncome(ctx context.Context, req *CreateIncomeRequest) (*entity.Income, error) {
	if req.Source == "" {
		return nil, apperr.Validation("source is required")
	}
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	now := time.Now()
	receivedOn := now
	if req.ReceivedOn != nil {
		receivedOn = *req.ReceivedOn
	}
	income := &entity.Income{
		ID:          uuid.New().String(),
		Source:      req.Source,
		Amount:      *req.Amount,
		ReceivedOn:  receivedOn,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.incomes.Create(ctx, income); err != nil {
		return nil, storeErr("finance.CreateIncome", income.ID, err)
	}
	return income, nil
}

func (s *FinanceService) ListIncomes(ctx context.Context) ([]entity.Income, error) {
	incomes, err := s.incomes.FindAll(ctx)
	if err != nil {
		return nil, storeErr("finance.ListIncomes", "", err)
	}
	return incomes, nil
}

func (s *FinanceService) UpdateIncome(ctx context.Context, id string, req *UpdateIncomeRequest) (*entity.Income, error) {
	fields := make(map[string]interface{})
	if req.Source != nil {
		if *req.Source == "" {
			return nil, apperr.Validation("source cannot be empty")
		}
		fields["source"] = *req.Source
	}
	if req.Amount != nil {
		if err := validateAmount(req.Amount); err != nil {
			return nil, err
		}
		fields["amount"] = *req.Amount
	}
	if req.ReceivedOn != nil {
		fields["received_on"] = *req.ReceivedOn
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	fields["updated_at"] = time.Now()

	if err := s.incomes.UpdateFields(ctx, id, fields); err != nil {
		return nil, storeErr("finance.UpdateIncome", id, err)
	}
	income, err := s.incomes.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("finance.UpdateIncome", id, err)
	}
	return income, nil
}

func (s *FinanceService) DeleteIncome(ctx context.Context, id string) error {
	if err := s.incomes.Delete(ctx, id); err != nil {
		return storeErr("finance.DeleteIncome", id, err)
	}
	return nil
}

func (s *FinanceService) CreateExpense(ctx context.Context, req *CreateExpenseRequest) (*entity.Expense, error) {
	if req.Payee == "" {
		return nil, apperr.Validation("payee is required")
	}
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	now := time.Now()
	paidOn := now
	if req.PaidOn != nil {
		paidOn = *req.PaidOn
	}
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		Payee:       req.Payee,
		Amount:      *req.Amount,
		PaidOn:      paidOn,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, storeErr("finance.CreateExpense", expense.ID, err)
	}
	return expense, nil
}

func (s *FinanceService) ListExpenses(ctx context.Context) ([]entity.Expense, error) {
	expenses, err := s.expenses.FindAll(ctx)
	if err != nil {
		return nil, storeErr("finance.ListExpenses", "", err)
	}
	return expenses, nil
}

func (s *FinanceService) UpdateExpense(ctx context.Context, id string, req *UpdateExpenseRequest) (*entity.Expense, error) {
	fields := make(map[string]interface{})
	if req.Payee != nil {
		if *req.Payee == "" {
			return nil, apperr.Validation("payee cannot be empty")
		}
		fields["payee"] = *req.Payee
	}
	if req.Amount != nil {
		if err := validateAmount(req.Amount); err != nil {
			return nil, err
		}
		fields["amount"] = *req.Amount
	}
	if req.PaidOn != nil {
		fields["paid_on"] = *req.PaidOn
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	fields["updated_at"] = time.Now()

	if err := s.expenses.UpdateFields(ctx, id, fields); err != nil {
		return nil, storeErr("finance.UpdateExpense", id, err)
	}
	expense, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("finance.UpdateExpense", id, err)
	}
	return expense, nil
}

func (s *FinanceService) DeleteExpense(ctx context.Context, id string) error {
	if err := s.expenses.Delete(ctx, id); err != nil {
		return storeErr("finance.DeleteExpense", id, err)
	}
	return nil
}

// Summary folds all entries into exact totals. Like the issuance summaries it
// is computed on demand from current state, never cached.
func (s *FinanceService) Summary(ctx context.Context) (*FinanceSummary, error) {
	incomes, err := s.incomes.FindAll(ctx)
	if err != nil {
		return nil, storeErr("finance.Summary", "", err)
	}
	expenses, err := s.expenses.FindAll(ctx)
	if err != nil {
		return nil, storeErr("finance.Summary", "", err)
	}
	totalIncome := decimal.Zero
	for _, in := range incomes {
		totalIncome = totalIncome.Add(in.Amount)
	}
	totalExpense := decimal.Zero
	for _, ex := range expenses {
		totalExpense = totalExpense.Add(ex.Amount)
	}
	return &FinanceSummary{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
	}, nil
}
