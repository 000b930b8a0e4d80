package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/madhawadiyanath/daycare-core/internal/office/service"
)

// FinanceHandler exposes income and expense CRUD plus the totals summary.
type FinanceHandler struct {
	finance *service.FinanceService
}

func NewFinanceHandler(finance *service.FinanceService) *FinanceHandler {
	return &FinanceHandler{finance: finance}
}

func (h *FinanceHandler) CreateIncome(c *gin.Context) {
	var req service.CreateIncomeRequest
	if !bindJSON(c, &req) {
		return
	}
	income, err := h.finance.CreateIncome(requestContext(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, income)
}

func (h *FinanceHandler) ListIncomes(c *gin.Context) {
	incomes, err := h.finance.ListIncomes(requestContext(c))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, incomes)
}

func (h *FinanceHandler) UpdateIncome(c *gin.Context) {
	var req service.UpdateIncomeRequest
	if !bindJSON(c, &req) {
		return
	}
	income, err := h.finance.UpdateIncome(requestContext(c), c.Param("id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, income)
}

func (h *FinanceHandler) DeleteIncome(c *gin.Context) {
	if err := h.finance.DeleteIncome(requestContext(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	success(c, gin.H{"id": c.Param("id")})
}

func (h *FinanceHandler) CreateExpense(c *gin.Context) {
	var req service.CreateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}
	expense, err := h.finance.CreateExpense(requestContext(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, expense)
}

func (h *FinanceHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.finance.ListExpenses(requestContext(c))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, expenses)
}

func (h *FinanceHandler) UpdateExpense(c *gin.Context) {
	var req service.UpdateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}
	expense, err := h.finance.UpdateExpense(requestContext(c), c.Param("id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, expense)
}

func (h *FinanceHandler) DeleteExpense(c *gin.Context) {
	if err := h.finance.DeleteExpense(requestContext(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	success(c, gin.H{"id": c.Param("id")})
}

func (h *FinanceHandler) Summary(c *gin.Context) {
	summary, err := h.finance.Summary(requestContext(c))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, summary)
}
