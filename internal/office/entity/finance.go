package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is a recorded revenue entry. Amounts are fixed-point decimals so
// summary totals stay exact.
type Income struct {
	ID          string          `json:"id" gorm:"primaryKey;size:36"`
	Source      string          `json:"source" gorm:"size:200;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(15,2);not null"`
	ReceivedOn  time.Time       `json:"receivedOn" gorm:"index;not null"`
	Description string          `json:"description" gorm:"size:500"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (Income) TableName() string {
	return "incomes"
}

// Expense is a recorded cost entry.
type Expense struct {
	ID          string          `json:"id" gorm:"primaryKey;size:36"`
	Payee       string          `json:"payee" gorm:"size:200;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(15,2);not null"`
	PaidOn      time.Time       `json:"paidOn" gorm:"index;not null"`
	Description string          `json:"description" gorm:"size:500"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (Expense) TableName() string {
	return "expenses"
}
