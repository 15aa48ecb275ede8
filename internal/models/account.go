package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidDailyLimit    = errors.New("daily limit must be positive")
	ErrInvalidSavingsAmount = errors.New("savings amount cannot be negative")
	ErrInsufficientSavings  = errors.New("insufficient savings")
)

// Account is a personal bank account. Balance is signed; SavingsAmount is the
// sub-balance accumulated by saving plans.
type Account struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	Balance       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	DailyLimit    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"daily_limit"`
	SavingsAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"savings_amount"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"-"`
	Installments []Installment `gorm:"foreignKey:AccountID" json:"-"`
	Savings      []Saving      `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

func (a *Account) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if strings.TrimSpace(a.Name) == "" {
		return errors.New("account name is required")
	}

	if !a.DailyLimit.IsPositive() {
		return ErrInvalidDailyLimit
	}

	if a.SavingsAmount.IsNegative() {
		return ErrInvalidSavingsAmount
	}

	return nil
}

// Debit subtracts amount from the balance. Admission is checked separately.
func (a *Account) Debit(amount decimal.Decimal) {
	a.Balance = a.Balance.Sub(amount)
}

// Credit adds amount to the balance.
func (a *Account) Credit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}

// MoveToSavings debits the balance and credits the savings sub-balance by the
// same amount.
func (a *Account) MoveToSavings(amount decimal.Decimal) {
	a.Balance = a.Balance.Sub(amount)
	a.SavingsAmount = a.SavingsAmount.Add(amount)
}

// WithdrawSavings moves amount from the savings sub-balance back to the balance.
func (a *Account) WithdrawSavings(amount decimal.Decimal) error {
	if a.SavingsAmount.LessThan(amount) {
		return ErrInsufficientSavings
	}
	a.SavingsAmount = a.SavingsAmount.Sub(amount)
	a.Credit(amount)
	return nil
}

// RefundSavings reduces the savings sub-balance by amount, never below zero.
// It returns the amount actually removed.
func (a *Account) RefundSavings(amount decimal.Decimal) decimal.Decimal {
	removed := decimal.Min(amount, a.SavingsAmount)
	if removed.IsNegative() {
		return decimal.Zero
	}
	a.SavingsAmount = a.SavingsAmount.Sub(removed)
	return removed
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}
