package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypePayment     = "PAYMENT"
	TransactionTypeInstallment = "INSTALLMENT"
	TransactionTypeSaving      = "SAVING"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrZeroAmount             = errors.New("transaction amount must not be zero")
	ErrTransactionImmutable   = errors.New("ledger entries are immutable once recorded")
)

// Transaction is one append-only ledger entry. A negative Amount is a debit,
// a positive Amount a credit.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	TransactionType string          `gorm:"type:varchar(20);not null" json:"transaction_type"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description     string          `gorm:"type:text;not null" json:"description"`
	Date            time.Time       `gorm:"not null;index" json:"date"`
	Reference       string          `gorm:"type:varchar(100);index" json:"reference,omitempty"`
	CreatedAt       time.Time       `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Reference == "" {
		t.Reference = GenerateTransactionReference(t.TransactionType)
	}

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	return t.Validate()
}

// BeforeUpdate rejects every update; entries are only ever appended.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return ErrTransactionImmutable
}

// BeforeDelete hook for Transaction
func (t *Transaction) BeforeDelete(tx *gorm.DB) error {
	return ErrTransactionImmutable
}

func (t *Transaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if t.Amount.IsZero() {
		return ErrZeroAmount
	}

	if strings.TrimSpace(t.Description) == "" {
		return errors.New("transaction description is required")
	}

	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}

	return nil
}

func (t *Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// Magnitude is the absolute value of the entry amount.
func (t *Transaction) Magnitude() decimal.Decimal {
	return t.Amount.Abs()
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// NewDebitEntry builds an unsaved debit entry of the given magnitude.
func NewDebitEntry(accountID uuid.UUID, transactionType string, amount decimal.Decimal, description string, date time.Time) *Transaction {
	return &Transaction{
		AccountID:       accountID,
		TransactionType: transactionType,
		Amount:          amount.Abs().Neg(),
		Description:     description,
		Date:            date,
	}
}

// NewCreditEntry builds an unsaved credit entry of the given magnitude.
func NewCreditEntry(accountID uuid.UUID, transactionType string, amount decimal.Decimal, description string, date time.Time) *Transaction {
	return &Transaction{
		AccountID:       accountID,
		TransactionType: transactionType,
		Amount:          amount.Abs(),
		Description:     description,
		Date:            date,
	}
}

// SumSpent returns the total debited by entries, as a non-negative amount.
// Credits are ignored.
func SumSpent(entries []Transaction) decimal.Decimal {
	spent := decimal.Zero
	for i := range entries {
		if entries[i].IsDebit() {
			spent = spent.Sub(entries[i].Amount)
		}
	}
	return spent
}

func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypePayment, TransactionTypeInstallment, TransactionTypeSaving:
		return true
	default:
		return false
	}
}

// GenerateTransactionReference generates a unique transaction reference
func GenerateTransactionReference(transactionType string) string {
	prefix := "TXN"
	switch transactionType {
	case TransactionTypeInstallment:
		prefix = "INS"
	case TransactionTypeSaving:
		prefix = "SAV"
	case TransactionTypePayment:
		prefix = "PAY"
	}
	return prefix + "-" + uuid.New().String()[:8] + "-" + time.Now().UTC().Format("20060102150405")
}
