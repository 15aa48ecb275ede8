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
	ErrInvalidInstallmentAmount = errors.New("installment amount must be positive")
	ErrInvalidAmountPerRate     = errors.New("installment amount per rate must be positive")
	ErrInvalidDuration          = errors.New("duration in months must be positive")
)

// Installment is a fixed-term debt repaid in monthly rates until
// AlreadyPaidAmount reaches Amount.
type Installment struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Name              string          `gorm:"type:varchar(100);not null" json:"name"`
	Description       string          `gorm:"type:text" json:"description,omitempty"`
	Amount            decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	AlreadyPaidAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"already_paid_amount"`
	AmountPerRate     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount_per_rate"`
	StartDate         time.Time       `gorm:"type:date;not null" json:"start_date"`
	DurationInMonths  int             `gorm:"not null" json:"duration_in_months"`
	PayDay            time.Time       `gorm:"type:date;not null;index:idx_installments_due,priority:2" json:"pay_day"`
	Active            bool            `gorm:"not null;default:true;index:idx_installments_due,priority:1" json:"active"`
	CreatedAt         time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Installment
func (i *Installment) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}

	i.StartDate = DateOf(i.StartDate)
	if i.PayDay.IsZero() {
		i.PayDay = i.StartDate
	}
	i.PayDay = DateOf(i.PayDay)

	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = now
	}

	return i.Validate()
}

// BeforeUpdate hook for Installment
func (i *Installment) BeforeUpdate(tx *gorm.DB) error {
	i.UpdatedAt = time.Now()
	return i.Validate()
}

func (i *Installment) Validate() error {
	if i.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if strings.TrimSpace(i.Name) == "" {
		return errors.New("installment name is required")
	}

	if !i.Amount.IsPositive() {
		return ErrInvalidInstallmentAmount
	}

	if !i.AmountPerRate.IsPositive() {
		return ErrInvalidAmountPerRate
	}

	if i.DurationInMonths <= 0 {
		return ErrInvalidDuration
	}

	if i.StartDate.IsZero() {
		return errors.New("installment start date is required")
	}

	if i.AlreadyPaidAmount.IsNegative() {
		return errors.New("already paid amount cannot be negative")
	}

	return nil
}

// IsFinished reports whether the paid total has reached the plan amount.
func (i *Installment) IsFinished() bool {
	return i.AlreadyPaidAmount.GreaterThanOrEqual(i.Amount)
}

// IsDue reports whether the installment should be processed on today.
func (i *Installment) IsDue(today time.Time) bool {
	return i.Active && !i.PayDay.After(DateOf(today))
}

// HasPayments reports whether any rate has been paid.
func (i *Installment) HasPayments() bool {
	return i.AlreadyPaidAmount.IsPositive()
}

// RemainingAmount is the part of the plan amount not yet paid.
func (i *Installment) RemainingAmount() decimal.Decimal {
	remaining := i.Amount.Sub(i.AlreadyPaidAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// ApplyRate books one paid rate. The installment is closed once fully paid,
// otherwise the next pay day moves one month ahead. It returns true when the
// installment was closed.
func (i *Installment) ApplyRate() bool {
	i.AlreadyPaidAmount = i.AlreadyPaidAmount.Add(i.AmountPerRate)
	if i.IsFinished() {
		i.Active = false
		return true
	}
	i.PayDay = AddMonths(i.PayDay, 1)
	return false
}

// TableName returns the table name for Installment
func (i *Installment) TableName() string {
	return "installments"
}
