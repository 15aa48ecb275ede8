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
	ErrInvalidSavingAmount = errors.New("saving amount must be positive")
)

// Saving is a recurring plan that moves Amount from the balance into the
// account's savings every month for DurationInMonths.
type Saving struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Name              string          `gorm:"type:varchar(100);not null" json:"name"`
	Description       string          `gorm:"type:text" json:"description,omitempty"`
	Amount            decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	ContributedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"contributed_amount"`
	StartDate         time.Time       `gorm:"type:date;not null" json:"start_date"`
	DurationInMonths  int             `gorm:"not null" json:"duration_in_months"`
	PayDay            time.Time       `gorm:"type:date;not null;index:idx_savings_due,priority:2" json:"pay_day"`
	Active            bool            `gorm:"not null;default:true;index:idx_savings_due,priority:1" json:"active"`
	CreatedAt         time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Saving
func (s *Saving) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	s.StartDate = DateOf(s.StartDate)
	if s.PayDay.IsZero() {
		s.PayDay = s.StartDate
	}
	s.PayDay = DateOf(s.PayDay)

	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	return s.Validate()
}

// BeforeUpdate hook for Saving
func (s *Saving) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now()
	return s.Validate()
}

func (s *Saving) Validate() error {
	if s.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if strings.TrimSpace(s.Name) == "" {
		return errors.New("saving name is required")
	}

	if !s.Amount.IsPositive() {
		return ErrInvalidSavingAmount
	}

	if s.DurationInMonths <= 0 {
		return ErrInvalidDuration
	}

	if s.StartDate.IsZero() {
		return errors.New("saving start date is required")
	}

	if s.ContributedAmount.IsNegative() {
		return errors.New("contributed amount cannot be negative")
	}

	return nil
}

// EndDate is the first date after the saving period.
func (s *Saving) EndDate() time.Time {
	return AddMonths(s.StartDate, s.DurationInMonths)
}

// WillNotExpire reports whether another contribution fits into the saving
// period after the current pay day.
func (s *Saving) WillNotExpire() bool {
	return AddMonths(s.PayDay, 1).Before(s.EndDate())
}

// HasStarted reports whether the pay day has moved past the start date, which
// happens after the first contribution.
func (s *Saving) HasStarted() bool {
	return s.PayDay.After(s.StartDate)
}

func (s *Saving) IsDue(today time.Time) bool {
	return s.Active && !s.PayDay.After(DateOf(today))
}

// ApplyContribution books one contribution and either advances the pay day
// or closes the plan at the end of its period. It returns true when closed.
func (s *Saving) ApplyContribution() bool {
	s.ContributedAmount = s.ContributedAmount.Add(s.Amount)
	if s.WillNotExpire() {
		s.PayDay = AddMonths(s.PayDay, 1)
		return false
	}
	s.Active = false
	return true
}

// TableName returns the table name for Saving
func (s *Saving) TableName() string {
	return "savings"
}
