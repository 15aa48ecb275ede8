package dto

import (
	"time"

	"clevercash/internal/models"

	"github.com/shopspring/decimal"
)

// NewInstallmentRequest represents the payload for adding an installment plan
type NewInstallmentRequest struct {
	Name             string          `json:"name" validate:"required,not_blank,max=100"`
	Description      string          `json:"description" validate:"max=1000"`
	Amount           decimal.Decimal `json:"amount" validate:"required,positive_decimal"`
	AmountPerRate    decimal.Decimal `json:"amount_per_rate" validate:"required,positive_decimal"`
	StartDate        time.Time       `json:"start_date" validate:"required,not_past_date"`
	DurationInMonths int             `json:"duration_in_months" validate:"required,gt=0"`
}

// NewSavingRequest represents the payload for starting a saving plan.
// FirstPayDay defaults to StartDate.
type NewSavingRequest struct {
	Name             string          `json:"name" validate:"required,not_blank,max=100"`
	Description      string          `json:"description" validate:"max=1000"`
	Amount           decimal.Decimal `json:"amount" validate:"required,positive_decimal"`
	StartDate        time.Time       `json:"start_date" validate:"required,not_past_date"`
	FirstPayDay      *time.Time      `json:"first_pay_day,omitempty" validate:"omitempty,not_past_date"`
	DurationInMonths int             `json:"duration_in_months" validate:"required,gt=0"`
}

// InstallmentListResponse lists the installments of one account
type InstallmentListResponse struct {
	Installments []models.Installment `json:"installments"`
	Total        int                  `json:"total"`
	Outstanding  decimal.Decimal      `json:"outstanding"`
}

// NewInstallmentListResponse sums what is still owed on the active
// installments.
func NewInstallmentListResponse(installments []models.Installment) InstallmentListResponse {
	outstanding := decimal.Zero
	for i := range installments {
		if installments[i].Active {
			outstanding = outstanding.Add(installments[i].RemainingAmount())
		}
	}
	return InstallmentListResponse{
		Installments: installments,
		Total:        len(installments),
		Outstanding:  outstanding,
	}
}
