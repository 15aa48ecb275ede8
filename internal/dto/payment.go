package dto

import (
	"clevercash/internal/models"

	"github.com/shopspring/decimal"
)

// NewPaymentRequest represents an ad-hoc debit. Amount is the positive
// magnitude; the stored entry is negated.
type NewPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required,positive_decimal"`
	Description string          `json:"description" validate:"required,not_blank,max=255"`
}

// SavingsWithdrawalRequest moves money from the savings sub-balance back to
// the balance.
type SavingsWithdrawalRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required,positive_decimal"`
}

// TransactionListResponse represents a paginated list of ledger entries
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int64                `json:"total"`
	Offset       int                  `json:"offset"`
	Limit        int                  `json:"limit"`
}
