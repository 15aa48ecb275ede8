package services_test

import (
	"time"

	"clevercash/internal/models"
	"clevercash/internal/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	today    = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	fixedNow = services.FixedClock{At: today.Add(9 * time.Hour)}
)

func newAccount(balance, dailyLimit int64) *models.Account {
	return &models.Account{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Name:       "Everyday",
		Balance:    decimal.NewFromInt(balance),
		DailyLimit: decimal.NewFromInt(dailyLimit),
	}
}

func newInstallment(accountID uuid.UUID, amount, rate int64, payDay time.Time) *models.Installment {
	return &models.Installment{
		ID:               uuid.New(),
		AccountID:        accountID,
		Name:             "Laptop",
		Amount:           decimal.NewFromInt(amount),
		AmountPerRate:    decimal.NewFromInt(rate),
		StartDate:        payDay,
		DurationInMonths: int(amount / rate),
		PayDay:           payDay,
		Active:           true,
	}
}

func newSaving(accountID uuid.UUID, amount int64, startDate, payDay time.Time, months int) *models.Saving {
	return &models.Saving{
		ID:               uuid.New(),
		AccountID:        accountID,
		Name:             "Holiday",
		Amount:           decimal.NewFromInt(amount),
		StartDate:        startDate,
		DurationInMonths: months,
		PayDay:           payDay,
		Active:           true,
	}
}

func debit(amount int64) models.Transaction {
	return models.Transaction{
		TransactionType: models.TransactionTypePayment,
		Amount:          decimal.NewFromInt(-amount),
		Description:     "shop",
		Date:            today,
	}
}
