package repositories

import (
	"context"
	"time"

	"clevercash/internal/database"
	"clevercash/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// repositorySuite is embedded by every repository suite in this package.
type repositorySuite struct {
	suite.Suite
	db      *database.DB
	ctx     context.Context
	account *models.Account
	today   time.Time
}

func (s *repositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.ctx = context.Background()
	s.today = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	s.account = database.CreateTestAccount(s.T(), s.db, decimal.NewFromInt(1000), decimal.NewFromInt(500))
}

func (s *repositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *repositorySuite) newInstallment(name string, payDay time.Time) *models.Installment {
	return &models.Installment{
		AccountID:        s.account.ID,
		Name:             name,
		Amount:           decimal.NewFromInt(1200),
		AmountPerRate:    decimal.NewFromInt(100),
		StartDate:        payDay,
		DurationInMonths: 12,
		PayDay:           payDay,
		Active:           true,
	}
}

func (s *repositorySuite) newSaving(name string, payDay time.Time) *models.Saving {
	return &models.Saving{
		AccountID:        s.account.ID,
		Name:             name,
		Amount:           decimal.NewFromInt(50),
		StartDate:        payDay,
		DurationInMonths: 3,
		PayDay:           payDay,
		Active:           true,
	}
}

func (s *repositorySuite) newEntry(amount int64, date time.Time) *models.Transaction {
	return &models.Transaction{
		AccountID:       s.account.ID,
		TransactionType: models.TransactionTypePayment,
		Amount:          decimal.NewFromInt(amount),
		Description:     "entry " + uuid.NewString()[:4],
		Date:            date,
	}
}

func (s *repositorySuite) createOtherAccount() uuid.UUID {
	other := database.CreateTestAccount(s.T(), s.db, decimal.NewFromInt(100), decimal.NewFromInt(100))
	return other.ID
}
