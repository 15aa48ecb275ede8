package database

import (
	"fmt"
	"testing"
	"time"

	"clevercash/internal/config"
	"clevercash/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a fresh in-memory sqlite database with the schema applied.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	// A shared-cache name per test keeps every pooled connection on the
	// same in-memory database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// CreateTestAccount inserts an account with the given balance and daily limit.
func CreateTestAccount(t *testing.T, db *DB, balance, dailyLimit decimal.Decimal) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:     uuid.New(),
		Name:       "Test Account",
		Balance:    balance,
		DailyLimit: dailyLimit,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CreateTestInstallment(t *testing.T, db *DB, accountID uuid.UUID, amount, rate decimal.Decimal, start time.Time) *models.Installment {
	t.Helper()

	installment := &models.Installment{
		AccountID:        accountID,
		Name:             "Installment " + uuid.NewString()[:6],
		Amount:           amount,
		AmountPerRate:    rate,
		StartDate:        start,
		DurationInMonths: int(amount.Div(rate).Ceil().IntPart()),
		PayDay:           start,
		Active:           true,
	}

	if err := db.Create(installment).Error; err != nil {
		t.Fatalf("failed to create test installment: %v", err)
	}

	return installment
}

func CreateTestSaving(t *testing.T, db *DB, accountID uuid.UUID, amount decimal.Decimal, start time.Time, months int) *models.Saving {
	t.Helper()

	saving := &models.Saving{
		AccountID:        accountID,
		Name:             "Saving " + uuid.NewString()[:6],
		Amount:           amount,
		StartDate:        start,
		DurationInMonths: months,
		PayDay:           start,
		Active:           true,
	}

	if err := db.Create(saving).Error; err != nil {
		t.Fatalf("failed to create test saving: %v", err)
	}

	return saving
}

// CleanupTestDB removes all rows, children first.
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"dispatch_runs",
		"transactions",
		"installments",
		"savings",
		"accounts",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
