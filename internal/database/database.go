package database

import (
	"fmt"
	"log/slog"
	"time"

	"clevercash/internal/config"
	"clevercash/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// Models lists every persisted model in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.Account{},
		&models.Transaction{},
		&models.Installment{},
		&models.Saving{},
		&models.DispatchRun{},
	}
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(Models()...)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateIndexes adds the postgres-specific partial indexes used by the due
// date queries. Failures are logged and ignored.
func (db *DB) CreateIndexes(log *slog.Logger) {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_accounts_user_id ON accounts(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_account_date ON transactions(account_id, date)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_debits ON transactions(account_id, date) WHERE amount < 0",
		"CREATE INDEX IF NOT EXISTS idx_installments_due_active ON installments(pay_day) WHERE active",
		"CREATE INDEX IF NOT EXISTS idx_installments_active_name ON installments(account_id, name) WHERE active",
		"CREATE INDEX IF NOT EXISTS idx_savings_due_active ON savings(pay_day) WHERE active",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_savings_one_active ON savings(account_id) WHERE active",
		"CREATE INDEX IF NOT EXISTS idx_dispatch_runs_started_at ON dispatch_runs(started_at)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Warn("failed to create index", slog.String("query", query), slog.Any("error", err))
		}
	}
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config, log *slog.Logger) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	migrated := false
	if cfg.Database.AutoMigrate {
		runner := NewMigrationRunner(sqlDB, &cfg.Database, log)
		if err := runner.RunIfEnabled(); err != nil {
			log.Warn("migration runner failed, falling back to gorm AutoMigrate", slog.Any("error", err))
		} else {
			migrated = true
		}
	}

	if !migrated {
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	db.CreateIndexes(log)

	log.Info("database initialized",
		slog.String("host", cfg.Database.Host),
		slog.String("name", cfg.Database.Name),
	)

	return db, nil
}
