package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Scheduler SchedulerConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Port                 string
	Host                 string
	Environment          string
	ReadTimeout          time.Duration
	WriteTimeout         time.Duration
	ShutdownTimeout      time.Duration
	JobTriggerRatePerSec int
	JobTriggerBurst      int
	OpsServerEnabled     bool
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	MigrationsPath  string
	SeedsPath       string
	SeedDatabase    bool
}

// SchedulerConfig holds the cron expressions (seconds precision) for the
// daily obligation jobs. A zero RunRetention keeps dispatch runs forever.
type SchedulerConfig struct {
	Enabled         bool
	Timezone        string
	InstallmentCron string
	SavingCron      string
	PruneCron       string
	RunRetention    time.Duration
	DispatchWorkers int
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port:                 getEnv("SERVER_PORT", "8080"),
			Host:                 getEnv("SERVER_HOST", "localhost"),
			Environment:          getEnv("APP_ENV", "development"),
			ReadTimeout:          getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:         getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout:      getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			JobTriggerRatePerSec: getIntEnv("JOB_TRIGGER_RATE_PER_SECOND", 1),
			JobTriggerBurst:      getIntEnv("JOB_TRIGGER_BURST", 2),
			OpsServerEnabled:     getBoolEnv("OPS_SERVER_ENABLED", true),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "clevercash"),
			Password:        getEnv("DB_PASSWORD", "clevercash"),
			Name:            getEnv("DB_NAME", "clevercash"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "db/migrations"),
			SeedsPath:       getEnv("SEEDS_PATH", "db/seeds"),
			SeedDatabase:    getBoolEnv("SEED_DATABASE", false),
		},
		Scheduler: SchedulerConfig{
			Enabled:         getBoolEnv("SCHEDULER_ENABLED", true),
			Timezone:        getEnv("SCHEDULER_TIMEZONE", "UTC"),
			InstallmentCron: getEnv("INSTALLMENT_CRON", "0 0 0 * * *"),
			SavingCron:      getEnv("SAVING_CRON", "0 0 0 * * *"),
			PruneCron:       getEnv("DISPATCH_RUN_PRUNE_CRON", "0 30 3 * * *"),
			RunRetention:    getDurationEnv("DISPATCH_RUN_RETENTION", 90*24*time.Hour),
			DispatchWorkers: getIntEnv("DISPATCH_WORKERS", 8),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

// Validate reports the first configuration problem that would make the
// engine unable to start.
func (c *Config) Validate() error {
	if _, err := c.Scheduler.Location(); err != nil {
		return fmt.Errorf("invalid SCHEDULER_TIMEZONE %q: %w", c.Scheduler.Timezone, err)
	}
	if c.Scheduler.DispatchWorkers <= 0 {
		return fmt.Errorf("DISPATCH_WORKERS must be positive, got %d", c.Scheduler.DispatchWorkers)
	}
	if strings.TrimSpace(c.Scheduler.InstallmentCron) == "" {
		return errors.New("INSTALLMENT_CRON must not be empty")
	}
	if strings.TrimSpace(c.Scheduler.SavingCron) == "" {
		return errors.New("SAVING_CRON must not be empty")
	}
	if c.Scheduler.RunRetention < 0 {
		return fmt.Errorf("DISPATCH_RUN_RETENTION must not be negative, got %s", c.Scheduler.RunRetention)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Logging.Format)
	}
	return nil
}

func (c *SchedulerConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
