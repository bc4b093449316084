package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	CORS     CORSConfig
	Payroll  PayrollConfig
	Leave    LeaveConfig
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxConns    int32
	MinConns    int32
	AutoMigrate bool
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	Version  string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// PayrollConfig holds the pay calendar and flat tax settings.
type PayrollConfig struct {
	TaxRate           decimal.Decimal
	PeriodsPerYear    int
	PeriodLengthDays  int
	PaymentOffsetDays int
	// CalendarLeadDays is how close to the end of the latest period the
	// background job appends the next one. Zero disables the job.
	CalendarLeadDays    int
	CalendarJobInterval time.Duration
}

type LeaveConfig struct {
	HoursPerDay decimal.Decimal
}

func Load() (*Config, error) {
	// .env is optional; real deployments inject the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := getEnvInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	maxConns, err := getEnvInt("DB_MAX_CONNS", 25)
	if err != nil {
		return nil, err
	}
	minConns, err := getEnvInt("DB_MIN_CONNS", 5)
	if err != nil {
		return nil, err
	}
	autoMigrate, err := strconv.ParseBool(getEnv("DB_AUTO_MIGRATE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_AUTO_MIGRATE: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:        getEnv("DB_HOST", "localhost"),
		Port:        dbPort,
		User:        getEnv("DB_USER", "postgres"),
		Password:    getEnv("DB_PASSWORD", ""),
		Name:        getEnv("DB_NAME", "hris_payroll"),
		SSLMode:     getEnv("DB_SSL_MODE", "disable"),
		MaxConns:    int32(maxConns),
		MinConns:    int32(minConns),
		AutoMigrate: autoMigrate,
	}

	// Application configuration
	appPort, err := getEnvInt("APP_PORT", 8080)
	if err != nil {
		return nil, err
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Version:  getEnv("APP_VERSION", "v1.0.0"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	// Payroll configuration
	taxRate, err := decimal.NewFromString(getEnv("PAYROLL_TAX_RATE", "0.20"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_TAX_RATE: %w", err)
	}
	periodsPerYear, err := getEnvInt("PAYROLL_PERIODS_PER_YEAR", 26)
	if err != nil {
		return nil, err
	}
	periodLength, err := getEnvInt("PAYROLL_PERIOD_LENGTH_DAYS", 14)
	if err != nil {
		return nil, err
	}
	paymentOffset, err := getEnvInt("PAYROLL_PAYMENT_OFFSET_DAYS", 5)
	if err != nil {
		return nil, err
	}

	leadDays, err := getEnvInt("PAYROLL_CALENDAR_LEAD_DAYS", 0)
	if err != nil {
		return nil, err
	}
	jobInterval, err := time.ParseDuration(getEnv("PAYROLL_CALENDAR_JOB_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_CALENDAR_JOB_INTERVAL: %w", err)
	}

	config.Payroll = PayrollConfig{
		TaxRate:             taxRate,
		PeriodsPerYear:      periodsPerYear,
		PeriodLengthDays:    periodLength,
		PaymentOffsetDays:   paymentOffset,
		CalendarLeadDays:    leadDays,
		CalendarJobInterval: jobInterval,
	}

	hoursPerDay, err := decimal.NewFromString(getEnv("LEAVE_HOURS_PER_DAY", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_HOURS_PER_DAY: %w", err)
	}
	config.Leave = LeaveConfig{HoursPerDay: hoursPerDay}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.TaxRate.IsNegative() || c.Payroll.TaxRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("PAYROLL_TAX_RATE must be in [0, 1)")
	}
	if c.Payroll.PeriodsPerYear <= 0 {
		return fmt.Errorf("PAYROLL_PERIODS_PER_YEAR must be positive")
	}
	if c.Payroll.PeriodLengthDays <= 0 {
		return fmt.Errorf("PAYROLL_PERIOD_LENGTH_DAYS must be positive")
	}
	if c.Payroll.PaymentOffsetDays < 0 {
		return fmt.Errorf("PAYROLL_PAYMENT_OFFSET_DAYS must not be negative")
	}
	if c.Payroll.CalendarLeadDays < 0 {
		return fmt.Errorf("PAYROLL_CALENDAR_LEAD_DAYS must not be negative")
	}
	if c.Payroll.CalendarLeadDays > 0 && c.Payroll.CalendarJobInterval <= 0 {
		return fmt.Errorf("PAYROLL_CALENDAR_JOB_INTERVAL must be positive")
	}
	if !c.Leave.HoursPerDay.IsPositive() {
		return fmt.Errorf("LEAVE_HOURS_PER_DAY must be positive")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS cannot exceed DB_MAX_CONNS")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL onto slog levels, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func getEnvSlice(env string, fallback []string) []string {
	value := getEnv(env, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
