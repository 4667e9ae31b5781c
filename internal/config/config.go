package config

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/condo/internal/database"
)

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME" default:"Condo"`
		Port     int    `envconfig:"PORT" default:"8080"`
		Timezone string `envconfig:"APP_TIMEZONE" default:"America/Mexico_City"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"condo"`
		SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
		Migrate  bool   `envconfig:"DB_MIGRATE" default:"true"`

		MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
		MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
		ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	}

	Server struct {
		Timeout     time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		CORSOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	Auth struct {
		JWTSecret string `envconfig:"AUTH_JWT_SECRET"`
	}

	Automation struct {
		Enabled            bool   `envconfig:"AUTOMATION_ENABLED" default:"true"`
		Schedule           string `envconfig:"AUTOMATION_SCHEDULE" default:"5 0 1 * *"`
		DefaultFee         string `envconfig:"AUTOMATION_DEFAULT_FEE" default:"300.00"`
		BalanceAuditCron   string `envconfig:"BALANCE_AUDIT_SCHEDULE" default:"30 3 * * *"`
		BalanceAuditEnable bool   `envconfig:"BALANCE_AUDIT_ENABLED" default:"true"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name, c.DB.SSLMode)
}

func (c *Config) Pool() database.Pool {
	return database.Pool{
		MaxOpen:     c.DB.MaxOpenConns,
		MaxIdle:     c.DB.MaxIdleConns,
		MaxLifetime: c.DB.ConnMaxLifetime,
	}
}

// Location returns the time zone used to decide the current fiscal period.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.App.Timezone, err)
	}

	return loc, nil
}

// DefaultMonthlyFee is charged to occupied units whose monthly fee is zero.
func (c *Config) DefaultMonthlyFee() (decimal.Decimal, error) {
	fee, err := decimal.NewFromString(c.Automation.DefaultFee)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing AUTOMATION_DEFAULT_FEE: %w", err)
	}

	if !fee.IsPositive() {
		return decimal.Zero, fmt.Errorf("AUTOMATION_DEFAULT_FEE must be greater than zero: %s", fee)
	}

	return fee, nil
}

// JWTSecret is the HMAC key access tokens are verified with. Only the API
// server needs it.
func (c *Config) JWTSecret() ([]byte, error) {
	if c.Auth.JWTSecret == "" {
		return nil, errors.New("AUTH_JWT_SECRET is required")
	}

	return []byte(c.Auth.JWTSecret), nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
