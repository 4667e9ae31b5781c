package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/condo/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "postgres://postgres:@localhost:5432/condo?sslmode=disable", cfg.ConnectionString())

	fee, err := cfg.DefaultMonthlyFee()
	require.NoError(t, err)
	assert.True(t, fee.Equal(decimal.RequireFromString("300")))

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Mexico_City", loc.String())

	pool := cfg.Pool()
	assert.Equal(t, 25, pool.MaxOpen)
	assert.Equal(t, 5, pool.MaxIdle)
	assert.Equal(t, 5*time.Minute, pool.MaxLifetime)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "unset")
	require.NoError(t, os.Unsetenv("AUTH_JWT_SECRET"))

	cfg, err := config.Load()
	require.NoError(t, err)

	_, err = cfg.JWTSecret()
	assert.Error(t, err)
}

func TestDefaultMonthlyFee_Invalid(t *testing.T) {
	for _, fee := range []string{"-1", "0", "0.00", "abc"} {
		t.Run(fee, func(t *testing.T) {
			t.Setenv("AUTH_JWT_SECRET", "secret")
			t.Setenv("AUTOMATION_DEFAULT_FEE", fee)

			cfg, err := config.Load()
			require.NoError(t, err)

			_, err = cfg.DefaultMonthlyFee()
			assert.Error(t, err)
		})
	}
}
