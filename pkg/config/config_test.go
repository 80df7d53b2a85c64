package config

import (
	"testing"

	"github.com/chris/amc-warranty-claims/pkg/entitlement"
	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_BACKEND", "memory")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 3, cfg.MaxRetries)

	policy, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, entitlement.OverrideStrict, policy.Override)
	assert.Equal(t, int64(2), policy.Minimums[models.HomeVisit])

	fees, err := cfg.FeeSchedule()
	require.NoError(t, err)
	assert.True(t, fees.GSTRate.Equal(decimal.RequireFromString("0.18")))
	assert.True(t, fees.VendorShare.Equal(decimal.RequireFromString("0.5")))
	assert.True(t, fees.GatewayFeeRate.IsZero())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_BACKEND", "dynamodb")
	t.Setenv("DYNAMODB_SUBSCRIPTIONS_TABLE_NAME", "subs")
	t.Setenv("DYNAMODB_CLAIMS_TABLE_NAME", "claims")
	t.Setenv("DYNAMODB_WALLETS_TABLE_NAME", "wallets")
	t.Setenv("DYNAMODB_LEDGER_TABLE_NAME", "ledger")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("QUOTA_OVERRIDE_POLICY", "allow-reset-for-testing")
	t.Setenv("GATEWAY_FEE_RATE", "0.02")

	cfg, err := Load()

	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "claims", cfg.ClaimsTable)
	policy, _ := cfg.Policy()
	assert.Equal(t, entitlement.OverrideAllowResetForTesting, policy.Override)
	fees, _ := cfg.FeeSchedule()
	assert.True(t, fees.GatewayFeeRate.Equal(decimal.RequireFromString("0.02")))
}

func TestLoadRejectsBadSettings(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("Missing Tables", func(t *testing.T) {
		t.Setenv("STORAGE_BACKEND", "dynamodb")
		_, err := Load()
		assert.ErrorContains(t, err, "table names")
	})

	t.Run("Unknown Override Policy", func(t *testing.T) {
		t.Setenv("STORAGE_BACKEND", "memory")
		t.Setenv("QUOTA_OVERRIDE_POLICY", "production-off")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Rate Out Of Range", func(t *testing.T) {
		t.Setenv("STORAGE_BACKEND", "memory")
		t.Setenv("VENDOR_SHARE", "1.5")
		_, err := Load()
		assert.ErrorContains(t, err, "vendor_share")
	})
}
