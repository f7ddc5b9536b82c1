package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DYNAMODB_DONATIONS_TABLE_NAME", "donations")
	t.Setenv("DYNAMODB_CLAIMS_TABLE_NAME", "claims")
	t.Setenv("IPN_BUSINESS_ADDRESS", "business@example.org")
	t.Setenv("IPN_PRIMARY_ADDRESS", "donations@example.org")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, "0.50", cfg.MinimumDonation.StringFixed(2))
		assert.Equal(t, 7.5, cfg.DaysPerDollar)
		assert.Equal(t, 25, cfg.SMTPPort)
		assert.False(t, cfg.Production)
	})

	t.Run("missing table names fail", func(t *testing.T) {
		t.Setenv("DYNAMODB_DONATIONS_TABLE_NAME", "")
		t.Setenv("DYNAMODB_CLAIMS_TABLE_NAME", "")
		t.Setenv("IPN_BUSINESS_ADDRESS", "business@example.org")
		t.Setenv("IPN_PRIMARY_ADDRESS", "donations@example.org")

		_, err := Load()
		assert.ErrorContains(t, err, "DYNAMODB_DONATIONS_TABLE_NAME")
	})

	t.Run("missing IPN addresses fail", func(t *testing.T) {
		t.Setenv("DYNAMODB_DONATIONS_TABLE_NAME", "donations")
		t.Setenv("DYNAMODB_CLAIMS_TABLE_NAME", "claims")
		t.Setenv("IPN_BUSINESS_ADDRESS", "")
		t.Setenv("IPN_PRIMARY_ADDRESS", "")

		_, err := Load()
		assert.ErrorContains(t, err, "IPN_BUSINESS_ADDRESS")
		assert.ErrorContains(t, err, "IPN_PRIMARY_ADDRESS")
	})

	t.Run("invalid minimum fails", func(t *testing.T) {
		setRequired(t)
		t.Setenv("MINIMUM_DONATION", "fifty cents")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestCheckoutBaseURL(t *testing.T) {
	cfg := &Config{
		CheckoutAPIURL:      "https://live.example",
		CheckoutStageAPIURL: "https://stage.example",
	}

	assert.Equal(t, "https://stage.example", cfg.CheckoutBaseURL())

	cfg.Production = true
	assert.Equal(t, "https://live.example", cfg.CheckoutBaseURL())
}
