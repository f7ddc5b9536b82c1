// Package config loads the service configuration from the environment
// into an explicit struct. Components receive the values they need at
// construction time; nothing reads the environment after startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Config carries every tunable the service consumes.
type Config struct {
	HTTPPort string

	// Storage.
	DonationsTableName string
	ClaimsTableName    string

	// Receipt dispatch.
	ReceiptsQueueURL string

	// Business filters.
	MinimumDonation decimal.Decimal
	DaysPerDollar   float64

	// Bank-IPN receiver addresses.
	IPNBusinessAddress string
	IPNPrimaryAddress  string

	// Wallet-checkout provider. The stage URL serves sandbox payments;
	// Production selects between them.
	CheckoutAPIURL      string
	CheckoutStageAPIURL string
	CheckoutAccessToken string

	// Card processor.
	CardAPIURL string
	CardAPIKey string

	// Production selects live provider credentials over sandbox ones.
	Production bool

	// Receipt email.
	SMTPServer     string
	SMTPPort       int
	MailFromDomain string
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	minimum, err := decimalEnv("MINIMUM_DONATION", "0.50")
	if err != nil {
		return nil, err
	}
	daysPerDollar, err := floatEnv("DAYS_PER_DOLLAR", "7.5")
	if err != nil {
		return nil, err
	}
	smtpPort, err := intEnv("SMTP_PORT", "25")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPPort:            getenv("HTTP_PORT", "8080"),
		DonationsTableName:  os.Getenv("DYNAMODB_DONATIONS_TABLE_NAME"),
		ClaimsTableName:     os.Getenv("DYNAMODB_CLAIMS_TABLE_NAME"),
		ReceiptsQueueURL:    os.Getenv("SQS_RECEIPTS_QUEUE_URL"),
		MinimumDonation:     minimum,
		DaysPerDollar:       daysPerDollar,
		IPNBusinessAddress:  os.Getenv("IPN_BUSINESS_ADDRESS"),
		IPNPrimaryAddress:   os.Getenv("IPN_PRIMARY_ADDRESS"),
		CheckoutAPIURL:      os.Getenv("CHECKOUT_API_URL"),
		CheckoutStageAPIURL: os.Getenv("CHECKOUT_STAGE_API_URL"),
		CheckoutAccessToken: os.Getenv("CHECKOUT_ACCESS_TOKEN"),
		CardAPIURL:          os.Getenv("CARD_API_URL"),
		CardAPIKey:          os.Getenv("CARD_API_KEY"),
		Production:          os.Getenv("PAYMENT_PRODUCTION") == "true",
		SMTPServer:          os.Getenv("SMTP_SERVER"),
		SMTPPort:            smtpPort,
		MailFromDomain:      os.Getenv("MAIL_FROM_DOMAIN"),
	}

	// The IPN receiver addresses gate classification: with either unset,
	// well-formed notifications match the empty string and every donation
	// is silently dropped, so they are required up front.
	var missing []string
	if cfg.DonationsTableName == "" {
		missing = append(missing, "DYNAMODB_DONATIONS_TABLE_NAME")
	}
	if cfg.ClaimsTableName == "" {
		missing = append(missing, "DYNAMODB_CLAIMS_TABLE_NAME")
	}
	if cfg.IPNBusinessAddress == "" {
		missing = append(missing, "IPN_BUSINESS_ADDRESS")
	}
	if cfg.IPNPrimaryAddress == "" {
		missing = append(missing, "IPN_PRIMARY_ADDRESS")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// CheckoutBaseURL returns the checkout API endpoint for the configured
// environment.
func (c *Config) CheckoutBaseURL() string {
	if c.Production {
		return c.CheckoutAPIURL
	}
	return c.CheckoutStageAPIURL
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func decimalEnv(key, fallback string) (decimal.Decimal, error) {
	v := getenv(key, fallback)
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func floatEnv(key, fallback string) (float64, error) {
	v := getenv(key, fallback)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func intEnv(key, fallback string) (int, error) {
	v := getenv(key, fallback)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
