// Package config loads runtime settings from the environment, an optional .env file and an
// optional config.yml.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chris/amc-warranty-claims/pkg/earning"
	"github.com/chris/amc-warranty-claims/pkg/entitlement"
	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	BackendDynamoDB = "dynamodb"
	BackendMemory   = "memory"
)

// Config holds every setting of the service and its lambdas.
type Config struct {
	HTTPPort       string `mapstructure:"http_port"`
	Debug          bool   `mapstructure:"app_debug"`
	StorageBackend string `mapstructure:"storage_backend"`

	SubscriptionsTable string `mapstructure:"dynamodb_subscriptions_table_name"`
	ClaimsTable        string `mapstructure:"dynamodb_claims_table_name"`
	WalletsTable       string `mapstructure:"dynamodb_wallets_table_name"`
	LedgerTable        string `mapstructure:"dynamodb_ledger_table_name"`
	ConnectionsTable   string `mapstructure:"dynamodb_connections_table_name"`

	SQSQueueURL       string `mapstructure:"sqs_queue_url"`
	WebsocketEndpoint string `mapstructure:"websocket_api_endpoint"`

	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
	LogJSON  bool   `mapstructure:"log_json"`

	QuotaOverridePolicy string `mapstructure:"quota_override_policy"`
	MinRemoteSupport    int64  `mapstructure:"min_remote_support"`
	MinHomeVisit        int64  `mapstructure:"min_home_visit"`
	MinWarrantyClaim    int64  `mapstructure:"min_warranty_claim"`
	MaxRetries          int    `mapstructure:"claim_max_retries"`

	GSTRate        string `mapstructure:"gst_rate"`
	VendorShare    string `mapstructure:"vendor_share"`
	GatewayFeeRate string `mapstructure:"gateway_fee_rate"`

	PaymentSecret string `mapstructure:"payment_secret"`
}

func setDefaults(v *viper.Viper) {
	minimums := entitlement.DefaultMinimums()

	v.SetDefault("http_port", "8080")
	v.SetDefault("app_debug", false)
	v.SetDefault("storage_backend", BackendDynamoDB)
	v.SetDefault("dynamodb_subscriptions_table_name", "")
	v.SetDefault("dynamodb_claims_table_name", "")
	v.SetDefault("dynamodb_wallets_table_name", "")
	v.SetDefault("dynamodb_ledger_table_name", "")
	v.SetDefault("dynamodb_connections_table_name", "")
	v.SetDefault("sqs_queue_url", "")
	v.SetDefault("websocket_api_endpoint", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("log_json", false)
	v.SetDefault("quota_override_policy", string(entitlement.OverrideStrict))
	v.SetDefault("min_remote_support", minimums[models.RemoteSupport])
	v.SetDefault("min_home_visit", minimums[models.HomeVisit])
	v.SetDefault("min_warranty_claim", minimums[models.WarrantyClaim])
	v.SetDefault("claim_max_retries", 3)
	v.SetDefault("gst_rate", "0.18")
	v.SetDefault("vendor_share", "0.5")
	v.SetDefault("gateway_fee_rate", "0")
	v.SetDefault("payment_secret", "")
}

// Load reads the configuration. Environment variables win over config.yml, which wins over
// the defaults.
func Load() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that would otherwise fail late.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory:
	case BackendDynamoDB:
		if c.SubscriptionsTable == "" || c.ClaimsTable == "" || c.WalletsTable == "" || c.LedgerTable == "" {
			return errors.New("one or more DynamoDB table names are not set")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	if _, err := c.FeeSchedule(); err != nil {
		return err
	}
	return nil
}

// Policy builds the entitlement policy.
func (c *Config) Policy() (entitlement.Policy, error) {
	override, err := entitlement.ParseOverridePolicy(c.QuotaOverridePolicy)
	if err != nil {
		return entitlement.Policy{}, err
	}
	return entitlement.Policy{
		Minimums: map[models.ServiceCategory]int64{
			models.RemoteSupport: c.MinRemoteSupport,
			models.HomeVisit:     c.MinHomeVisit,
			models.WarrantyClaim: c.MinWarrantyClaim,
		},
		Override: override,
	}, nil
}

// FeeSchedule parses the configured rates.
func (c *Config) FeeSchedule() (earning.FeeSchedule, error) {
	var fees earning.FeeSchedule
	rates := []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{"gst_rate", c.GSTRate, &fees.GSTRate},
		{"vendor_share", c.VendorShare, &fees.VendorShare},
		{"gateway_fee_rate", c.GatewayFeeRate, &fees.GatewayFeeRate},
	}
	for _, r := range rates {
		d, err := decimal.NewFromString(r.value)
		if err != nil {
			return fees, fmt.Errorf("invalid %s %q: %w", r.name, r.value, err)
		}
		if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(1)) {
			return fees, fmt.Errorf("%s must be between 0 and 1, got %s", r.name, r.value)
		}
		*r.dst = d
	}
	return fees, nil
}
