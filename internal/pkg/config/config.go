package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: credentials and anything that differs between deployments
// - default: values the original bot shipped with (category, toggles, threshold)
// -----------------------------------------------------------------------------

type Config struct {
	Vendor      VendorConfig
	Funpay      FunpayConfig
	Fulfillment FulfillmentConfig
	Ops         OpsConfig
	Log         LogConfig
}

// VendorConfig covers the NS Gifts API: credential exchange plus the
// balance threshold below which listings get pulled from sale.
type VendorConfig struct {
	Login      string          `envconfig:"NSGIFT_LOGIN" required:"true"`
	Password   string          `envconfig:"NSGIFT_PASSWORD" required:"true"`
	BaseURL    string          `envconfig:"NSG_BASE_URL" default:"https://api.ns.gifts"`
	Timeout    time.Duration   `envconfig:"NSG_TIMEOUT" default:"30s"`
	MinBalance decimal.Decimal `envconfig:"NSG_MIN_BALANCE" default:"5"`
}

type FunpayConfig struct {
	AuthToken    string        `envconfig:"FUNPAY_AUTH_TOKEN" required:"true"`
	BaseURL      string        `envconfig:"FUNPAY_BASE_URL" default:"https://funpay.com"`
	Timeout      time.Duration `envconfig:"FUNPAY_TIMEOUT" default:"30s"`
	PollInterval time.Duration `envconfig:"FUNPAY_POLL_INTERVAL" default:"3s"`
}

type FulfillmentConfig struct {
	CategoryID           int64 `envconfig:"CATEGORY_ID" default:"1316"`
	DeactivateCategoryID int64 `envconfig:"DEACTIVATE_CATEGORY_ID" default:"0"`
	AutoRefund           bool  `envconfig:"AUTO_REFUND" default:"true"`
	AutoDeactivate       bool  `envconfig:"AUTO_DEACTIVATE" default:"true"`
}

// DeactivationCategory falls back to the sales category when no dedicated
// deactivation category is configured.
func (c FulfillmentConfig) DeactivationCategory() int64 {
	if c.DeactivateCategoryID != 0 {
		return c.DeactivateCategoryID
	}
	return c.CategoryID
}

type OpsConfig struct {
	Port string `envconfig:"OPS_PORT" default:"8090"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Vendor: VendorConfig{
			Login:      "test@example.com",
			Password:   "test-password",
			BaseURL:    "http://127.0.0.1:0",
			Timeout:    time.Second,
			MinBalance: decimal.NewFromInt(5),
		},
		Funpay: FunpayConfig{
			AuthToken:    "test-golden-key",
			BaseURL:      "http://127.0.0.1:0",
			Timeout:      time.Second,
			PollInterval: 10 * time.Millisecond,
		},
		Fulfillment: FulfillmentConfig{
			CategoryID:     1316,
			AutoRefund:     true,
			AutoDeactivate: true,
		},
		Ops: OpsConfig{
			Port: "8099", // Test port
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
	}
}
