package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments, security settings
// - default: Values common across all environments, standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Pricing PricingConfig
	Service ServiceConfig
}

type PricingConfig struct {
	Locale string `envconfig:"PRICING_LOCALE" default:"en-US"`
}

type ServiceConfig struct {
	// RegionLabel is the public wording for the overall coverage area,
	// shown to customers whose address falls outside every service area.
	RegionLabel string `envconfig:"SERVICE_REGION_LABEL" default:"the greater metro area"`
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
		Pricing: PricingConfig{
			Locale: "en-US",
		},
		Service: ServiceConfig{
			RegionLabel: "the greater metro area",
		},
	}
}
