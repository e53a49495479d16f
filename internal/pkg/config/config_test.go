//go:build unit

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rolloff-core/internal/pkg/config"
	"rolloff-core/internal/pkg/money"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "en-US", cfg.Pricing.Locale)
		assert.Equal(t, "the greater metro area", cfg.Service.RegionLabel)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PRICING_LOCALE", "en-GB")
		t.Setenv("SERVICE_REGION_LABEL", "Central Texas")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "en-GB", cfg.Pricing.Locale)
		assert.Equal(t, "Central Texas", cfg.Service.RegionLabel)
	})

	t.Run("locale feeds the money formatter", func(t *testing.T) {
		cfg := config.NewTestConfig()

		f, err := money.NewDisplayFormatter(cfg.Pricing)
		require.NoError(t, err)
		assert.Equal(t, "$1,250.00", f.Cents(125000))
	})
}
