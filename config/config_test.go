package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("FLASH_SECRET", "")
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultOfferings, cfg.Offerings)
	assert.NotEmpty(t, cfg.FlashSecret, "development key should be filled in")
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigOfferingsFromEnv(t *testing.T) {
	t.Setenv("SERVICE_OFFERINGS", " Starter Forge , ,Master Forge")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("SITE_URL", "https://northern-forge.com/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"Starter Forge", "Master Forge"}, cfg.Offerings)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://northern-forge.com", cfg.SiteURL)
}

func TestGetEnvListBlankFallsBack(t *testing.T) {
	t.Setenv("SOME_LIST", " , ")
	assert.Equal(t, []string{"x"}, getEnvList("SOME_LIST", []string{"x"}))
}

func TestGetEnvIntInvalid(t *testing.T) {
	t.Setenv("SOME_INT", "five")
	assert.Equal(t, 5, getEnvInt("SOME_INT", 5))
}
