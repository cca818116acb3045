package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-algebra/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ALGEBRA_LOG_LEVEL", "debug")
	t.Setenv("ALGEBRA_LOG_DEVELOPMENT", "true")
	t.Setenv("ALGEBRA_REAL_EPSILON", "1e-9")
	t.Setenv("ALGEBRA_MAX_CAYLEY_ORDER", "16")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogDevelopment)
	assert.InDelta(t, 1e-9, cfg.RealEpsilon, 1e-18)
	assert.Equal(t, 16, cfg.MaxCayleyOrder)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("epsilon", func(t *testing.T) {
		t.Setenv("ALGEBRA_REAL_EPSILON", "0")
		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrBadEpsilon)
		assert.Equal(t, config.Default(), config.LoadOrDefault())
	})
	t.Run("order", func(t *testing.T) {
		t.Setenv("ALGEBRA_MAX_CAYLEY_ORDER", "-1")
		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrBadCayleyOrder)
	})
	t.Run("unparsable", func(t *testing.T) {
		t.Setenv("ALGEBRA_MAX_CAYLEY_ORDER", "many")
		_, err := config.Load()
		assert.Error(t, err)
	})
}
