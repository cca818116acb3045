package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvlath-algebra/config"
	"github.com/katalvlaran/lvlath-algebra/logging"
)

func TestNew_Levels(t *testing.T) {
	for _, tc := range []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	} {
		t.Run(tc.level, func(t *testing.T) {
			cfg := logging.DefaultConfig()
			cfg.Level = tc.level
			l, err := logging.New(cfg)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tc.want))
			if tc.want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tc.want-1))
			}
		})
	}
}

func TestNew_BadLevel(t *testing.T) {
	cfg := logging.DefaultConfig()
	cfg.Level = "loud"
	_, err := logging.New(cfg)
	assert.Error(t, err)
}

func TestFromConfig(t *testing.T) {
	c := config.Default()
	c.LogLevel = "warn"
	c.LogDevelopment = true
	cfg := logging.FromConfig(c)
	assert.Equal(t, "warn", cfg.Level)
	assert.True(t, cfg.Development)

	l, err := logging.New(cfg)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestNop(t *testing.T) {
	assert.False(t, logging.Nop().Core().Enabled(zapcore.ErrorLevel))
	assert.NotNil(t, logging.NewFromEnv())
}
