package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := decode(v)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api/v1", cfg.APIBaseURL)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "file", cfg.StorageDriver)
	assert.Equal(t, time.Duration(0), cfg.RequestTimeout)
	assert.Equal(t, 0, cfg.MaxRequestsPerMin)
	assert.False(t, cfg.RemindersEnabled)
	assert.Equal(t, 1, cfg.RedisReminderQueueDB)
	assert.Equal(t, 24*time.Hour, cfg.ReminderLeadTime)
	assert.Equal(t, time.Minute, cfg.HealthCheckInterval)
}

func TestDecodeNormalizesValues(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("API_BASE_URL", "https://api.example.com/api/v1/")
	v.Set("STORAGE_DRIVER", "Redis")
	v.Set("REQUEST_TIMEOUT", "15s")

	cfg, err := decode(v)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/api/v1", cfg.APIBaseURL)
	assert.Equal(t, "redis", cfg.StorageDriver)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("STORAGE_DRIVER", "memory")

	fs := Flags()
	require.NoError(t, fs.Parse([]string{"--port", "9100", "--reminders"}))

	LoadConfig(fs)

	assert.Equal(t, "9100", AppConfig.AppPort)
	assert.Equal(t, "memory", AppConfig.StorageDriver)
	assert.True(t, AppConfig.RemindersEnabled)
	assert.False(t, IsProduction())
}
