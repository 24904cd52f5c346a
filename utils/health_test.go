package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckHealthReportsFailingProbes(t *testing.T) {
	status := CheckHealth(context.Background(), map[string]HealthProbe{
		"backend": func(context.Context) error { return nil },
		"storage": func(context.Context) error { return errors.New("connection refused") },
	})

	assert.False(t, status.Healthy)
	assert.Equal(t, map[string]bool{"backend": true, "storage": false}, status.Checks)
	assert.Equal(t, []string{"storage"}, status.Failing)

	stored := GetHealthStatus()
	assert.Equal(t, status.Checks, stored.Checks)
	stored.Checks["backend"] = false
	assert.True(t, GetHealthStatus().Checks["backend"], "snapshot must be a copy")
}

func TestStartHealthMonitorChecksImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	called := make(chan struct{}, 1)
	StartHealthMonitor(ctx, time.Hour, map[string]HealthProbe{
		"backend": func(context.Context) error {
			select {
			case called <- struct{}{}:
			default:
			}
			return nil
		},
	})

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		require.Fail(t, "probe was not run")
	}
	assert.Eventually(t, func() bool { return GetHealthStatus().Checks["backend"] }, 2*time.Second, 10*time.Millisecond)
}
