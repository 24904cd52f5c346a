package utils

import (
	"context"
	"sort"
	"sync"
	"time"
)

// HealthProbe checks one dependency; nil means healthy.
type HealthProbe func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Healthy   bool            `json:"healthy"`
	Checks    map[string]bool `json:"checks"`
	Failing   []string        `json:"failing,omitempty"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	currentHealth = HealthStatus{Healthy: true, Checks: map[string]bool{}}
	mu            sync.RWMutex
)

const probeTimeout = 5 * time.Second

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	out := currentHealth
	out.Checks = make(map[string]bool, len(currentHealth.Checks))
	for k, v := range currentHealth.Checks {
		out.Checks[k] = v
	}
	out.Failing = append([]string(nil), currentHealth.Failing...)
	return out
}

// CheckHealth runs every probe once and stores the result.
func CheckHealth(ctx context.Context, probes map[string]HealthProbe) HealthStatus {
	status := HealthStatus{Healthy: true, Checks: make(map[string]bool, len(probes))}
	for name, probe := range probes {
		pctx, cancel := context.WithTimeout(ctx, probeTimeout)
		ok := probe(pctx) == nil
		cancel()
		status.Checks[name] = ok
		if !ok {
			status.Healthy = false
			status.Failing = append(status.Failing, name)
		}
	}
	sort.Strings(status.Failing)
	status.CheckedAt = time.Now()

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor checks right away and then every interval until ctx is
// done.
func StartHealthMonitor(ctx context.Context, interval time.Duration, probes map[string]HealthProbe) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		CheckHealth(ctx, probes)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, probes)
			}
		}
	}()
}
