package usecase

import (
	"context"
	"sort"
	"time"
)

// HealthCheck pings one dependency; nil means healthy
type HealthCheck func(ctx context.Context) error

type HealthUsecase interface {
	// Check reports "ok" or "degraded" under "status" and one entry per
	// dependency. Only Healthy decides the HTTP status.
	Check(ctx context.Context) (report map[string]string, healthy bool)
}

type healthUsecase struct {
	checks  map[string]HealthCheck
	timeout time.Duration
}

// NewHealthUsecase runs checks on every call. Optional dependencies (Redis,
// the lead store) are registered only when configured.
func NewHealthUsecase(checks map[string]HealthCheck) HealthUsecase {
	return &healthUsecase{checks: checks, timeout: 2 * time.Second}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	names := make([]string, 0, len(u.checks))
	for name := range u.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	report := map[string]string{"status": "ok"}
	healthy := true
	for _, name := range names {
		if err := u.checks[name](ctx); err != nil {
			report[name] = "down"
			report["status"] = "degraded"
			healthy = false
			continue
		}
		report[name] = "up"
	}
	return report, healthy
}
