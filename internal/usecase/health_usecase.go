package usecase

import (
	"context"
	"sort"
	"time"
)

const (
	HealthOK          = "ok"
	HealthUnavailable = "unavailable"
	HealthDisabled    = "disabled"
)

// HealthCheck pings one dependency. A nil check marks it as not configured.
type HealthCheck func(ctx context.Context) error

type HealthUsecase interface {
	// Check reports a status per dependency and whether all configured ones
	// are reachable.
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	checks  map[string]HealthCheck
	timeout time.Duration
}

func NewHealthUsecase(checks map[string]HealthCheck) HealthUsecase {
	return &healthUsecase{checks: checks, timeout: 2 * time.Second}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	names := make([]string, 0, len(u.checks))
	for name := range u.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := make(map[string]string, len(names))
	healthy := true
	for _, name := range names {
		check := u.checks[name]
		if check == nil {
			status[name] = HealthDisabled
			continue
		}
		checkCtx, cancel := context.WithTimeout(ctx, u.timeout)
		err := check(checkCtx)
		cancel()
		if err != nil {
			status[name] = HealthUnavailable
			healthy = false
			continue
		}
		status[name] = HealthOK
	}
	return status, healthy
}
