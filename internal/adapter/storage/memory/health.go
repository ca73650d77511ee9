package memory

import "context"

// HealthChecker reports the in-memory backend as always reachable.
type HealthChecker struct{}

func NewHealthChecker() *HealthChecker { return &HealthChecker{} }

func (h *HealthChecker) Ping(_ context.Context) error { return nil }

func (h *HealthChecker) Name() string { return "memory" }
