package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any dependency that exposes a Ping method
// (the inventory store and the EventBus both qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks holds the set of dependencies to probe in the health endpoint.
type HealthChecks struct {
	Inventory HealthChecker
	EventBus  HealthChecker
}

type healthResponse struct {
	Status    string `json:"status"`
	Inventory string `json:"inventory"`
	EventBus  string `json:"event_bus"`
}

// HealthHandler returns an http.HandlerFunc that probes all registered
// HealthCheckers and reports degraded status if any of them fail.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{
			Status:    "ok",
			Inventory: probe(ctx, checks.Inventory),
			EventBus:  probe(ctx, checks.EventBus),
		}
		if resp.Inventory != "ok" || resp.EventBus != "ok" {
			resp.Status = "degraded"
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}

func probe(ctx context.Context, c HealthChecker) string {
	if c == nil {
		return "unconfigured"
	}
	if err := c.Ping(ctx); err != nil {
		return "unavailable"
	}
	return "ok"
}
