package ports

import (
	"context"
	"time"

	"github.com/heatflow/simulation-system/internal/core/domain"
)

// SimulationEvent is one live-update frame describing a status or progress
// change on a simulation.
type SimulationEvent struct {
	SimulationID string                  `json:"simulation_id"`
	Status       domain.SimulationStatus `json:"status"`
	Progress     int                     `json:"progress"`
	Timestamp    time.Time               `json:"timestamp"`
}

// ProgressNotifier fans simulation events out to live subscribers.
type ProgressNotifier interface {
	Publish(ctx context.Context, event SimulationEvent) error
}

// ProgressStream is the subscriber side of the live-update channel.
// The returned cancel func must be called to release the subscription.
type ProgressStream interface {
	Subscribe(ctx context.Context, simulationID string) (<-chan SimulationEvent, func(), error)
}

// ProgressSink accepts fire-and-forget progress updates. Enqueue must never
// block the run loop; delivery is best-effort and failures are only logged.
type ProgressSink interface {
	Enqueue(event SimulationEvent)
}
