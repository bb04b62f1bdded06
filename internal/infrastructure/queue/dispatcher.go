package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/heatflow/simulation-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// ProgressDispatcher persists and fans out progress updates off the run
// loop's critical path. Updates are routed to a fixed set of workers by
// consistent hashing on the simulation id, so writes for one simulation
// stay ordered while the run loop never waits on them.
type ProgressDispatcher struct {
	workers  []chan ports.SimulationEvent
	sims     ports.SimulationRepository
	notifier ports.ProgressNotifier
	log      zerolog.Logger
}

// NewProgressDispatcher creates a dispatcher with numWorkers sharded
// workers. If numWorkers <= 0, defaultWorkers is used.
func NewProgressDispatcher(numWorkers int, sims ports.SimulationRepository, notifier ports.ProgressNotifier, log zerolog.Logger) *ProgressDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &ProgressDispatcher{
		workers:  make([]chan ports.SimulationEvent, numWorkers),
		sims:     sims,
		notifier: notifier,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.SimulationEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *ProgressDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands one progress update to its worker without blocking. When
// the worker's buffer is full the update is dropped: progress writes are
// non-critical telemetry and must never stall a run.
func (d *ProgressDispatcher) Enqueue(event ports.SimulationEvent) {
	select {
	case d.workers[d.shardIndex(event.SimulationID)] <- event:
	default:
		d.log.Warn().
			Str("simulation_id", event.SimulationID).
			Int("progress", event.Progress).
			Msg("progress queue full, update dropped")
	}
}

// shardIndex maps a simulation id deterministically to a worker index.
func (d *ProgressDispatcher) shardIndex(simulationID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(simulationID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *ProgressDispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.SimulationEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sims.UpdateProgress(ctx, event.SimulationID, event.Progress); err != nil {
				d.log.Warn().Err(err).
					Str("simulation_id", event.SimulationID).
					Int("worker_id", id).
					Msg("progress write failed")
			}
			if err := d.notifier.Publish(ctx, event); err != nil {
				d.log.Warn().Err(err).
					Str("simulation_id", event.SimulationID).
					Int("worker_id", id).
					Msg("progress publish failed")
			}
		}
	}
}
