package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/heatflow/simulation-system/internal/core/domain"
	"github.com/heatflow/simulation-system/internal/core/ports"
)

// progressRecorder implements the repository surface the dispatcher
// touches; everything else is a no-op.
type progressRecorder struct {
	mu     sync.Mutex
	writes map[string][]int
}

func newProgressRecorder() *progressRecorder {
	return &progressRecorder{writes: make(map[string][]int)}
}

func (r *progressRecorder) UpdateProgress(_ context.Context, id string, progress int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes[id] = append(r.writes[id], progress)
	return nil
}

func (r *progressRecorder) progressFor(id string) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.writes[id]...)
}

func (r *progressRecorder) Create(context.Context, *domain.Simulation) error { return nil }
func (r *progressRecorder) FindByID(context.Context, string, string) (*domain.Simulation, error) {
	return nil, domain.ErrSimulationNotFound
}
func (r *progressRecorder) List(context.Context, ports.ListSimulationsFilter) ([]*domain.Simulation, int64, error) {
	return nil, 0, nil
}
func (r *progressRecorder) Delete(context.Context, string, string) error { return nil }
func (r *progressRecorder) TransitionStatus(context.Context, string, domain.SimulationStatus, domain.SimulationStatus, time.Time) (bool, error) {
	return false, nil
}
func (r *progressRecorder) GetStatus(context.Context, string) (domain.SimulationStatus, error) {
	return domain.StatusRunning, nil
}
func (r *progressRecorder) MarkCompleted(context.Context, string, time.Time) error { return nil }
func (r *progressRecorder) MarkFailed(context.Context, string) error               { return nil }
func (r *progressRecorder) PatchGeometry(context.Context, string, string, domain.UploadedGeometry) error {
	return nil
}

type countingNotifier struct {
	mu     sync.Mutex
	events []ports.SimulationEvent
}

func (n *countingNotifier) Publish(_ context.Context, event ports.SimulationEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return nil
}

func (n *countingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.events)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func event(simID string, progress int) ports.SimulationEvent {
	return ports.SimulationEvent{
		SimulationID: simID,
		Status:       domain.StatusRunning,
		Progress:     progress,
		Timestamp:    time.Now().UTC(),
	}
}

func TestDispatcher_PersistsAndPublishes(t *testing.T) {
	repo := newProgressRecorder()
	notifier := &countingNotifier{}
	d := NewProgressDispatcher(2, repo, notifier, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(event("s1", 10))
	d.Enqueue(event("s1", 20))

	waitFor(t, func() bool { return len(repo.progressFor("s1")) == 2 })
	waitFor(t, func() bool { return notifier.count() == 2 })
}

// Events for one simulation always land on the same worker, so their
// relative order survives the fan-out.
func TestDispatcher_PerSimulationOrdering(t *testing.T) {
	repo := newProgressRecorder()
	d := NewProgressDispatcher(4, repo, &countingNotifier{}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	const n = 50
	for i := 1; i <= n; i++ {
		d.Enqueue(event("s1", i))
	}

	waitFor(t, func() bool { return len(repo.progressFor("s1")) == n })

	writes := repo.progressFor("s1")
	for i, p := range writes {
		if p != i+1 {
			t.Fatalf("write %d = %d, order not preserved", i, p)
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewProgressDispatcher(8, newProgressRecorder(), &countingNotifier{}, zerolog.Nop())

	for i := 0; i < 20; i++ {
		id := fmt.Sprintf("sim-%d", i)
		first := d.shardIndex(id)
		for j := 0; j < 5; j++ {
			if d.shardIndex(id) != first {
				t.Fatalf("shard index for %s is not stable", id)
			}
		}
	}
}

// Enqueue must never block the caller, even with no workers draining.
func TestDispatcher_EnqueueNeverBlocks(t *testing.T) {
	d := NewProgressDispatcher(1, newProgressRecorder(), &countingNotifier{}, zerolog.Nop())
	// Start is intentionally not called.

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < channelBuffer*2; i++ {
			d.Enqueue(event("s1", i))
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Enqueue blocked with a full worker queue")
	}
}
