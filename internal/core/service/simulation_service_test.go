package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/heatflow/simulation-system/internal/core/domain"
	"github.com/heatflow/simulation-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu       sync.Mutex
	byID     map[string]*domain.User
	byEmail  map[string]*domain.User
	reserved int
	released int

	reserveErr error
	findErr    error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *stubUserRepo) add(u *domain.User) {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
}

func (r *stubUserRepo) Upsert(_ context.Context, u *domain.User) (*domain.User, error) {
	if existing, ok := r.byEmail[u.Email]; ok {
		clone := *existing
		return &clone, nil
	}
	clone := *u
	r.add(&clone)
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// TryReserveSlot mirrors the SQL function: atomic check-and-increment.
func (r *stubUserRepo) TryReserveSlot(_ context.Context, userID string) (bool, error) {
	if r.reserveErr != nil {
		return false, r.reserveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[userID]
	if !ok || u.SimulationsUsed >= u.SimulationsLimit {
		return false, nil
	}
	u.SimulationsUsed++
	r.reserved++
	return true, nil
}

func (r *stubUserRepo) ReleaseSlot(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[userID]; ok && u.SimulationsUsed > 0 {
		u.SimulationsUsed--
	}
	r.released++
	return nil
}

type stubSimRepo struct {
	mu   sync.Mutex
	sims map[string]*domain.Simulation

	// cancelOnStatusCall flips the simulation to cancelled when GetStatus
	// is called this many times (1-based). Zero disables.
	cancelOnStatusCall int
	statusCalls        int

	patched    []domain.UploadedGeometry
	patchErr   error
	markFailed int
}

func newStubSimRepo() *stubSimRepo {
	return &stubSimRepo{sims: make(map[string]*domain.Simulation)}
}

func (r *stubSimRepo) add(s *domain.Simulation) { r.sims[s.ID] = s }

func (r *stubSimRepo) Create(_ context.Context, s *domain.Simulation) error {
	clone := *s
	r.sims[s.ID] = &clone
	return nil
}

func (r *stubSimRepo) FindByID(_ context.Context, id, userID string) (*domain.Simulation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sims[id]
	if !ok {
		return nil, domain.ErrSimulationNotFound
	}
	if userID != "" && s.UserID != userID {
		// unknown and unowned are indistinguishable to the caller
		return nil, domain.ErrSimulationNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSimRepo) List(_ context.Context, f ports.ListSimulationsFilter) ([]*domain.Simulation, int64, error) {
	var matched []*domain.Simulation
	for _, s := range r.sims {
		if f.UserID != "" && s.UserID != f.UserID {
			continue
		}
		if f.Status != "" && string(s.Status) != f.Status {
			continue
		}
		clone := *s
		matched = append(matched, &clone)
	}
	return matched, int64(len(matched)), nil
}

func (r *stubSimRepo) Delete(_ context.Context, id, userID string) error {
	s, ok := r.sims[id]
	if !ok || s.UserID != userID {
		return domain.ErrSimulationNotFound
	}
	delete(r.sims, id)
	return nil
}

func (r *stubSimRepo) TransitionStatus(_ context.Context, id string, from, to domain.SimulationStatus, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sims[id]
	if !ok || s.Status != from {
		return false, nil
	}
	s.Status = to
	if to == domain.StatusRunning {
		s.StartedAt = &at
		s.Progress = 0
	}
	return true, nil
}

func (r *stubSimRepo) GetStatus(_ context.Context, id string) (domain.SimulationStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sims[id]
	if !ok {
		return "", domain.ErrSimulationNotFound
	}
	r.statusCalls++
	if r.cancelOnStatusCall > 0 && r.statusCalls >= r.cancelOnStatusCall {
		s.Status = domain.StatusCancelled
	}
	return s.Status, nil
}

func (r *stubSimRepo) UpdateProgress(_ context.Context, id string, progress int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sims[id]
	if !ok {
		return domain.ErrSimulationNotFound
	}
	if s.Status == domain.StatusRunning {
		s.Progress = progress
	}
	return nil
}

func (r *stubSimRepo) MarkCompleted(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sims[id]
	if !ok {
		return domain.ErrSimulationNotFound
	}
	if s.Status != domain.StatusRunning {
		return domain.ErrInvalidTransition
	}
	s.Status = domain.StatusCompleted
	s.Progress = 100
	s.CompletedAt = &at
	return nil
}

func (r *stubSimRepo) MarkFailed(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sims[id]
	if !ok {
		return domain.ErrSimulationNotFound
	}
	r.markFailed++
	s.Status = domain.StatusFailed
	s.Progress = 0
	return nil
}

func (r *stubSimRepo) PatchGeometry(_ context.Context, id, userID string, geom domain.UploadedGeometry) error {
	if r.patchErr != nil {
		return r.patchErr
	}
	s, ok := r.sims[id]
	if !ok || s.UserID != userID {
		return domain.ErrSimulationNotFound
	}
	r.patched = append(r.patched, geom)
	return nil
}

type stubResultRepo struct {
	bySim     map[string]*domain.SimulationResult
	insertErr error
}

func newStubResultRepo() *stubResultRepo {
	return &stubResultRepo{bySim: make(map[string]*domain.SimulationResult)}
}

func (r *stubResultRepo) Insert(_ context.Context, result *domain.SimulationResult) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *result
	r.bySim[result.SimulationID] = &clone
	return nil
}

func (r *stubResultRepo) FindBySimulationID(_ context.Context, simulationID string) (*domain.SimulationResult, error) {
	result, ok := r.bySim[simulationID]
	if !ok {
		return nil, domain.ErrResultNotFound
	}
	clone := *result
	return &clone, nil
}

type stubSolver struct {
	out *ports.SolverOutput
	err error
}

func (s *stubSolver) Run(_ context.Context, _ ports.SolverConfig) (*ports.SolverOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.out, nil
}

type recordingSink struct {
	mu     sync.Mutex
	events []ports.SimulationEvent
}

func (s *recordingSink) Enqueue(event ports.SimulationEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *recordingSink) all() []ports.SimulationEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.SimulationEvent(nil), s.events...)
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []ports.SimulationEvent
	err    error
}

func (n *recordingNotifier) Publish(_ context.Context, event ports.SimulationEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return n.err
}

func (n *recordingNotifier) statuses() []domain.SimulationStatus {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]domain.SimulationStatus, len(n.events))
	for i, e := range n.events {
		out[i] = e.Status
	}
	return out
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func activeUser(id string) *domain.User {
	return &domain.User{
		ID:                 id,
		Email:              id + "@example.com",
		Role:               domain.RoleEngineer,
		SubscriptionStatus: domain.SubscriptionActive,
		SimulationsUsed:    0,
		SimulationsLimit:   10,
	}
}

func pendingSimulation(id, userID string) *domain.Simulation {
	return &domain.Simulation{
		ID:           id,
		UserID:       userID,
		Name:         "bracket cooldown",
		GeometryType: "plate",
		BoundaryConditions: domain.BoundaryConditions{
			InitialTemp: 300,
			AmbientTemp: 25,
			CoolingType: "air",
		},
		MeshDensity: domain.MeshMedium,
		Status:      domain.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
}

func solverOutput() *ports.SolverOutput {
	return &ports.SolverOutput{
		MaxTemperature:    91.2,
		MinTemperature:    26.4,
		PressureDrop:      2.9,
		ThermalEfficiency: 0.81,
		UncertaintyScore:  0.05,
		DomainShiftAlert:  false,
		TemperatureData:   []domain.FieldPoint{{X: 0, Y: 30, Z: 1}},
		ConvergenceMetrics: domain.ConvergenceMetrics{
			Iterations:      10000,
			Loss:            0.0012,
			ConvergenceRate: 0.95,
		},
	}
}

type testEnv struct {
	users    *stubUserRepo
	sims     *stubSimRepo
	results  *stubResultRepo
	solver   *stubSolver
	sink     *recordingSink
	notifier *recordingNotifier
	svc      *SimulationService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:    newStubUserRepo(),
		sims:     newStubSimRepo(),
		results:  newStubResultRepo(),
		solver:   &stubSolver{out: solverOutput()},
		sink:     &recordingSink{},
		notifier: &recordingNotifier{},
	}
	env.svc = NewSimulationService(
		env.users, env.sims, env.results, env.solver, env.sink, env.notifier,
		RunConfig{Ticks: 4, TickInterval: time.Millisecond, SolverTimeout: time.Second},
		zerolog.Nop(),
	)
	return env
}

// ---------------------------------------------------------------------------
// RunSimulation
// ---------------------------------------------------------------------------

func TestRunSimulation_Completes(t *testing.T) {
	env := newTestEnv()
	env.users.add(activeUser("u1"))
	env.sims.add(pendingSimulation("s1", "u1"))

	out, err := env.svc.RunSimulation(context.Background(), ports.RunSimulationInput{UserID: "u1", SimulationID: "s1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != domain.StatusCompleted {
		t.Fatalf("expected completed, got %s", out.Status)
	}
	if out.Result == nil || out.Result.SimulationID != "s1" {
		t.Fatalf("expected persisted result for s1, got %+v", out.Result)
	}

	sim := env.sims.sims["s1"]
	if sim.Status != domain.StatusCompleted {
		t.Fatalf("stored status = %s, want completed", sim.Status)
	}
	if sim.Progress != 100 {
		t.Fatalf("stored progress = %d, want 100", sim.Progress)
	}
	if sim.StartedAt == nil || sim.CompletedAt == nil {
		t.Fatalf("expected started_at and completed_at to be set")
	}

	if _, err := env.results.FindBySimulationID(context.Background(), "s1"); err != nil {
		t.Fatalf("result not persisted: %v", err)
	}
}

func TestRunSimulation_ProgressIsMonotonic(t *testing.T) {
	env := newTestEnv()
	env.users.add(activeUser("u1"))
	env.sims.add(pendingSimulation("s1", "u1"))

	if _, err := env.svc.RunSimulation(context.Background(), ports.RunSimulationInput{UserID: "u1", SimulationID: "s1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events := env.sink.all()
	if len(events) != 3 { // ticks-1 intermediate updates
		t.Fatalf("expected 3 progress events, got %d", len(events))
	}
	prev := 0
	for _, e := range events {
		if e.Progress <= prev || e.Progress >= 100 {
			t.Fatalf("progress not strictly increasing within (0,100): %d after %d", e.Progress, prev)
		}
		prev = e.Progress
	}
}

func TestRunSimulation_UnknownUser(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.RunSimulation(context.Background(), ports.RunSimulationInput{UserID: "ghost", SimulationID: "s1"})
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestRunSimulation_InactiveSubscription(t *testing.T) {
	env := newTestEnv()
	u := activeUser("u1")
	u.SubscriptionStatus = domain.SubscriptionInactive
	env.users.add(u)
	env.sims.add(pendingSimulation("s1", "u1"))

	_, err := env.svc.RunSimulation(context.Background(), ports.RunSimulationInput{UserID: "u1", SimulationID: "s1"})
	if !errors.Is(err, domain.ErrSubscriptionInactive) {
		t.Fatalf("expected ErrSubscriptionInactive, got %v", err)
	}
	if env.users.reserved != 0 {
		t.Fatalf("no slot should be reserved on subscription rejection")
	}
}

func TestRunSimulation_QuotaExceeded(t *testing.T) {
	env := newTestEnv()
	u := activeUser("u1")
	u.SimulationsUsed = u.SimulationsLimit
	env.users.add(u)
	env.sims.add(pendingSimulation("s1", "u1"))

	_, err := env.svc.RunSimulation(context.Background(), ports.RunSimulationInput{UserID: "u1", SimulationID: "s1"})
	if !errors.Is(err, domain.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	if env.sims.sims["s1"].Status != domain.StatusPending {
		t.Fatalf("simulation must stay pending on quota rejection")
	}
}

// Quota is checked before the simulation lookup, so a user over quota gets
// 429 even for a simulation id that does not exist.
func TestRunSimulation_QuotaCheckedBeforeLookup(t *testing.T) {
	env := newTestEnv()
	u := activeUser("u1")
	u.SimulationsUsed = u.SimulationsLimit
	env.users.add(u)

	_, err := env.svc.RunSimulation(context.Background(), ports.RunSimulationInput{UserID: "u1", SimulationID: "nope"})
	if !errors.Is(err, domain.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
}

func TestRunSimulation_NotFoundReleasesSlot(t *testing.T) {
	env := newTestEnv()
	env.users.add(activeUser("u1"))

	_, err := env.svc.RunSimulation(context.Background(), ports.RunSimulationInput{UserID: "u1", SimulationID: "nope"})
	if !errors.Is(err, domain.ErrSimulationNotFound) {
		t.Fatalf("expected ErrSimulationNotFound, got %v", err)
	}
	if env.users.released != 1 {
		t.Fatalf("reserved slot must be released, released = %d", env.users.released)
	}
	if env.users.byID["u1"].SimulationsUsed != 0 {
		t.Fatalf("usage must be back to 0")
	}
}

// A simulation owned by someone else is indistinguishable from a missing one.
func TestRunSimulation_NotOwned(t *testing.T) {
	env := newTestEnv()
	env.users.add(activeUser("u1"))
	env.sims.add(pendingSimulation("s1", "someone-else"))

	_, err := env.svc.RunSimulation(context.Background(), ports.RunSimulationInput{UserID: "u1", SimulationID: "s1"})
	if !errors.Is(err, domain.ErrSimulationNotFound) {
		t.Fatalf("expected ErrSimulationNotFound, got %v", err)
	}
}

func TestRunSimulation_AlreadyRunning(t *testing.T) {
	env := newTestEnv()
	env.users.add(activeUser("u1"))
	sim := pendingSimulation("s1", "u1")
	sim.Status = domain.StatusRunning
	env.sims.add(sim)

	_, err := env.svc.RunSimulation(context.Background(), ports.RunSimulationInput{UserID: "u1", SimulationID: "s1"})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if env.users.released != 1 {
		t.Fatalf("reserved slot must be released on conflict")
	}
}

func TestRunSimulation_SolverFailure(t *testing.T) {
	env := newTestEnv()
	env.users.add(activeUser("u1"))
	env.sims.add(pendingSimulation("s1", "u1"))
	env.solver.err = errors.New("solver blew up")

	_, err := env.svc.RunSimulation(context.Background(), ports.RunSimulationInput{UserID: "u1", SimulationID: "s1"})
	if err == nil {
		t.Fatalf("expected error")
	}

	sim := env.sims.sims["s1"]
	if sim.Status != domain.StatusFailed {
		t.Fatalf("stored status = %s, want failed", sim.Status)
	}
	if sim.Progress != 0 {
		t.Fatalf("failed run must reset progress, got %d", sim.Progress)
	}
	if env.users.released != 1 {
		t.Fatalf("slot must be released on failure")
	}
	if _, err := env.results.FindBySimulationID(context.Background(), "s1"); !errors.Is(err, domain.ErrResultNotFound) {
		t.Fatalf("no result must be persisted on failure")
	}

	statuses := env.notifier.statuses()
	if statuses[len(statuses)-1] != domain.StatusFailed {
		t.Fatalf("last published status = %s, want failed", statuses[len(statuses)-1])
	}
}

func TestRunSimulation_CancelledMidRun(t *testing.T) {
	env := newTestEnv()
	env.users.add(activeUser("u1"))
	env.sims.add(pendingSimulation("s1", "u1"))
	env.sims.cancelOnStatusCall = 2

	out, err := env.svc.RunSimulation(context.Background(), ports.RunSimulationInput{UserID: "u1", SimulationID: "s1"})
	if err != nil {
		t.Fatalf("cancelled run is not an error: %v", err)
	}
	if out.Status != domain.StatusCancelled {
		t.Fatalf("expected cancelled, got %s", out.Status)
	}
	if out.Result != nil {
		t.Fatalf("cancelled run must not carry a result")
	}
	if env.users.released != 1 {
		t.Fatalf("slot must be released on cancellation")
	}
}

// A client disconnect mid-run must not strand the simulation in running
// or leak the reserved quota slot: the failure-path writes run detached
// from the dead request context.
func TestRunSimulation_ClientDisconnectMidRun(t *testing.T) {
	env := newTestEnv()
	env.svc = NewSimulationService(
		env.users, env.sims, env.results, env.solver, env.sink, env.notifier,
		RunConfig{Ticks: 10, TickInterval: 20 * time.Millisecond, SolverTimeout: time.Second},
		zerolog.Nop(),
	)
	env.users.add(activeUser("u1"))
	env.sims.add(pendingSimulation("s1", "u1"))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := env.svc.RunSimulation(ctx, ports.RunSimulationInput{UserID: "u1", SimulationID: "s1"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	if got := env.sims.sims["s1"].Status; got != domain.StatusFailed {
		t.Fatalf("status after disconnect = %s, want failed", got)
	}
	if env.users.released != 1 {
		t.Fatalf("slot must be released after disconnect, released = %d", env.users.released)
	}
	if used := env.users.byID["u1"].SimulationsUsed; used != 0 {
		t.Fatalf("usage = %d, want 0 (slot returned)", used)
	}
}

func TestRunSimulation_CompletedRunConsumesOneSlot(t *testing.T) {
	env := newTestEnv()
	env.users.add(activeUser("u1"))
	env.sims.add(pendingSimulation("s1", "u1"))

	if _, err := env.svc.RunSimulation(context.Background(), ports.RunSimulationInput{UserID: "u1", SimulationID: "s1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.users.reserved != 1 || env.users.released != 0 {
		t.Fatalf("completed run must consume exactly one slot: reserved=%d released=%d", env.users.reserved, env.users.released)
	}
	if env.users.byID["u1"].SimulationsUsed != 1 {
		t.Fatalf("usage = %d, want 1", env.users.byID["u1"].SimulationsUsed)
	}
}

// Two concurrent admissions of the same pending simulation: exactly one
// wins the CAS, the loser's slot is returned.
func TestRunSimulation_ConcurrentAdmission(t *testing.T) {
	env := newTestEnv()
	env.users.add(activeUser("u1"))
	env.sims.add(pendingSimulation("s1", "u1"))

	var wg sync.WaitGroup
	outcomes := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, outcomes[i] = env.svc.RunSimulation(context.Background(), ports.RunSimulationInput{UserID: "u1", SimulationID: "s1"})
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range outcomes {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domain.ErrInvalidTransition):
			conflicts++
		default:
			t.Fatalf("unexpected outcome: %v", err)
		}
	}
	if successes != 1 || conflicts != 1 {
		t.Fatalf("want exactly one winner and one conflict, got %d/%d", successes, conflicts)
	}
	if used := env.users.byID["u1"].SimulationsUsed; used != 1 {
		t.Fatalf("usage = %d, want 1 (loser's slot returned)", used)
	}
}

// ---------------------------------------------------------------------------
// CancelSimulation
// ---------------------------------------------------------------------------

func TestCancelSimulation_Pending(t *testing.T) {
	env := newTestEnv()
	env.sims.add(pendingSimulation("s1", "u1"))

	if err := env.svc.CancelSimulation(context.Background(), "u1", "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.sims.sims["s1"].Status != domain.StatusCancelled {
		t.Fatalf("status = %s, want cancelled", env.sims.sims["s1"].Status)
	}

	statuses := env.notifier.statuses()
	if len(statuses) != 1 || statuses[0] != domain.StatusCancelled {
		t.Fatalf("expected one cancelled event, got %v", statuses)
	}
}

func TestCancelSimulation_Terminal(t *testing.T) {
	env := newTestEnv()
	sim := pendingSimulation("s1", "u1")
	sim.Status = domain.StatusCompleted
	env.sims.add(sim)

	err := env.svc.CancelSimulation(context.Background(), "u1", "s1")
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestCancelSimulation_NotOwned(t *testing.T) {
	env := newTestEnv()
	env.sims.add(pendingSimulation("s1", "someone-else"))

	err := env.svc.CancelSimulation(context.Background(), "u1", "s1")
	if !errors.Is(err, domain.ErrSimulationNotFound) {
		t.Fatalf("expected ErrSimulationNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// CreateSimulation / ListSimulations / GetResult
// ---------------------------------------------------------------------------

func TestCreateSimulation_Defaults(t *testing.T) {
	env := newTestEnv()

	sim, err := env.svc.CreateSimulation(context.Background(), ports.CreateSimulationInput{
		UserID:       "u1",
		Name:         "fin stack",
		GeometryType: "plate",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sim.Status != domain.StatusPending || sim.Progress != 0 {
		t.Fatalf("new simulation must be pending at 0%%, got %s/%d", sim.Status, sim.Progress)
	}
	if sim.MeshDensity != domain.MeshMedium {
		t.Fatalf("empty mesh density must default to medium, got %s", sim.MeshDensity)
	}
	if sim.ID == "" {
		t.Fatalf("id must be assigned")
	}
}

func TestCreateSimulation_UnknownMeshDensity(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.CreateSimulation(context.Background(), ports.CreateSimulationInput{
		UserID:       "u1",
		Name:         "fin stack",
		GeometryType: "plate",
		MeshDensity:  "ultra",
	})
	if err == nil {
		t.Fatalf("expected error for unknown mesh density")
	}
}

func TestListSimulations_ClampsPagination(t *testing.T) {
	env := newTestEnv()
	env.sims.add(pendingSimulation("s1", "u1"))

	out, err := env.svc.ListSimulations(context.Background(), ports.ListSimulationsInput{
		UserID: "u1",
		Page:   0,
		Limit:  1000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Page != 1 {
		t.Fatalf("page = %d, want 1", out.Page)
	}
	if out.Limit != maxListLimit {
		t.Fatalf("limit = %d, want %d", out.Limit, maxListLimit)
	}
}

func TestGetResult_OwnershipEnforced(t *testing.T) {
	env := newTestEnv()
	sim := pendingSimulation("s1", "someone-else")
	sim.Status = domain.StatusCompleted
	env.sims.add(sim)
	_ = env.results.Insert(context.Background(), &domain.SimulationResult{ID: "r1", SimulationID: "s1"})

	_, err := env.svc.GetResult(context.Background(), "u1", "s1")
	if !errors.Is(err, domain.ErrSimulationNotFound) {
		t.Fatalf("expected ErrSimulationNotFound, got %v", err)
	}
}

func TestGetResult_RoundTrip(t *testing.T) {
	env := newTestEnv()
	env.users.add(activeUser("u1"))
	env.sims.add(pendingSimulation("s1", "u1"))

	out, err := env.svc.RunSimulation(context.Background(), ports.RunSimulationInput{UserID: "u1", SimulationID: "s1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fetched, err := env.svc.GetResult(context.Background(), "u1", "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetched.ID != out.Result.ID {
		t.Fatalf("fetched result %s, want %s", fetched.ID, out.Result.ID)
	}
	if fetched.UncertaintyScore != out.Result.UncertaintyScore {
		t.Fatalf("uncertainty score did not round-trip")
	}
}
