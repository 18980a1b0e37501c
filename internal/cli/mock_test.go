package cli_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/pkordes/mhike/internal/cli"
	"github.com/pkordes/mhike/internal/config"
	"github.com/pkordes/mhike/internal/domain"
)

// mockHikeService is a hand-written test double for cli.HikeServicer.
type mockHikeService struct {
	create   func(ctx context.Context, hike domain.Hike) (domain.Hike, error)
	getByID  func(ctx context.Context, id int64) (domain.Hike, error)
	search   func(ctx context.Context, filter domain.HikeFilter) ([]domain.Hike, error)
	update   func(ctx context.Context, hike domain.Hike) error
	delete   func(ctx context.Context, id int64) error
	resetAll func(ctx context.Context) error
}

func (m *mockHikeService) Create(ctx context.Context, hike domain.Hike) (domain.Hike, error) {
	return m.create(ctx, hike)
}
func (m *mockHikeService) GetByID(ctx context.Context, id int64) (domain.Hike, error) {
	return m.getByID(ctx, id)
}
func (m *mockHikeService) Search(ctx context.Context, filter domain.HikeFilter) ([]domain.Hike, error) {
	return m.search(ctx, filter)
}
func (m *mockHikeService) Update(ctx context.Context, hike domain.Hike) error {
	return m.update(ctx, hike)
}
func (m *mockHikeService) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}
func (m *mockHikeService) ResetAll(ctx context.Context) error {
	return m.resetAll(ctx)
}

var _ cli.HikeServicer = (*mockHikeService)(nil)

// mockObservationService is a hand-written test double for cli.ObservationServicer.
type mockObservationService struct {
	create       func(ctx context.Context, obs domain.Observation) (domain.Observation, error)
	getByID      func(ctx context.Context, id int64) (domain.Observation, error)
	listByHikeID func(ctx context.Context, hikeID int64) ([]domain.Observation, error)
	update       func(ctx context.Context, obs domain.Observation) error
	delete       func(ctx context.Context, id int64) error
}

func (m *mockObservationService) Create(ctx context.Context, obs domain.Observation) (domain.Observation, error) {
	return m.create(ctx, obs)
}
func (m *mockObservationService) GetByID(ctx context.Context, id int64) (domain.Observation, error) {
	return m.getByID(ctx, id)
}
func (m *mockObservationService) ListByHikeID(ctx context.Context, hikeID int64) ([]domain.Observation, error) {
	return m.listByHikeID(ctx, hikeID)
}
func (m *mockObservationService) Update(ctx context.Context, obs domain.Observation) error {
	return m.update(ctx, obs)
}
func (m *mockObservationService) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

var _ cli.ObservationServicer = (*mockObservationService)(nil)

// harness runs commands against mock services and records what happened.
type harness struct {
	hikes  *mockHikeService
	obs    *mockObservationService
	cfg    config.Config
	conns  int
	closed int
	out    bytes.Buffer
	errOut bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	// Keep the developer's environment out of config loading.
	t.Setenv("MHIKE_DB_PATH", "")
	t.Setenv("MHIKE_LOG_LEVEL", "")
	t.Setenv("MHIKE_LOG_FORMAT", "")
	return &harness{hikes: &mockHikeService{}, obs: &mockObservationService{}}
}

func (h *harness) connect(_ context.Context, cfg config.Config, _ *slog.Logger) (cli.Services, error) {
	h.cfg = cfg
	h.conns++
	return cli.Services{
		Hikes:        h.hikes,
		Observations: h.obs,
		Close:        func() error { h.closed++; return nil },
	}, nil
}

// run executes args with a fresh command tree and returns the exit code.
func (h *harness) run(args ...string) int {
	h.out.Reset()
	h.errOut.Reset()
	return cli.New(h.connect, &h.out, &h.errOut).Run(context.Background(), args)
}
