package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/mhike/internal/domain"
	"github.com/pkordes/mhike/internal/repo"
	"github.com/pkordes/mhike/testutil"
)

// newTestRepos returns hike and observation repos backed by a fresh,
// migrated SQLite file. Each test gets its own database, so no cleanup SQL
// is needed.
func newTestRepos(t *testing.T) (repo.HikeRepo, repo.ObservationRepo) {
	t.Helper()
	s := testutil.NewStore(t)
	return repo.NewHikeRepo(s.DB()), repo.NewObservationRepo(s.DB())
}

// hikeFixture returns a domain.Hike with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func hikeFixture() domain.Hike {
	return domain.Hike{
		Name:        "Ridge Walk",
		Location:    "Alps",
		Date:        "06/01/2024",
		HasParking:  true,
		Distance:    5.5,
		Duration:    2.25,
		Elevation:   640,
		Difficulty:  domain.DifficultyModerate,
		GroupSize:   3,
		Terrain:     "rocky",
		Description: "Test description",
	}
}

func TestHikeRepo_CreateThenGet_RoundTrip(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	input := hikeFixture()
	id, err := r.Create(ctx, input)
	require.NoError(t, err)
	assert.Positive(t, id, "ID should be store-generated")

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)

	want := input
	want.ID = id
	assert.Equal(t, want, got)
}

func TestHikeRepo_Create_OptionalFieldsEmpty(t *testing.T) {
	s := testutil.NewStore(t)
	r := repo.NewHikeRepo(s.DB())
	ctx := context.Background()

	input := hikeFixture()
	input.Terrain = ""
	input.Description = ""
	input.HasParking = false

	id, err := r.Create(ctx, input)
	require.NoError(t, err)

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got.Terrain)
	assert.Empty(t, got.Description)
	assert.False(t, got.HasParking)

	// Empty optional text is stored as NULL.
	var nulls int
	err = s.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM hikes WHERE id = ? AND terrain IS NULL AND description IS NULL`, id).Scan(&nulls)
	require.NoError(t, err)
	assert.Equal(t, 1, nulls)
}

func TestHikeRepo_Create_IDsAreUnique(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	id1, err := r.Create(ctx, hikeFixture())
	require.NoError(t, err)
	id2, err := r.Create(ctx, hikeFixture())
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
}

func TestHikeRepo_GetByID_NotFound(t *testing.T) {
	r, _ := newTestRepos(t)

	_, err := r.GetByID(context.Background(), 4242)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHikeRepo_List_Empty(t *testing.T) {
	r, _ := newTestRepos(t)

	got, err := r.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestHikeRepo_List_LexicographicDateOrder pins the text ordering of the
// date column: "12/01/2023" sorts after "01/05/2024" as text, so with DESC it
// comes first even though it is the earlier calendar date.
func TestHikeRepo_List_LexicographicDateOrder(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	for _, d := range []struct{ name, date string }{
		{"January", "01/05/2024"},
		{"December", "12/01/2023"},
		{"June", "06/15/2024"},
	} {
		h := hikeFixture()
		h.Name = d.name
		h.Date = d.date
		_, err := r.Create(ctx, h)
		require.NoError(t, err)
	}

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "12/01/2023", got[0].Date)
	assert.Equal(t, "06/15/2024", got[1].Date)
	assert.Equal(t, "01/05/2024", got[2].Date)
}

func TestHikeRepo_List_SameDateKeepsInsertionOrder(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	first := hikeFixture()
	first.Name = "First"
	second := hikeFixture()
	second.Name = "Second"

	_, err := r.Create(ctx, first)
	require.NoError(t, err)
	_, err = r.Create(ctx, second)
	require.NoError(t, err)

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "First", got[0].Name)
	assert.Equal(t, "Second", got[1].Name)
}

func TestHikeRepo_Update_FullReplace(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	id, err := r.Create(ctx, hikeFixture())
	require.NoError(t, err)

	changed := domain.Hike{
		ID:         id,
		Name:       "Bay Loop",
		Location:   "Coast",
		Date:       "07/04/2024",
		HasParking: false,
		Distance:   12,
		Duration:   4,
		Elevation:  90,
		Difficulty: domain.DifficultyEasy,
		GroupSize:  6,
		// Terrain and Description cleared: full replace, not a patch.
	}

	ok, err := r.Update(ctx, changed)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, changed, got)
}

func TestHikeRepo_Update_MissingIsNoOp(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	id, err := r.Create(ctx, hikeFixture())
	require.NoError(t, err)
	before, err := r.List(ctx)
	require.NoError(t, err)

	ghost := hikeFixture()
	ghost.ID = id + 100
	ghost.Name = "Ghost"

	ok, err := r.Update(ctx, ghost)

	require.NoError(t, err, "updating a missing hike is not an error")
	assert.False(t, ok)

	after, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "store state must be unchanged")
}

func TestHikeRepo_Delete(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	id, err := r.Create(ctx, hikeFixture())
	require.NoError(t, err)

	ok, err := r.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = r.GetByID(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHikeRepo_Delete_MissingIsNoOp(t *testing.T) {
	r, _ := newTestRepos(t)

	ok, err := r.Delete(context.Background(), 99)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHikeRepo_Delete_CascadesToObservations(t *testing.T) {
	hikes, obs := newTestRepos(t)
	ctx := context.Background()

	doomed, err := hikes.Create(ctx, hikeFixture())
	require.NoError(t, err)
	kept, err := hikes.Create(ctx, hikeFixture())
	require.NoError(t, err)

	for _, hikeID := range []int64{doomed, doomed, kept} {
		_, err := obs.Create(ctx, observationFixture(hikeID))
		require.NoError(t, err)
	}

	_, err = hikes.Delete(ctx, doomed)
	require.NoError(t, err)

	gone, err := obs.ListByHikeID(ctx, doomed)
	require.NoError(t, err)
	assert.Empty(t, gone, "observations of a deleted hike must be removed")

	left, err := obs.ListByHikeID(ctx, kept)
	require.NoError(t, err)
	assert.Len(t, left, 1, "other hikes' observations must survive")
}

func TestHikeRepo_WorksInsideTransaction(t *testing.T) {
	s := testutil.NewStore(t)
	ctx := context.Background()

	tx, err := s.DB().BeginTx(ctx, nil)
	require.NoError(t, err)

	_, err = repo.NewHikeRepo(tx).Create(ctx, hikeFixture())
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	got, err := repo.NewHikeRepo(s.DB()).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got, "rolled-back insert must not be visible")
}
