package manage

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobdesk/internal/api"
	"github.com/jonathan/jobdesk/internal/types"
)

type jobAPIStub struct {
	mu        sync.Mutex
	listJobs  func(ctx context.Context, filter api.JobFilter) ([]types.Job, error)
	setStatus func(ctx context.Context, id int, status types.JobStatus) error
	deleteJob func(ctx context.Context, id int) error

	statusCalls []int
}

func (s *jobAPIStub) ListJobs(ctx context.Context, filter api.JobFilter) ([]types.Job, error) {
	return s.listJobs(ctx, filter)
}

func (s *jobAPIStub) SetJobStatus(ctx context.Context, id int, status types.JobStatus) error {
	s.mu.Lock()
	s.statusCalls = append(s.statusCalls, id)
	s.mu.Unlock()
	if s.setStatus == nil {
		return nil
	}
	return s.setStatus(ctx, id, status)
}

func (s *jobAPIStub) DeleteJob(ctx context.Context, id int) error {
	if s.deleteJob == nil {
		return nil
	}
	return s.deleteJob(ctx, id)
}

func job(id int, title string, status types.JobStatus) types.Job {
	return types.Job{ID: id, Title: title, Status: status}
}

func staticPartitions(parts map[types.JobStatus][]types.Job) func(context.Context, api.JobFilter) ([]types.Job, error) {
	return func(_ context.Context, filter api.JobFilter) ([]types.Job, error) {
		return parts[filter.Status], nil
	}
}

func TestJobManager_LoadAllPopulatesCounts(t *testing.T) {
	stub := &jobAPIStub{listJobs: staticPartitions(map[types.JobStatus][]types.Job{
		types.JobPublished: {job(1, "Backend Engineer", types.JobPublished)},
		types.JobDraft:     {job(2, "Data Analyst", types.JobDraft), job(3, "Designer", types.JobDraft)},
	})}
	m := NewJobManager(stub, zerolog.Nop())

	require.NoError(t, m.LoadAll(context.Background()))
	counts := m.Counts()
	assert.Equal(t, 1, counts[types.JobPublished])
	assert.Equal(t, 2, counts[types.JobDraft])
	assert.Equal(t, 0, counts[types.JobArchived])
}

func TestJobManager_FilterVisibleIsIdempotent(t *testing.T) {
	stub := &jobAPIStub{listJobs: staticPartitions(map[types.JobStatus][]types.Job{
		types.JobPublished: {
			job(1, "Backend Engineer", types.JobPublished),
			job(2, "Frontend Engineer", types.JobPublished),
			job(3, "Data Analyst", types.JobPublished),
		},
	})}
	m := NewJobManager(stub, zerolog.Nop())
	require.NoError(t, m.LoadAll(context.Background()))

	m.SetQuery("ENGINEER")
	first := m.FilterVisible()
	second := m.FilterVisible()
	assert.Equal(t, first, second)
	require.Len(t, first, 2)
	assert.Equal(t, 1, first[0].ID)
	assert.Equal(t, 2, first[1].ID)
}

func TestJobManager_ToggleSelectAllScopedToFilteredRows(t *testing.T) {
	stub := &jobAPIStub{listJobs: staticPartitions(map[types.JobStatus][]types.Job{
		types.JobPublished: {
			job(1, "Backend Engineer", types.JobPublished),
			job(2, "Frontend Engineer", types.JobPublished),
			job(3, "Data Analyst", types.JobPublished),
		},
	})}
	m := NewJobManager(stub, zerolog.Nop())
	require.NoError(t, m.LoadAll(context.Background()))

	m.SetQuery("engineer")
	m.ToggleSelectAll()
	assert.Equal(t, []int{1, 2}, m.Selected())

	// widening the filter changes what select-all means
	m.SetQuery("")
	m.ToggleSelectAll()
	assert.Equal(t, []int{1, 2, 3}, m.Selected())

	m.ToggleSelectAll()
	assert.Empty(t, m.Selected())
}

func TestJobManager_ToggleSelectIgnoresHiddenRows(t *testing.T) {
	stub := &jobAPIStub{listJobs: staticPartitions(map[types.JobStatus][]types.Job{
		types.JobPublished: {job(1, "Backend Engineer", types.JobPublished)},
	})}
	m := NewJobManager(stub, zerolog.Nop())
	require.NoError(t, m.LoadAll(context.Background()))

	// id 99 is in no partition; selecting it must not register
	m.ToggleSelect(99)
	assert.Empty(t, m.Selected())

	res, err := m.ApplyBulkStatus(context.Background(), types.JobArchived)
	require.NoError(t, err)
	assert.Equal(t, BulkResult{}, res)
	assert.Empty(t, stub.statusCalls)
}

func TestJobManager_BulkActsOnVisibleRowsOnly(t *testing.T) {
	stub := &jobAPIStub{listJobs: staticPartitions(map[types.JobStatus][]types.Job{
		types.JobPublished: {
			job(1, "Backend Engineer", types.JobPublished),
			job(2, "Data Analyst", types.JobPublished),
		},
	})}
	m := NewJobManager(stub, zerolog.Nop())
	require.NoError(t, m.LoadAll(context.Background()))

	m.ToggleSelect(1)
	m.ToggleSelect(2)

	// narrowing the query after selecting shrinks what the bulk touches
	m.SetQuery("engineer")
	res, err := m.ApplyBulkStatus(context.Background(), types.JobArchived)
	require.NoError(t, err)

	assert.Equal(t, BulkResult{Succeeded: 1}, res)
	assert.Equal(t, []int{1}, stub.statusCalls)
	assert.Equal(t, 1, m.Counts()[types.JobArchived])
	assert.Equal(t, 1, m.Counts()[types.JobPublished])
}

func TestJobManager_BulkPartialFailureReconciles(t *testing.T) {
	// server state after the partial archive: 2 of 3 moved
	authoritative := map[types.JobStatus][]types.Job{
		types.JobPublished: {job(2, "Frontend Engineer", types.JobPublished)},
		types.JobArchived: {
			job(1, "Backend Engineer", types.JobArchived),
			job(3, "Data Analyst", types.JobArchived),
		},
	}
	initial := map[types.JobStatus][]types.Job{
		types.JobPublished: {
			job(1, "Backend Engineer", types.JobPublished),
			job(2, "Frontend Engineer", types.JobPublished),
			job(3, "Data Analyst", types.JobPublished),
		},
	}

	loaded := false
	stub := &jobAPIStub{}
	stub.listJobs = func(ctx context.Context, filter api.JobFilter) ([]types.Job, error) {
		if loaded {
			return authoritative[filter.Status], nil
		}
		return initial[filter.Status], nil
	}
	stub.setStatus = func(_ context.Context, id int, _ types.JobStatus) error {
		if id == 2 {
			return errors.New("boom")
		}
		return nil
	}

	m := NewJobManager(stub, zerolog.Nop())
	require.NoError(t, m.LoadAll(context.Background()))
	loaded = true

	m.ToggleSelectAll()
	res, err := m.ApplyBulkStatus(context.Background(), types.JobArchived)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, "2 succeeded, 1 failed", res.Notice())
	assert.Empty(t, m.Selected())

	// displayed lists match the server after reconciliation
	visible := m.FilterVisible()
	require.Len(t, visible, 1)
	assert.Equal(t, 2, visible[0].ID)
	assert.Equal(t, 2, m.Counts()[types.JobArchived])
}

func TestJobManager_BulkFullSuccessKeepsOptimisticState(t *testing.T) {
	listCalls := 0
	stub := &jobAPIStub{}
	stub.listJobs = func(_ context.Context, filter api.JobFilter) ([]types.Job, error) {
		listCalls++
		if filter.Status == types.JobPublished {
			return []types.Job{job(1, "Backend Engineer", types.JobPublished)}, nil
		}
		return nil, nil
	}

	m := NewJobManager(stub, zerolog.Nop())
	require.NoError(t, m.LoadAll(context.Background()))
	calls := listCalls

	m.ToggleSelect(1)
	res, err := m.ApplyBulkStatus(context.Background(), types.JobArchived)
	require.NoError(t, err)

	assert.Equal(t, BulkResult{Succeeded: 1}, res)
	// no refetch happened
	assert.Equal(t, calls, listCalls)
	assert.Equal(t, 1, m.Counts()[types.JobArchived])
	assert.Empty(t, m.FilterVisible())
}

func TestJobManager_SingleRowFailureRevertsOnlyThatRow(t *testing.T) {
	stub := &jobAPIStub{listJobs: staticPartitions(map[types.JobStatus][]types.Job{
		types.JobPublished: {
			job(1, "Backend Engineer", types.JobPublished),
			job(2, "Frontend Engineer", types.JobPublished),
		},
	})}
	stub.setStatus = func(_ context.Context, id int, _ types.JobStatus) error {
		return errors.New("boom")
	}

	m := NewJobManager(stub, zerolog.Nop())
	require.NoError(t, m.LoadAll(context.Background()))

	err := m.SetStatus(context.Background(), 1, types.JobArchived)
	require.Error(t, err)

	assert.Equal(t, 2, m.Counts()[types.JobPublished])
	assert.Equal(t, 0, m.Counts()[types.JobArchived])
	for _, j := range m.FilterVisible() {
		assert.Equal(t, types.JobPublished, j.Status)
	}
}

func TestJobManager_StaleLoadIsDiscarded(t *testing.T) {
	fresh := map[types.JobStatus][]types.Job{
		types.JobPublished: {job(10, "Fresh Role", types.JobPublished)},
	}
	stale := map[types.JobStatus][]types.Job{
		types.JobPublished: {job(99, "Stale Role", types.JobPublished)},
	}

	var blockFirst bool = true
	started := make(chan struct{}, len(types.JobStatuses))
	release := make(chan struct{})

	stub := &jobAPIStub{}
	stub.listJobs = func(_ context.Context, filter api.JobFilter) ([]types.Job, error) {
		if blockFirst {
			started <- struct{}{}
			<-release
			return stale[filter.Status], nil
		}
		return fresh[filter.Status], nil
	}

	m := NewJobManager(stub, zerolog.Nop())

	done := make(chan error, 1)
	go func() { done <- m.LoadAll(context.Background()) }()
	for range types.JobStatuses {
		<-started
	}

	// a newer load completes while the first is still in flight
	blockFirst = false
	require.NoError(t, m.LoadAll(context.Background()))

	close(release)
	require.NoError(t, <-done)

	visible := m.FilterVisible()
	require.Len(t, visible, 1)
	assert.Equal(t, 10, visible[0].ID)
}

func TestJobManager_BulkDeleteRemovesRows(t *testing.T) {
	stub := &jobAPIStub{listJobs: staticPartitions(map[types.JobStatus][]types.Job{
		types.JobDraft: {
			job(1, "Backend Engineer", types.JobDraft),
			job(2, "Frontend Engineer", types.JobDraft),
		},
	})}

	m := NewJobManager(stub, zerolog.Nop())
	require.NoError(t, m.LoadAll(context.Background()))
	m.SetActive(types.JobDraft)

	m.ToggleSelect(1)
	res, err := m.ApplyBulkDelete(context.Background())
	require.NoError(t, err)
	assert.Equal(t, BulkResult{Succeeded: 1}, res)

	visible := m.FilterVisible()
	require.Len(t, visible, 1)
	assert.Equal(t, 2, visible[0].ID)
}
