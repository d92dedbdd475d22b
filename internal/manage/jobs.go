package manage

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobdesk/internal/api"
	"github.com/jonathan/jobdesk/internal/types"
)

// JobAPI is the backend surface the job manager drives.
type JobAPI interface {
	ListJobs(ctx context.Context, filter api.JobFilter) ([]types.Job, error)
	SetJobStatus(ctx context.Context, id int, status types.JobStatus) error
	DeleteJob(ctx context.Context, id int) error
}

// JobManager owns the company's job postings partitioned by status. One
// partition is active at a time (the visible tab); search, selection, and
// actions operate on the active partition.
type JobManager struct {
	api JobAPI
	log zerolog.Logger

	mu         sync.Mutex
	generation uint64
	partitions map[types.JobStatus][]types.Job
	active     types.JobStatus
	query      string
	selected   map[int]bool
}

// NewJobManager returns a manager with no data loaded and the published
// partition active.
func NewJobManager(jobAPI JobAPI, log zerolog.Logger) *JobManager {
	return &JobManager{
		api:        jobAPI,
		log:        log,
		partitions: map[types.JobStatus][]types.Job{},
		active:     types.JobPublished,
		selected:   map[int]bool{},
	}
}

// LoadAll fetches every partition in parallel and replaces the manager's
// data. A load that finishes after a newer load began is discarded, so a
// slow response can never clobber fresher state.
func (m *JobManager) LoadAll(ctx context.Context) error {
	gen := m.nextGeneration()

	results := make(map[types.JobStatus][]types.Job, len(types.JobStatuses))
	var rmu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, status := range types.JobStatuses {
		status := status
		g.Go(func() error {
			jobs, err := m.api.ListJobs(gctx, api.JobFilter{Status: status, Owner: "me"})
			if err != nil {
				return err
			}
			rmu.Lock()
			results[status] = jobs
			rmu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.generation {
		m.log.Debug().Uint64("generation", gen).Msg("discarding stale job load")
		return nil
	}
	m.partitions = results
	return nil
}

func (m *JobManager) nextGeneration() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generation++
	return m.generation
}

// Counts returns the per-partition row counts used for tab badges.
func (m *JobManager) Counts() map[types.JobStatus]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := make(map[types.JobStatus]int, len(m.partitions))
	for status, jobs := range m.partitions {
		counts[status] = len(jobs)
	}
	return counts
}

// Active returns the active partition label.
func (m *JobManager) Active() types.JobStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// SetActive switches the visible partition and drops the selection, which
// only ever refers to visible rows.
func (m *JobManager) SetActive(status types.JobStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = status
	m.selected = map[int]bool{}
}

// SetQuery updates the client-side search query.
func (m *JobManager) SetQuery(query string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.query = query
}

// FilterVisible returns the active partition's rows matching the current
// query, in backing order. Repeated calls with unchanged state return
// identical results.
func (m *JobManager) FilterVisible() []types.Job {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filterVisibleLocked()
}

func (m *JobManager) filterVisibleLocked() []types.Job {
	visible := make([]types.Job, 0, len(m.partitions[m.active]))
	for _, job := range m.partitions[m.active] {
		if matchQuery(job.SearchText(), m.query) {
			visible = append(visible, job)
		}
	}
	return visible
}

// ToggleSelect flips one row's selection. Ids not among the currently
// filtered rows are ignored: the selection can only ever name rows the
// user can see.
func (m *JobManager) ToggleSelect(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.selected[id] {
		delete(m.selected, id)
		return
	}
	for _, job := range m.filterVisibleLocked() {
		if job.ID == id {
			m.selected[id] = true
			return
		}
	}
}

// ToggleSelectAll selects every currently filtered row, or deselects them
// all when every filtered row is already selected. Rows hidden by the
// query are never touched.
func (m *JobManager) ToggleSelectAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	visible := m.filterVisibleLocked()
	all := len(visible) > 0
	for _, job := range visible {
		if !m.selected[job.ID] {
			all = false
			break
		}
	}
	for _, job := range visible {
		if all {
			delete(m.selected, job.ID)
		} else {
			m.selected[job.ID] = true
		}
	}
}

// Selected returns the selected ids in ascending order.
func (m *JobManager) Selected() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]int, 0, len(m.selected))
	for id := range m.selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// selectedVisibleIDsLocked intersects the selection with the filtered rows,
// so a query change after selecting can never widen a bulk action beyond
// what the user sees.
func (m *JobManager) selectedVisibleIDsLocked() []int {
	ids := make([]int, 0, len(m.selected))
	for _, job := range m.filterVisibleLocked() {
		if m.selected[job.ID] {
			ids = append(ids, job.ID)
		}
	}
	sort.Ints(ids)
	return ids
}

// SetStatus changes one job's partition optimistically. On failure only
// that row is reverted; the rest of the list is untouched.
func (m *JobManager) SetStatus(ctx context.Context, id int, to types.JobStatus) error {
	m.mu.Lock()
	from := m.active
	m.moveLocked(id, from, to)
	m.mu.Unlock()

	if err := m.api.SetJobStatus(ctx, id, to); err != nil {
		m.mu.Lock()
		m.moveLocked(id, to, from)
		m.mu.Unlock()
		return err
	}
	return nil
}

// ApplyBulkStatus moves every selected visible job to the given partition.
// The move is applied locally first, then one request per job is issued and
// all are awaited. Full success keeps the optimistic state; any failure
// refetches the affected partitions so the list matches the server. The
// selection is cleared either way.
func (m *JobManager) ApplyBulkStatus(ctx context.Context, to types.JobStatus) (BulkResult, error) {
	m.mu.Lock()
	ids := m.selectedVisibleIDsLocked()
	if len(ids) == 0 {
		m.mu.Unlock()
		return BulkResult{}, nil
	}
	from := m.active
	for _, id := range ids {
		m.moveLocked(id, from, to)
	}
	m.selected = map[int]bool{}
	m.mu.Unlock()

	res := settle(ids, func(id int) error { return m.api.SetJobStatus(ctx, id, to) })
	if res.Failed > 0 {
		m.reconcile(ctx, from, to)
	}
	return res, nil
}

// ApplyBulkDelete removes every selected job from the active partition.
func (m *JobManager) ApplyBulkDelete(ctx context.Context) (BulkResult, error) {
	m.mu.Lock()
	ids := m.selectedVisibleIDsLocked()
	if len(ids) == 0 {
		m.mu.Unlock()
		return BulkResult{}, nil
	}
	from := m.active
	for _, id := range ids {
		m.removeLocked(id, from)
	}
	m.selected = map[int]bool{}
	m.mu.Unlock()

	res := settle(ids, func(id int) error { return m.api.DeleteJob(ctx, id) })
	if res.Failed > 0 {
		m.reconcile(ctx, from)
	}
	return res, nil
}

// reconcile refetches the given partitions after a partial failure. A
// refetch error keeps the current display rather than blanking it.
func (m *JobManager) reconcile(ctx context.Context, statuses ...types.JobStatus) {
	for _, status := range statuses {
		jobs, err := m.api.ListJobs(ctx, api.JobFilter{Status: status, Owner: "me"})
		if err != nil {
			m.log.Warn().Err(err).Str("status", string(status)).Msg("reconciliation refetch failed, keeping displayed data")
			continue
		}
		m.mu.Lock()
		m.partitions[status] = jobs
		m.mu.Unlock()
	}
}

// moveLocked relabels one job and moves it across partitions. Missing ids
// are ignored.
func (m *JobManager) moveLocked(id int, from, to types.JobStatus) {
	if from == to {
		return
	}
	rows := m.partitions[from]
	for i, job := range rows {
		if job.ID != id {
			continue
		}
		m.partitions[from] = append(rows[:i:i], rows[i+1:]...)
		job.Status = to
		m.partitions[to] = append(m.partitions[to], job)
		return
	}
}

func (m *JobManager) removeLocked(id int, from types.JobStatus) {
	rows := m.partitions[from]
	for i, job := range rows {
		if job.ID == id {
			m.partitions[from] = append(rows[:i:i], rows[i+1:]...)
			return
		}
	}
}

// settle issues one call per id concurrently and waits for every one to
// finish, counting outcomes. Completion order does not affect the result.
func settle(ids []int, do func(id int) error) BulkResult {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var res BulkResult
	for _, id := range ids {
		id := id
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := do(id)
			mu.Lock()
			if err != nil {
				res.Failed++
			} else {
				res.Succeeded++
			}
			mu.Unlock()
		}()
	}
	wg.Wait()
	return res
}
