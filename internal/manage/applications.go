package manage

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jonathan/jobdesk/internal/api"
	"github.com/jonathan/jobdesk/internal/types"
)

// ApplicationAPI is the backend surface the application table drives.
type ApplicationAPI interface {
	ListJobApplications(ctx context.Context, jobID int, filter api.ApplicationFilter) ([]types.Application, error)
	SetApplicationStatus(ctx context.Context, id int, status types.ApplicationStatus) error
}

// ApplicationTable owns the applications of one selected job. Sorting and
// status filtering are server-side; text search and selection are local.
type ApplicationTable struct {
	api ApplicationAPI
	log zerolog.Logger

	mu         sync.Mutex
	generation uint64
	jobID      int
	sortOrder  types.ApplicationSort
	status     types.ApplicationStatus
	rows       []types.Application
	query      string
	selected   map[int]bool
}

// NewApplicationTable returns a table with no job selected and score-first
// ordering.
func NewApplicationTable(appAPI ApplicationAPI, log zerolog.Logger) *ApplicationTable {
	return &ApplicationTable{
		api:       appAPI,
		log:       log,
		sortOrder: types.SortScoreDesc,
		selected:  map[int]bool{},
	}
}

// SelectJob switches the table to another job's applications and loads
// them. The selection is dropped since it referred to the previous job.
func (t *ApplicationTable) SelectJob(ctx context.Context, jobID int) error {
	t.mu.Lock()
	t.jobID = jobID
	t.selected = map[int]bool{}
	t.mu.Unlock()
	return t.Load(ctx)
}

// JobID returns the currently selected job.
func (t *ApplicationTable) JobID() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.jobID
}

// SetSort changes the server-side ordering and reloads.
func (t *ApplicationTable) SetSort(ctx context.Context, order types.ApplicationSort) error {
	t.mu.Lock()
	t.sortOrder = order
	t.mu.Unlock()
	return t.Load(ctx)
}

// SetStatusFilter changes the server-side status filter and reloads. An
// empty status clears the filter.
func (t *ApplicationTable) SetStatusFilter(ctx context.Context, status types.ApplicationStatus) error {
	t.mu.Lock()
	t.status = status
	t.mu.Unlock()
	return t.Load(ctx)
}

// Load fetches the selected job's applications. A load finishing after a
// newer one began is discarded.
func (t *ApplicationTable) Load(ctx context.Context) error {
	t.mu.Lock()
	t.generation++
	gen := t.generation
	jobID := t.jobID
	filter := api.ApplicationFilter{Sort: t.sortOrder, Status: t.status}
	t.mu.Unlock()

	rows, err := t.api.ListJobApplications(ctx, jobID, filter)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.generation {
		t.log.Debug().Uint64("generation", gen).Msg("discarding stale application load")
		return nil
	}
	t.rows = rows
	return nil
}

// SetQuery updates the client-side search query.
func (t *ApplicationTable) SetQuery(query string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.query = query
}

// FilterVisible returns the rows matching the current query, in backing
// order.
func (t *ApplicationTable) FilterVisible() []types.Application {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.filterVisibleLocked()
}

func (t *ApplicationTable) filterVisibleLocked() []types.Application {
	visible := make([]types.Application, 0, len(t.rows))
	for _, app := range t.rows {
		if matchQuery(app.SearchText(), t.query) {
			visible = append(visible, app)
		}
	}
	return visible
}

// ToggleSelect flips one row's selection. Ids not among the currently
// filtered rows are ignored.
func (t *ApplicationTable) ToggleSelect(id int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.selected[id] {
		delete(t.selected, id)
		return
	}
	for _, app := range t.filterVisibleLocked() {
		if app.ID == id {
			t.selected[id] = true
			return
		}
	}
}

// ToggleSelectAll selects every filtered row, or deselects them all when
// every filtered row is already selected.
func (t *ApplicationTable) ToggleSelectAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	visible := t.filterVisibleLocked()
	all := len(visible) > 0
	for _, app := range visible {
		if !t.selected[app.ID] {
			all = false
			break
		}
	}
	for _, app := range visible {
		if all {
			delete(t.selected, app.ID)
		} else {
			t.selected[app.ID] = true
		}
	}
}

// Selected returns the selected ids in ascending order.
func (t *ApplicationTable) Selected() []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]int, 0, len(t.selected))
	for id := range t.selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// SetStatus changes one application's review state optimistically. On
// failure only that row is reverted.
func (t *ApplicationTable) SetStatus(ctx context.Context, id int, to types.ApplicationStatus) error {
	prev, ok := t.relabel(id, to)
	if !ok {
		return nil
	}
	if err := t.api.SetApplicationStatus(ctx, id, to); err != nil {
		t.relabel(id, prev)
		return err
	}
	return nil
}

// ApplyBulk moves every selected application to the given review state,
// optimistically, with one request per row. Any failure reloads the table
// from the server; the selection is cleared either way.
func (t *ApplicationTable) ApplyBulk(ctx context.Context, to types.ApplicationStatus) (BulkResult, error) {
	t.mu.Lock()
	// Only rows the current filter shows are acted upon, even if the query
	// changed after they were selected.
	ids := make([]int, 0, len(t.selected))
	act := map[int]bool{}
	for _, app := range t.filterVisibleLocked() {
		if t.selected[app.ID] {
			ids = append(ids, app.ID)
			act[app.ID] = true
		}
	}
	sort.Ints(ids)
	if len(ids) == 0 {
		t.mu.Unlock()
		return BulkResult{}, nil
	}
	for i := range t.rows {
		if act[t.rows[i].ID] {
			t.rows[i].Status = to
		}
	}
	t.selected = map[int]bool{}
	t.mu.Unlock()

	res := settle(ids, func(id int) error { return t.api.SetApplicationStatus(ctx, id, to) })
	if res.Failed > 0 {
		if err := t.Load(ctx); err != nil {
			t.log.Warn().Err(err).Msg("reconciliation reload failed, keeping displayed data")
		}
	}
	return res, nil
}

// relabel sets one row's status and reports the previous value.
func (t *ApplicationTable) relabel(id int, to types.ApplicationStatus) (types.ApplicationStatus, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.rows {
		if t.rows[i].ID == id {
			prev := t.rows[i].Status
			t.rows[i].Status = to
			return prev, true
		}
	}
	return "", false
}
