// Package manage implements the stateful list managers behind the company
// and admin views: partitioned job lists and the per-job application table.
// Both support client-side text search, row selection, and optimistic
// single-row and bulk status changes reconciled against the backend.
package manage

import (
	"fmt"
	"strings"
)

// BulkResult counts the settlements of one bulk action. Every affected row
// gets its own request; the counts reflect how each settled.
type BulkResult struct {
	Succeeded int
	Failed    int
}

// Partial reports whether some but not all requests failed.
func (r BulkResult) Partial() bool {
	return r.Failed > 0 && r.Succeeded > 0
}

// Notice renders the user-facing settlement summary.
func (r BulkResult) Notice() string {
	return fmt.Sprintf("%d succeeded, %d failed", r.Succeeded, r.Failed)
}

// matchQuery matches a case-insensitive substring query against the
// precomputed lowercase search text of a row.
func matchQuery(searchText, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(searchText, query)
}
