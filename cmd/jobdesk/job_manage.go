package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobdesk/internal/manage"
	"github.com/jonathan/jobdesk/internal/types"
)

var jobsManageCmd = &cobra.Command{
	Use:   "manage",
	Short: "Bulk-manage your job postings",
	Long:  "Load your postings partitioned by status, select rows by id or by search query, and apply a bulk status change or delete. Each row gets its own request; partial failures are reconciled against the server.",
	RunE:  runJobsManage,
}

var (
	manageFrom   string
	manageIDs    string
	manageQuery  string
	manageAll    bool
	manageTo     string
	manageDelete bool
)

func init() {
	jobsManageCmd.Flags().StringVar(&manageFrom, "from", "published", "Partition to operate on: published, draft, or archived")
	jobsManageCmd.Flags().StringVar(&manageIDs, "ids", "", "Comma-separated job ids to select")
	jobsManageCmd.Flags().StringVarP(&manageQuery, "query", "q", "", "Search query; --all selects only matching rows")
	jobsManageCmd.Flags().BoolVar(&manageAll, "all", false, "Select every visible row")
	jobsManageCmd.Flags().StringVar(&manageTo, "to", "", "Target status for the bulk move")
	jobsManageCmd.Flags().BoolVar(&manageDelete, "delete", false, "Delete the selected postings instead of moving them")

	jobsCmd.AddCommand(jobsManageCmd)
}

func runJobsManage(_ *cobra.Command, _ []string) error {
	from := types.JobStatus(manageFrom)
	if !from.Valid() {
		return fmt.Errorf("unknown partition %q", manageFrom)
	}
	if manageDelete == (manageTo != "") {
		return fmt.Errorf("pick exactly one action: --to <status> or --delete")
	}

	var to types.JobStatus
	if !manageDelete {
		to = types.JobStatus(manageTo)
		if !to.Valid() {
			return fmt.Errorf("unknown status %q", manageTo)
		}
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	ctx := context.Background()
	m := manage.NewJobManager(a.client, a.log)
	if err := m.LoadAll(ctx); err != nil {
		return err
	}

	counts := m.Counts()
	for _, status := range types.JobStatuses {
		fmt.Fprintf(os.Stdout, "%s: %d  ", status, counts[status])
	}
	fmt.Fprintln(os.Stdout)

	m.SetActive(from)
	m.SetQuery(manageQuery)

	switch {
	case manageAll:
		m.ToggleSelectAll()
	case manageIDs != "":
		ids, err := parseIDList(manageIDs)
		if err != nil {
			return err
		}
		for _, id := range ids {
			m.ToggleSelect(id)
		}
	default:
		return fmt.Errorf("nothing selected: use --ids or --all")
	}

	if len(m.Selected()) == 0 {
		fmt.Fprintln(os.Stdout, "No rows match the selection.")
		return nil
	}

	var res manage.BulkResult
	if manageDelete {
		res, err = m.ApplyBulkDelete(ctx)
	} else {
		res, err = m.ApplyBulkStatus(ctx, to)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, res.Notice())
	return nil
}

// parseIDList parses "1,2,3" into ids.
func parseIDList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", part)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no ids given")
	}
	return ids, nil
}
