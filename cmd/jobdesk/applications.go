package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobdesk/internal/manage"
	"github.com/jonathan/jobdesk/internal/types"
)

var applicationsCmd = &cobra.Command{
	Use:   "applications",
	Short: "Review candidate applications",
}

var applicationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the applications for one of your jobs",
	RunE:  runApplicationsList,
}

var applicationsStatusCmd = &cobra.Command{
	Use:   "status <id> <accepted|rejected|pending>",
	Short: "Change one application's review state",
	Args:  cobra.ExactArgs(2),
	RunE:  runApplicationsStatus,
}

var applicationsBulkCmd = &cobra.Command{
	Use:   "bulk",
	Short: "Accept or reject several applications at once",
	RunE:  runApplicationsBulk,
}

var (
	applicationsJobID  int
	applicationsSort   string
	applicationsFilter string
	applicationsQuery  string

	applicationsBulkIDs string
	applicationsBulkTo  string
)

func init() {
	applicationsListCmd.Flags().IntVar(&applicationsJobID, "job", 0, "Job id (required)")
	applicationsListCmd.Flags().StringVar(&applicationsSort, "sort", "score_desc", "Server-side ordering: score_desc or score_asc")
	applicationsListCmd.Flags().StringVar(&applicationsFilter, "status", "", "Server-side status filter")
	applicationsListCmd.Flags().StringVarP(&applicationsQuery, "query", "q", "", "Client-side search over job title and candidate name")
	_ = applicationsListCmd.MarkFlagRequired("job")

	applicationsBulkCmd.Flags().IntVar(&applicationsJobID, "job", 0, "Job id (required)")
	applicationsBulkCmd.Flags().StringVar(&applicationsBulkIDs, "ids", "", "Comma-separated application ids (required)")
	applicationsBulkCmd.Flags().StringVar(&applicationsBulkTo, "to", "", "Target state: accepted or rejected (required)")
	_ = applicationsBulkCmd.MarkFlagRequired("job")
	_ = applicationsBulkCmd.MarkFlagRequired("ids")
	_ = applicationsBulkCmd.MarkFlagRequired("to")

	applicationsCmd.AddCommand(applicationsListCmd)
	applicationsCmd.AddCommand(applicationsStatusCmd)
	applicationsCmd.AddCommand(applicationsBulkCmd)
	rootCmd.AddCommand(applicationsCmd)
}

func runApplicationsList(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ctx := context.Background()
	table := manage.NewApplicationTable(a.client, a.log)
	if err := table.SetSort(ctx, types.ApplicationSort(applicationsSort)); err != nil {
		return err
	}
	if applicationsFilter != "" {
		status := types.ApplicationStatus(applicationsFilter)
		if !status.Valid() {
			return fmt.Errorf("unknown status %q", applicationsFilter)
		}
		if err := table.SetStatusFilter(ctx, status); err != nil {
			return err
		}
	}
	if err := table.SelectJob(ctx, applicationsJobID); err != nil {
		return err
	}
	table.SetQuery(applicationsQuery)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCANDIDATE\tEMAIL\tSCORE\tSTATUS")
	rows := table.FilterVisible()
	for _, app := range rows {
		score := "-"
		if app.Score != nil {
			score = strconv.Itoa(*app.Score)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			app.ID, app.CandidateName(), app.Email, score, app.Status)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%d application(s)\n", len(rows))
	return nil
}

func runApplicationsStatus(_ *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid application id %q", args[0])
	}
	status := types.ApplicationStatus(args[1])
	if !status.Valid() {
		return fmt.Errorf("unknown status %q", args[1])
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	if err := a.client.SetApplicationStatus(context.Background(), id, status); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Application %d marked %s.\n", id, status)
	return nil
}

func runApplicationsBulk(_ *cobra.Command, _ []string) error {
	to := types.ApplicationStatus(applicationsBulkTo)
	if to != types.ApplicationAccepted && to != types.ApplicationRejected {
		return fmt.Errorf("target state must be accepted or rejected")
	}

	ids, err := parseIDList(applicationsBulkIDs)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	ctx := context.Background()
	table := manage.NewApplicationTable(a.client, a.log)
	if err := table.SelectJob(ctx, applicationsJobID); err != nil {
		return err
	}
	for _, id := range ids {
		table.ToggleSelect(id)
	}
	if len(table.Selected()) == 0 {
		fmt.Fprintln(os.Stdout, "No rows match the selection.")
		return nil
	}

	res, err := table.ApplyBulk(ctx, to)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, res.Notice())
	return nil
}
