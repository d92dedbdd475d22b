package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobdesk/internal/api"
	"github.com/jonathan/jobdesk/internal/observability"
	"github.com/jonathan/jobdesk/internal/types"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse and manage job postings",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List job postings",
	RunE:  runJobsList,
}

var jobsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one job posting",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsShow,
}

var jobsStatusCmd = &cobra.Command{
	Use:   "status <id> <published|draft|archived>",
	Short: "Move a job posting to another status",
	Args:  cobra.ExactArgs(2),
	RunE:  runJobsStatus,
}

var jobsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a job posting",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsDelete,
}

var (
	jobsListStatus string
	jobsListOwner  string
	jobsListQuery  string
)

func init() {
	jobsListCmd.Flags().StringVar(&jobsListStatus, "status", "", "Filter by status: published, draft, or archived")
	jobsListCmd.Flags().StringVar(&jobsListOwner, "owner", "", "Set to 'me' to list only your postings")
	jobsListCmd.Flags().StringVarP(&jobsListQuery, "query", "q", "", "Client-side text search over title, company, and skills")

	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsShowCmd)
	jobsCmd.AddCommand(jobsStatusCmd)
	jobsCmd.AddCommand(jobsDeleteCmd)
	rootCmd.AddCommand(jobsCmd)
}

func runJobsList(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	filter := api.JobFilter{Owner: jobsListOwner}
	if jobsListStatus != "" {
		status := types.JobStatus(jobsListStatus)
		if !status.Valid() {
			return fmt.Errorf("unknown status %q", jobsListStatus)
		}
		filter.Status = status
	}

	jobs, err := a.client.ListJobs(context.Background(), filter)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tLOCATION\tSALARY\tSTATUS")
	shown := 0
	for _, job := range jobs {
		if !matchesJobQuery(job, jobsListQuery) {
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			job.ID, job.Title, job.CompanyName, job.Location(),
			observability.FormatSalary(&job), job.Status)
		shown++
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%d job(s)\n", shown)
	return nil
}

func runJobsShow(_ *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid job id %q", args[0])
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	job, err := a.client.GetJob(context.Background(), id)
	if err != nil {
		return err
	}
	a.printer.PrintJobPreview(job)
	return nil
}

func runJobsStatus(_ *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid job id %q", args[0])
	}
	status := types.JobStatus(args[1])
	if !status.Valid() {
		return fmt.Errorf("unknown status %q", args[1])
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	if err := a.client.SetJobStatus(context.Background(), id, status); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Job %d moved to %s.\n", id, status)
	return nil
}

func runJobsDelete(_ *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid job id %q", args[0])
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	if err := a.client.DeleteJob(context.Background(), id); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Job %d deleted.\n", id)
	return nil
}

func matchesJobQuery(job types.Job, query string) bool {
	if query == "" {
		return true
	}
	return containsQuery(job.SearchText(), query)
}
