package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobdesk/internal/payload"
	"github.com/jonathan/jobdesk/internal/types"
	"github.com/jonathan/jobdesk/internal/validation"
	"github.com/jonathan/jobdesk/internal/wizard"
)

var jobsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a job posting from a draft file",
	Long:  "Run a draft JSON file through the job-creation wizard: each step is validated in order, the draft is normalized into the wire payload, previewed, and submitted.",
	RunE:  runJobsCreate,
}

var (
	jobsCreateDraftPath string
	jobsCreateDryRun    bool
)

func init() {
	jobsCreateCmd.Flags().StringVarP(&jobsCreateDraftPath, "draft", "d", "", "Path to the draft JSON file (required)")
	jobsCreateCmd.Flags().BoolVar(&jobsCreateDryRun, "dry-run", false, "Validate and preview without submitting")
	_ = jobsCreateCmd.MarkFlagRequired("draft")

	jobsCmd.AddCommand(jobsCreateCmd)
}

func runJobsCreate(_ *cobra.Command, _ []string) error {
	draft, err := loadDraft(jobsCreateDraftPath)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	engine, err := wizard.New(validation.JobSteps, draft)
	if err != nil {
		return err
	}

	// Walk the wizard front to back; a step with errors blocks the advance.
	for !engine.IsLast() {
		if errs := validation.ValidateJobStep(engine.Step(), engine.Draft()); !errs.Empty() {
			printFieldErrors(engine.StepName(), errs)
			return fmt.Errorf("draft is invalid at step %d (%s)", engine.Step()+1, engine.StepName())
		}
		engine.Next()
	}

	body, err := payload.BuildJob(engine.Draft())
	if err != nil {
		return err
	}

	a.printer.PrintJobPreview(previewJob(body))

	if jobsCreateDryRun {
		fmt.Fprintln(os.Stdout, "Dry run: nothing submitted.")
		return nil
	}

	job, err := a.client.CreateJob(context.Background(), body)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Job %d created (%s).\n", job.ID, job.Status)
	return nil
}

// previewJob shapes the wire payload back into a Job for display.
func previewJob(body map[string]interface{}) *types.Job {
	data, err := json.Marshal(body)
	if err != nil {
		return nil
	}
	var job types.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil
	}
	return &job
}
