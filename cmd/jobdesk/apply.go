package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobdesk/internal/richtext"
	"github.com/jonathan/jobdesk/internal/types"
	"github.com/jonathan/jobdesk/internal/validation"
	"github.com/jonathan/jobdesk/internal/wizard"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply to a job posting",
	Long:  "Apply to a job. The application draft walks the same steps as the web wizard; a CV is attached from --cv or from the account's current CV.",
	RunE:  runApply,
}

var (
	applyJobID     int
	applyDraftPath string
	applyCVPath    string
)

func init() {
	applyCmd.Flags().IntVar(&applyJobID, "job", 0, "Job id (required)")
	applyCmd.Flags().StringVarP(&applyDraftPath, "draft", "d", "", "Path to the application draft JSON file (required)")
	applyCmd.Flags().StringVar(&applyCVPath, "cv", "", "Path to a PDF CV to upload and attach")
	_ = applyCmd.MarkFlagRequired("job")
	_ = applyCmd.MarkFlagRequired("draft")

	rootCmd.AddCommand(applyCmd)
}

func runApply(_ *cobra.Command, _ []string) error {
	draft, err := loadDraft(applyDraftPath)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	// Refuse a duplicate up front, before a CV gets uploaded.
	job, err := a.client.GetJob(ctx, applyJobID)
	if err != nil {
		return err
	}
	if err := checkNotApplied(job); err != nil {
		return err
	}

	// Attach a CV before the wizard runs so the CV step can pass.
	if applyCVPath != "" {
		if !validation.IsPDFFilename(applyCVPath) {
			return fmt.Errorf("CV must be a PDF file")
		}
		f, err := os.Open(applyCVPath)
		if err != nil {
			return fmt.Errorf("failed to open CV: %w", err)
		}
		cv, err := a.client.UploadCV(ctx, filepath.Base(applyCVPath), f)
		f.Close()
		if err != nil {
			return err
		}
		draft[validation.FieldCVID] = cv.ID
	} else if _, ok := draft[validation.FieldCVID]; !ok {
		cv, err := a.client.GetCurrentCV(ctx)
		if err != nil {
			return err
		}
		if cv != nil {
			draft[validation.FieldCVID] = cv.ID
		}
	}

	engine, err := wizard.New(validation.ApplicationSteps, draft)
	if err != nil {
		return err
	}
	for !engine.IsLast() {
		if errs := validation.ValidateApplicationStep(engine.Step(), engine.Draft()); !errs.Empty() {
			printFieldErrors(engine.StepName(), errs)
			return fmt.Errorf("application is invalid at step %d (%s)", engine.Step()+1, engine.StepName())
		}
		engine.Next()
	}

	req, err := applicationRequest(applyJobID, engine.Draft())
	if err != nil {
		return err
	}

	app, err := a.client.SubmitApplication(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Application %d submitted for job %d.\n", app.ID, applyJobID)
	return nil
}

// checkNotApplied rejects a job the account already applied to.
func checkNotApplied(job *types.Job) error {
	if job.HasApplied {
		return fmt.Errorf("you have already applied to %q (job %d)", job.Title, job.ID)
	}
	return nil
}

// applicationRequest shapes a validated draft into the submission payload.
// The cover letter is user-authored HTML and passes the allow-list
// sanitizer before anything goes on the wire.
func applicationRequest(jobID int, draft wizard.Draft) (*types.ApplicationRequest, error) {
	data, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("failed to encode draft: %w", err)
	}
	var req types.ApplicationRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("draft does not match the application shape: %w", err)
	}
	req.JobID = jobID

	if req.CoverLetter != "" {
		clean, err := richtext.Sanitize(req.CoverLetter)
		if err != nil {
			return nil, fmt.Errorf("cover letter: %w", err)
		}
		req.CoverLetter = strings.TrimSpace(clean)
	}
	return &req, nil
}
