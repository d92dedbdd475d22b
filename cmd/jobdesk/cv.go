package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobdesk/internal/validation"
)

var cvCmd = &cobra.Command{
	Use:   "cv",
	Short: "Manage your CV documents",
}

var cvListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your uploaded CVs",
	RunE:  runCVList,
}

var cvUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a PDF CV",
	Args:  cobra.ExactArgs(1),
	RunE:  runCVUpload,
}

var cvCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the most recently uploaded CV",
	RunE:  runCVCurrent,
}

var cvDownloadCmd = &cobra.Command{
	Use:   "download <id>",
	Short: "Download a stored CV",
	Args:  cobra.ExactArgs(1),
	RunE:  runCVDownload,
}

var cvDownloadOut string

func init() {
	cvDownloadCmd.Flags().StringVarP(&cvDownloadOut, "out", "o", "cv.pdf", "Output file path")

	cvCmd.AddCommand(cvListCmd)
	cvCmd.AddCommand(cvUploadCmd)
	cvCmd.AddCommand(cvCurrentCmd)
	cvCmd.AddCommand(cvDownloadCmd)
	rootCmd.AddCommand(cvCmd)
}

func runCVList(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	cvs, err := a.client.ListCVs(context.Background())
	if err != nil {
		return err
	}
	if len(cvs) == 0 {
		fmt.Fprintln(os.Stdout, "No CVs uploaded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFILE\tUPLOADED")
	for _, cv := range cvs {
		fmt.Fprintf(w, "%d\t%s\t%s\n", cv.ID, cv.FilePath, cv.UploadedAt)
	}
	return w.Flush()
}

func runCVUpload(_ *cobra.Command, args []string) error {
	if !validation.IsPDFFilename(args[0]) {
		return fmt.Errorf("CV must be a PDF file")
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	cv, err := a.client.UploadCV(context.Background(), filepath.Base(args[0]), f)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "CV %d uploaded.\n", cv.ID)
	return nil
}

func runCVCurrent(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	cv, err := a.client.GetCurrentCV(context.Background())
	if err != nil {
		return err
	}
	if cv == nil {
		fmt.Fprintln(os.Stdout, "No CV uploaded yet.")
		return nil
	}
	fmt.Fprintf(os.Stdout, "CV %d (%s), uploaded %s\n", cv.ID, cv.FilePath, cv.UploadedAt)
	return nil
}

func runCVDownload(_ *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid CV id %q", args[0])
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	f, err := os.Create(cvDownloadOut)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := a.client.DownloadCV(context.Background(), id, f); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Saved to %s\n", cvDownloadOut)
	return nil
}
