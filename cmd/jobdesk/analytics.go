package main

import (
	"context"

	"github.com/spf13/cobra"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show the company analytics summary",
	Long:  "Show the company analytics summary. Admin accounts without a company dashboard fall through to the admin-wide summary automatically.",
	RunE:  runAnalytics,
}

func init() {
	rootCmd.AddCommand(analyticsCmd)
}

func runAnalytics(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	summary, err := a.client.GetAnalyticsSummary(context.Background())
	if err != nil {
		return err
	}
	a.printer.PrintAnalyticsSummary(summary)
	return nil
}
