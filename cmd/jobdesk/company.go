package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobdesk/internal/types"
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Manage the company profile",
}

var companyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your company profile",
	RunE:  runCompanyShow,
}

var companyUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update company profile fields",
	RunE:  runCompanyUpdate,
}

var companyLogoCmd = &cobra.Command{
	Use:   "logo <file>",
	Short: "Upload the company logo",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompanyLogo,
}

var companyByUserCmd = &cobra.Command{
	Use:   "by-user <user-id>",
	Short: "Look up the public company profile of a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompanyByUser,
}

var (
	companyName    string
	companySector  string
	companyCity    string
	companyCountry string
	companyWebsite string
)

func init() {
	companyUpdateCmd.Flags().StringVar(&companyName, "name", "", "Company name")
	companyUpdateCmd.Flags().StringVar(&companySector, "sector", "", "Business sector")
	companyUpdateCmd.Flags().StringVar(&companyCity, "city", "", "Location city")
	companyUpdateCmd.Flags().StringVar(&companyCountry, "country", "", "Location country")
	companyUpdateCmd.Flags().StringVar(&companyWebsite, "website", "", "Company website")

	companyCmd.AddCommand(companyShowCmd)
	companyCmd.AddCommand(companyUpdateCmd)
	companyCmd.AddCommand(companyLogoCmd)
	companyCmd.AddCommand(companyByUserCmd)
	rootCmd.AddCommand(companyCmd)
}

func runCompanyShow(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	company, err := a.client.GetCompanyMe(context.Background())
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s (%s)\n", company.CompanyName, company.Sector)
	if company.LocationCity != "" || company.LocationCountry != "" {
		fmt.Fprintf(os.Stdout, "Location: %s, %s\n", company.LocationCity, company.LocationCountry)
	}
	if company.CompanyWebsite != "" {
		fmt.Fprintf(os.Stdout, "Website:  %s\n", company.CompanyWebsite)
	}
	return nil
}

func runCompanyUpdate(cmd *cobra.Command, _ []string) error {
	patch := &types.CompanyPatch{}
	changed := false
	set := func(flag string, dst **string, v *string) {
		if cmd.Flags().Changed(flag) {
			*dst = v
			changed = true
		}
	}
	set("name", &patch.CompanyName, &companyName)
	set("sector", &patch.Sector, &companySector)
	set("city", &patch.LocationCity, &companyCity)
	set("country", &patch.LocationCountry, &companyCountry)
	set("website", &patch.CompanyWebsite, &companyWebsite)
	if !changed {
		return fmt.Errorf("nothing to update")
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	if _, err := a.client.PatchCompanyMe(context.Background(), patch); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "Company profile updated.")
	return nil
}

func runCompanyLogo(_ *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	out, err := a.client.UploadLogo(context.Background(), filepath.Base(args[0]), f)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Logo uploaded: %s\n", out.CompanyLogoURL)
	return nil
}

func runCompanyByUser(_ *cobra.Command, args []string) error {
	userID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid user id %q", args[0])
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	company, err := a.client.GetCompanyByUser(context.Background(), userID)
	if err != nil {
		return err
	}
	if company == nil {
		fmt.Fprintln(os.Stdout, "No company profile for that user.")
		return nil
	}
	fmt.Fprintf(os.Stdout, "%s (company %d)\n", company.Name, company.ID)
	return nil
}
