package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobdesk/internal/types"
	"github.com/jonathan/jobdesk/internal/validation"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a candidate or company account",
	Long:  "Create an account. Candidate signups attach a PDF CV which is uploaded right after the first login; company signups carry the company name.",
	RunE:  runRegister,
}

var (
	registerType        string
	registerEmail       string
	registerFirstName   string
	registerLastName    string
	registerPhone       string
	registerBirthDay    string
	registerBirthMonth  string
	registerBirthYear   string
	registerCVPath      string
	registerCompanyName string
	registerLogoPath    string
)

func init() {
	registerCmd.Flags().StringVar(&registerType, "type", "candidate", "Account type: candidate or company")
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Account email (required)")
	registerCmd.Flags().StringVar(&registerFirstName, "first-name", "", "First name (required)")
	registerCmd.Flags().StringVar(&registerLastName, "last-name", "", "Last name (required)")
	registerCmd.Flags().StringVar(&registerPhone, "phone", "", "Phone number")
	registerCmd.Flags().StringVar(&registerBirthDay, "birth-day", "", "Day of birth")
	registerCmd.Flags().StringVar(&registerBirthMonth, "birth-month", "", "Month of birth")
	registerCmd.Flags().StringVar(&registerBirthYear, "birth-year", "", "Year of birth")
	registerCmd.Flags().StringVar(&registerCVPath, "cv", "", "Path to a PDF CV (candidate signup)")
	registerCmd.Flags().StringVar(&registerCompanyName, "company-name", "", "Company name (company signup)")
	registerCmd.Flags().StringVar(&registerLogoPath, "logo", "", "Path to a company logo image (company signup)")
	_ = registerCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(registerCmd)
}

func runRegister(_ *cobra.Command, _ []string) error {
	accountType := types.AccountType(registerType)
	if accountType != types.AccountCandidate && accountType != types.AccountCompany {
		return fmt.Errorf("unknown account type %q (candidate or company)", registerType)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return err
	}

	form := validation.SignupForm{
		FirstName:   registerFirstName,
		LastName:    registerLastName,
		Email:       registerEmail,
		Phone:       registerPhone,
		Password:    password,
		Confirm:     confirm,
		BirthDay:    registerBirthDay,
		BirthMonth:  registerBirthMonth,
		BirthYear:   registerBirthYear,
		CompanyName: registerCompanyName,
	}
	if registerCVPath != "" {
		form.CVFilename = filepath.Base(registerCVPath)
	}

	var errs validation.FieldErrorMap
	if accountType == types.AccountCandidate {
		errs = validation.ValidateCandidateSignup(form)
	} else {
		errs = validation.ValidateCompanySignup(form)
	}
	if !errs.Empty() {
		printFieldErrors("signup", errs)
		return fmt.Errorf("signup form is invalid")
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	req := &types.RegisterRequest{
		Email:       registerEmail,
		Password:    password,
		FirstName:   registerFirstName,
		LastName:    registerLastName,
		Phone:       registerPhone,
		DateOfBirth: validation.BirthDate(registerBirthDay, registerBirthMonth, registerBirthYear),
		AccountType: accountType,
	}
	ctx := context.Background()
	if err := a.client.Register(ctx, req); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	// The signup flows chain straight into a signed-in session: register,
	// log in, then finish the profile.
	if _, err := a.client.Login(ctx, &types.LoginRequest{Email: registerEmail, Password: password}); err != nil {
		return fmt.Errorf("account created but login failed: %w", err)
	}
	user, err := a.client.GetMe(ctx)
	if err != nil {
		return err
	}
	if err := a.store.SetUser(user); err != nil {
		a.log.Warn().Err(err).Msg("failed to cache user profile")
	}
	fmt.Fprintf(os.Stdout, "Account created; signed in as %s.\n", user.DisplayName())

	if accountType == types.AccountCandidate {
		return finishCandidateSignup(ctx, a, registerCVPath)
	}
	return finishCompanySignup(ctx, a, registerCompanyName, registerLogoPath)
}

// finishCandidateSignup uploads the CV attached to the signup form, if any.
func finishCandidateSignup(ctx context.Context, a *app, cvPath string) error {
	if cvPath == "" {
		return nil
	}
	f, err := os.Open(cvPath)
	if err != nil {
		return fmt.Errorf("failed to open CV: %w", err)
	}
	defer f.Close()

	cv, err := a.client.UploadCV(ctx, filepath.Base(cvPath), f)
	if err != nil {
		return fmt.Errorf("account created but CV upload failed: %w", err)
	}
	fmt.Fprintf(os.Stdout, "CV %d uploaded.\n", cv.ID)
	return nil
}

// finishCompanySignup writes the company name onto the fresh profile and
// uploads the logo when one was given.
func finishCompanySignup(ctx context.Context, a *app, name, logoPath string) error {
	if name != "" {
		patch := &types.CompanyPatch{CompanyName: &name}
		if _, err := a.client.PatchCompanyMe(ctx, patch); err != nil {
			return fmt.Errorf("account created but company profile update failed: %w", err)
		}
	}
	if logoPath != "" {
		f, err := os.Open(logoPath)
		if err != nil {
			return fmt.Errorf("failed to open logo: %w", err)
		}
		defer f.Close()
		if _, err := a.client.UploadLogo(ctx, filepath.Base(logoPath), f); err != nil {
			return fmt.Errorf("account created but logo upload failed: %w", err)
		}
	}
	return nil
}
