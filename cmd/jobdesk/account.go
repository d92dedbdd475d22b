package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobdesk/internal/types"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage your account",
}

var accountUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	RunE:  runAccountUpdate,
}

var accountChangePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Change the account password",
	RunE:  runAccountChangePassword,
}

var accountChangeEmailCmd = &cobra.Command{
	Use:   "change-email <new-email>",
	Short: "Change the account email",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountChangeEmail,
}

var accountAvatarCmd = &cobra.Command{
	Use:   "avatar <file>",
	Short: "Upload a profile picture",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountAvatar,
}

var (
	accountFullName string
	accountLinkedin string
	accountGithub   string
)

func init() {
	accountUpdateCmd.Flags().StringVar(&accountFullName, "full-name", "", "Full name")
	accountUpdateCmd.Flags().StringVar(&accountLinkedin, "linkedin", "", "LinkedIn profile URL")
	accountUpdateCmd.Flags().StringVar(&accountGithub, "github", "", "GitHub profile URL")

	accountCmd.AddCommand(accountUpdateCmd)
	accountCmd.AddCommand(accountChangePasswordCmd)
	accountCmd.AddCommand(accountChangeEmailCmd)
	accountCmd.AddCommand(accountAvatarCmd)
	rootCmd.AddCommand(accountCmd)
}

func runAccountUpdate(cmd *cobra.Command, _ []string) error {
	patch := &types.UserPatch{}
	if cmd.Flags().Changed("full-name") {
		patch.FullName = &accountFullName
	}
	if cmd.Flags().Changed("linkedin") {
		patch.LinkedinURL = &accountLinkedin
	}
	if cmd.Flags().Changed("github") {
		patch.GithubURL = &accountGithub
	}
	if patch.FullName == nil && patch.LinkedinURL == nil && patch.GithubURL == nil {
		return fmt.Errorf("nothing to update")
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	user, err := a.client.PatchMe(context.Background(), patch)
	if err != nil {
		return err
	}
	if err := a.store.SetUser(user); err != nil {
		a.log.Warn().Err(err).Msg("failed to cache user profile")
	}
	fmt.Fprintln(os.Stdout, "Profile updated.")
	return nil
}

func runAccountChangePassword(_ *cobra.Command, _ []string) error {
	current, err := readPassword("Current password: ")
	if err != nil {
		return err
	}
	next, err := readPassword("New password: ")
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	req := &types.ChangePasswordRequest{CurrentPassword: current, NewPassword: next}
	if err := a.client.ChangePassword(context.Background(), req); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "Password changed.")
	return nil
}

func runAccountChangeEmail(_ *cobra.Command, args []string) error {
	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	req := &types.ChangeEmailRequest{Password: password, NewEmail: args[0]}
	if err := a.client.ChangeEmail(context.Background(), req); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Email changed to %s.\n", args[0])
	return nil
}

func runAccountAvatar(_ *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	out, err := a.client.UploadAvatar(context.Background(), filepath.Base(args[0]), f)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Avatar uploaded: %s\n", out.ProfilePictureURL)
	return nil
}
