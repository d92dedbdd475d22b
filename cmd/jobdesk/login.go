package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobdesk/internal/types"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session token",
	Long:  "Sign in against the backend, persist the bearer token, and cache the user profile. The token's expiry is watched so the session ends before it goes stale.",
	RunE:  runLogin,
}

var (
	loginEmail    string
	loginPassword string
)

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email (required)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
	_ = loginCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(loginCmd)
}

func runLogin(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	password := loginPassword
	if password == "" {
		password, err = readPassword("Password: ")
		if err != nil {
			return err
		}
	}

	ctx := context.Background()
	if _, err := a.client.Login(ctx, &types.LoginRequest{Email: loginEmail, Password: password}); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	// Refresh the cached identity so whoami works offline.
	user, err := a.client.GetMe(ctx)
	if err != nil {
		return err
	}
	if err := a.store.SetUser(user); err != nil {
		a.log.Warn().Err(err).Msg("failed to cache user profile")
	}

	fmt.Fprintf(os.Stdout, "Signed in as %s\n", user.DisplayName())
	if back := a.store.ReturnPath(); back != "" {
		fmt.Fprintf(os.Stdout, "You were interrupted at %s; pick up from there.\n", back)
	}
	return nil
}
