package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in identity",
	Long:  "Show the signed-in identity from the local cache, or from the backend with --refresh.",
	RunE:  runWhoami,
}

var whoamiRefresh bool

func init() {
	whoamiCmd.Flags().BoolVar(&whoamiRefresh, "refresh", false, "Fetch the profile from the backend instead of the cache")

	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if !whoamiRefresh {
		if user, ok := a.store.User(); ok {
			fmt.Fprintf(os.Stdout, "%s <%s> (%s)\n", user.DisplayName(), user.Email, user.AccountType)
			return nil
		}
	}

	user, err := a.client.GetMe(context.Background())
	if err != nil {
		return err
	}
	if err := a.store.SetUser(user); err != nil {
		a.log.Warn().Err(err).Msg("failed to cache user profile")
	}
	fmt.Fprintf(os.Stdout, "%s <%s> (%s)\n", user.DisplayName(), user.Email, user.AccountType)
	return nil
}
