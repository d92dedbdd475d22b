package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/jonathan/jobdesk/internal/api"
	"github.com/jonathan/jobdesk/internal/config"
	"github.com/jonathan/jobdesk/internal/logging"
	"github.com/jonathan/jobdesk/internal/observability"
	"github.com/jonathan/jobdesk/internal/session"
	"github.com/jonathan/jobdesk/internal/validation"
	"github.com/jonathan/jobdesk/internal/wizard"
)

// app bundles the wired client stack every command needs.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	store   *session.Store
	guard   *session.Guard
	client  *api.Client
	printer *observability.Printer
}

// newApp loads configuration and wires the session guard and API client.
// A token persisted by a previous run resumes its expiry watcher, so a dead
// token ends the session before any request goes out.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logging.New(cfg.Verbose)

	store, err := session.NewStore(cfg.StateDir)
	if err != nil {
		return nil, err
	}

	guard := session.NewGuard(store, session.WithEndHook(func(n session.EndNotice) {
		fmt.Fprintf(os.Stderr, "Session ended (%s). Run 'jobdesk login' to sign in again.\n", n.Reason)
	}))
	guard.Resume()

	client, err := api.NewClient(cfg, guard, log)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		log:     log,
		store:   store,
		guard:   guard,
		client:  client,
		printer: observability.NewPrinter(os.Stdout),
	}, nil
}

// readPassword prompts without echo on a terminal, falling back to a plain
// line read when stdin is piped.
func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		data, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(data), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// loadDraft reads a wizard draft from a JSON file.
func loadDraft(path string) (wizard.Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read draft file: %w", err)
	}
	var draft wizard.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("draft file is not valid JSON: %w", err)
	}
	return draft, nil
}

// containsQuery is the case-insensitive substring match used by client-side
// list search. searchText is expected to already be lowercase.
func containsQuery(searchText, query string) bool {
	return strings.Contains(searchText, strings.ToLower(strings.TrimSpace(query)))
}

// printFieldErrors renders a validator's error map, one field per line.
func printFieldErrors(stepName string, errs validation.FieldErrorMap) {
	fmt.Fprintf(os.Stderr, "Step %q has errors:\n", stepName)
	for field, msg := range errs {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
	}
}
