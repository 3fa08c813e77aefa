package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/garrettladley/miband/internal/client/huami"
)

// test seams
var (
	isTerminal   = term.IsTerminal
	readPassword = term.ReadPassword
)

func loginCmd() *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password and print band data",
		Long: "Logs in to the Huami cloud with your Mi Fit email and password, stores the app token\n" +
			"locally and prints the step and sleep summaries for 2019.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if password == "" {
				pw, err := promptPassword(cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				password = pw
			}

			return a.login(ctx, email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address for login")
	cmd.Flags().StringVar(&password, "password", "", "password for login (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (a *app) login(ctx context.Context, email, password string) error {
	a.printf("Logging in with email %s\n", email)

	grant, err := a.client.Authenticate(ctx, email, password)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}
	a.printf("Obtained access token\n")

	result, err := a.client.Login(ctx, grant)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if err := result.Err(); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	s, err := result.Session()
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	a.saveSession(ctx, s, grant.CountryCode)

	return a.fetch(ctx, s, huami.DefaultDateRange, false)
}

var errNoTerminal = errors.New("--password is required when stdin is not a terminal")

func promptPassword(w io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return "", errNoTerminal
	}
	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(fd)
	_, _ = fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}
