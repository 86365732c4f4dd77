// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"copybus/cli/internal/session"
	"copybus/cli/internal/sessionerr"
	"copybus/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// loginCmd groups the two sign-in flows. The fleet API has no unified login
// endpoint: managers and company employees authenticate against separate
// routes, so the CLI offers one subcommand per principal kind.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the fleet service",
	Long: `The login command signs this device in to the Copybus fleet service.
Managers and company employees use separate accounts; pick the subcommand
matching yours. On success the session is stored in the OS keychain and
restored automatically on the next run.`,
}

// loginManagerCmd signs in a fleet manager.
var loginManagerCmd = &cobra.Command{
	Use:   "manager",
	Short: "Sign in with a manager account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLogin(cmd, "manager account", sess.SignInManager)
	},
}

// loginUserCmd signs in a company employee.
var loginUserCmd = &cobra.Command{
	Use:     "user",
	Aliases: []string{"employee"},
	Short:   "Sign in with an employee account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLogin(cmd, "employee account", sess.SignInEmployee)
	},
}

// runLogin prompts for credentials and runs the shared sign-in flow.
// Whitespace around the inputs is trimmed here, before the session layer
// sees them. Every sign-in failure prints the same generic message; the CLI
// cannot tell the user whether the password was wrong or the network was
// down, and must not.
func runLogin(cmd *cobra.Command, what string, signIn func(context.Context, string, string) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	if snap := sess.Snapshot(); snap.Identity != nil {
		fmt.Printf("Already signed in as %s\n", snap.Identity.DisplayName())
		fmt.Println("Run 'copybus logout' first to switch accounts.")
		return nil
	}

	pterm.Printf("Signing in with a %s\n", what)
	email, err := pterm.DefaultInteractiveTextInput.Show("Email")
	if err != nil {
		return err
	}
	secret, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
	if err != nil {
		return err
	}
	terminal.ClearPreviousLines(len("Email") + len(email))

	email = strings.TrimSpace(email)
	secret = strings.TrimSpace(secret)

	stop := startInlineSpinner(cmd.OutOrStdout(), "Verifying credentials", []string{"|", "/", "-", "\\"}, 120*time.Millisecond)
	err = signIn(ctx, email, secret)
	stop()

	if err != nil {
		if errors.Is(err, session.ErrAlreadySignedIn) {
			fmt.Println("Already signed in. Run 'copybus logout' first to switch accounts.")
			return nil
		}
		if kind, ok := sessionerr.KindOf(err); ok && kind == sessionerr.StorageWrite {
			pterm.Error.Println("Could not store your session securely. Please try again.")
			return err
		}
		// Credential rejection and unreachable backend present identically.
		pterm.Error.Println("Invalid credentials")
		return err
	}

	snap := sess.Snapshot()
	if snap.Identity != nil {
		fmt.Printf("✅ Welcome, %s!\n", snap.Identity.DisplayName())
	} else {
		fmt.Println("✅ Signed in")
	}
	return nil
}

func init() {
	loginCmd.AddCommand(loginManagerCmd)
	loginCmd.AddCommand(loginUserCmd)
	rootCmd.AddCommand(loginCmd)
}
