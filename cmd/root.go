// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the Copybus fleet
// client. It wires the credential store, the fleet API client, and the
// session manager together once per invocation, restores any persisted
// session before a subcommand runs, and gates the domain commands by the
// routed graph for the signed-in role.
package cmd

import (
	"fmt"
	"os"

	"copybus/cli/internal/backend"
	"copybus/cli/internal/config"
	"copybus/cli/internal/keychain"
	"copybus/cli/internal/router"
	"copybus/cli/internal/session"

	"github.com/spf13/cobra"
)

var (
	showVersion bool

	// sess and api are built once in the root PersistentPreRunE and shared
	// by every subcommand. The session manager is constructed explicitly and
	// passed around rather than reached for ambiently.
	sess *session.Manager
	api  backend.API
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "copybus",
	Short:         "Copybus CLI for fleet management",
	Long:          `Copybus is a command-line client for the Copybus fleet-management API. It signs in as a fleet manager or a company employee, keeps the session in the OS keychain, and exposes the command set for the signed-in role.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("copybus %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// initApp builds the credential store, API client, and session manager, then
// runs the one-time restore. Every routing decision a subcommand makes
// happens after this returns, so no command ever observes the restoring
// state or a pre-restore signed-out flash.
func initApp(cmd *cobra.Command) error {
	if sess != nil {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	km, err := keychain.GetManager()
	if err != nil {
		// No usable OS keyring: fall back to a process-memory store so
		// sign-in still works for the current invocation.
		km = keychain.NewManagerWithBackend(keychain.NewMemoryBackend())
	}

	store := session.NewKeychainStore(km)
	userAgent := fmt.Sprintf("copybus-cli/%s (%s)", Version, cfg.InstallID)
	api = backend.New(cfg.APIBaseURL, store, userAgent)
	sess = session.New(store, api)
	sess.Restore(cmd.Context())
	return nil
}

// currentGraph routes the session snapshot taken after restore.
func currentGraph() router.Graph {
	return router.Route(sess.Snapshot())
}

// requireGraph checks that the named command is mounted on the current
// graph. Signed-out users get a sign-in hint; the other role gets told
// which role the command belongs to.
func requireGraph(command string) error {
	g := currentGraph()
	if router.Allows(g, command) {
		return nil
	}
	if g == router.GraphSignIn {
		fmt.Println("🔒 You're not signed in yet!")
		fmt.Println("   Run 'copybus login manager' or 'copybus login user' to get started.")
		return fmt.Errorf("not signed in")
	}
	return fmt.Errorf("the %q command is not available for your role", command)
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
}
