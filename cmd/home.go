// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"copybus/cli/internal/router"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// homeCmd mounts the routed graph as an interactive menu. Managers and
// employees see disjoint menus; signed-out users are sent to login. The
// loading state the router knows about cannot be reached here: restore has
// already resolved before any command runs.
var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Browse the fleet interactively",
	Long: `The home command opens an interactive menu with the commands available
for the signed-in role. Managers see company and manager administration;
employees see their company's vehicles, drivers, fleets, and colleagues.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireGraph("home"); err != nil {
			return err
		}

		snap := sess.Snapshot()
		fmt.Printf("👤 %s - %s\n\n", snap.Identity.DisplayName(), currentGraph())

		options := []string{}
		for _, c := range router.Commands(currentGraph()) {
			if c == "home" {
				continue
			}
			options = append(options, c)
		}
		options = append(options, "quit")

		cursor.Hide()
		defer cursor.Show()

		for {
			choice, err := pterm.DefaultInteractiveSelect.
				WithOptions(options).
				Show("What would you like to see?")
			if err != nil {
				return err
			}
			if choice == "quit" {
				return nil
			}

			list, ok := listingByName[choice]
			if !ok {
				return fmt.Errorf("unknown menu entry %q", choice)
			}
			if err := runListing(cmd.Context(), choice, list); err != nil {
				// The menu stays open after a failed listing; the error has
				// already been presented. An expired session ends the menu.
				if currentGraph() == router.GraphSignIn {
					return nil
				}
			}
			pterm.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(homeCmd)
}
