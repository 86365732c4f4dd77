// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"copybus/cli/internal/identity"

	"github.com/spf13/cobra"
)

// whoamiCmd shows the restored session without any network call. A stale
// token is only discovered when an authenticated command first uses it.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account and role",
	Long: `The whoami command displays the identity restored from the OS keychain:
the account's name, email, and whether it is a manager or an employee
account. It reads only local state and works offline.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		snap := sess.Snapshot()
		if snap.Identity == nil {
			fmt.Println("🔒 You're not signed in yet!")
			fmt.Println("   Run 'copybus login manager' or 'copybus login user' to get started.")
			return nil
		}

		fmt.Println(whoamiLine(*snap.Identity))
		return nil
	},
}

// whoamiLine renders the signed-in account as one plain-text line. Output
// sticks to ASCII punctuation so it survives narrow terminal encodings.
func whoamiLine(id identity.Identity) string {
	switch id.Kind() {
	case identity.KindEmployee:
		emp, _ := id.Employee()
		return fmt.Sprintf("👤 %s <%s> - employee of company #%d", emp.Name, emp.Email, emp.CompanyID)
	default:
		return fmt.Sprintf("👤 %s <%s> - fleet manager", id.DisplayName(), id.Email())
	}
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
