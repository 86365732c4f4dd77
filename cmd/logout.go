// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// logoutCmd clears the stored session. Sign-out never fails from the user's
// perspective: a keychain-clear hiccup is logged by the session manager and
// the in-memory session is dropped regardless.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove the stored session",
	Long: `The logout command removes the signed-in identity and its bearer token
from the OS keychain and ends the current session. It is safe to run when
already signed out.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		sess.SignOut(cmd.Context())
		fmt.Println("✅ Signed out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
