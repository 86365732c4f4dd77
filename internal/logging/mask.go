// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides utilities for secure logging and error
// presentation. Errors that cross the session boundary may wrap transport
// details containing credentials or tokens; everything printed goes through
// Mask first so secrets never reach the terminal or any captured output.
package logging

import (
	"regexp"
)

var (
	reBearer   = regexp.MustCompile(`(?i)(bearer\s+)([A-Za-z0-9._-]+)`)
	reToken    = regexp.MustCompile(`(?i)("?token"?\s*[:=]\s*"?)([A-Za-z0-9._-]+)`)
	rePassword = regexp.MustCompile(`(?i)("?(?:ges_senha|usu_senha|password|senha)"?\s*[:=]\s*"?)([^"\s,}]+)`)
)

// Mask replaces sensitive values in the input string with "***".
// It covers bearer tokens, token fields, and the login endpoints'
// password fields in either JSON or key=value form.
func Mask(s string) string {
	out := s
	out = reBearer.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	out = rePassword.ReplaceAllString(out, "$1***")
	return out
}
