// Package main is the entry point for the Copybus CLI.
package main

import (
	"copybus/cli/cmd"
)

func main() {
	cmd.Execute()
}
