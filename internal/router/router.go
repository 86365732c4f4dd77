// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package router maps session state to the command graph the rest of the
// CLI is allowed to reach. The mapping is a pure function: one graph per
// state, mutually exclusive and collectively exhaustive, re-evaluated on
// every session change.
package router

import (
	"copybus/cli/internal/identity"
	"copybus/cli/internal/session"
)

// Graph is one of the disjoint command graphs.
type Graph string

const (
	// GraphLoading covers the startup window before restore has resolved.
	// Nothing navigable is mounted in it.
	GraphLoading Graph = "loading"
	// GraphSignIn is the unauthenticated graph: only sign-in is reachable.
	GraphSignIn Graph = "signin"
	// GraphManager is the manager capability set.
	GraphManager Graph = "manager"
	// GraphEmployee is the employee capability set.
	GraphEmployee Graph = "employee"
)

// Route maps a session snapshot to exactly one graph.
func Route(snap session.Snapshot) Graph {
	switch {
	case snap.Restoring:
		return GraphLoading
	case snap.Identity == nil:
		return GraphSignIn
	case snap.Identity.Kind() == identity.KindManager:
		return GraphManager
	default:
		return GraphEmployee
	}
}

// graphCommands lists the domain commands mounted on each graph.
// Sign-in/out and whoami sit outside the graphs and are always reachable.
var graphCommands = map[Graph][]string{
	GraphManager:  {"companies", "managers", "home"},
	GraphEmployee: {"vehicles", "drivers", "fleets", "employees", "home"},
}

// Allows reports whether the named command is mounted on the graph.
func Allows(g Graph, command string) bool {
	for _, c := range graphCommands[g] {
		if c == command {
			return true
		}
	}
	return false
}

// Commands returns the domain commands mounted on the graph.
func Commands(g Graph) []string {
	cmds := graphCommands[g]
	out := make([]string, len(cmds))
	copy(out, cmds)
	return out
}
