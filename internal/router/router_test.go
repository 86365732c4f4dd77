// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

package router

import (
	"testing"

	"copybus/cli/internal/identity"
	"copybus/cli/internal/session"
)

func TestRoute(t *testing.T) {
	mgr := identity.NewManager(identity.Manager{ID: 7, Name: "Ana"})
	emp := identity.NewEmployee(identity.Employee{ID: 3, Name: "Carlos", CompanyID: 9})

	tests := []struct {
		name string
		snap session.Snapshot
		want Graph
	}{
		{
			name: "restoring mounts nothing navigable",
			snap: session.Snapshot{Restoring: true},
			want: GraphLoading,
		},
		{
			name: "restoring wins even with an identity set",
			snap: session.Snapshot{Restoring: true, Identity: &mgr},
			want: GraphLoading,
		},
		{
			name: "signed out routes to sign-in",
			snap: session.Snapshot{},
			want: GraphSignIn,
		},
		{
			name: "manager identity routes to the manager graph",
			snap: session.Snapshot{Identity: &mgr},
			want: GraphManager,
		},
		{
			name: "employee identity routes to the employee graph",
			snap: session.Snapshot{Identity: &emp},
			want: GraphEmployee,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Route(tt.snap); got != tt.want {
				t.Errorf("Route() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Every reachable snapshot maps to exactly one graph; the four graphs
// partition the state space.
func TestRouteExclusive(t *testing.T) {
	mgr := identity.NewManager(identity.Manager{ID: 1})
	emp := identity.NewEmployee(identity.Employee{ID: 2})

	snaps := []session.Snapshot{
		{Restoring: true},
		{},
		{Identity: &mgr},
		{Identity: &emp},
	}
	seen := map[Graph]bool{}
	for _, snap := range snaps {
		g := Route(snap)
		if seen[g] {
			t.Errorf("graph %q reached from more than one state", g)
		}
		seen[g] = true
	}
	for _, g := range []Graph{GraphLoading, GraphSignIn, GraphManager, GraphEmployee} {
		if !seen[g] {
			t.Errorf("graph %q unreachable", g)
		}
	}
}

func TestAllows(t *testing.T) {
	tests := []struct {
		graph   Graph
		command string
		want    bool
	}{
		{GraphManager, "companies", true},
		{GraphManager, "managers", true},
		{GraphManager, "vehicles", false},
		{GraphEmployee, "vehicles", true},
		{GraphEmployee, "drivers", true},
		{GraphEmployee, "companies", false},
		{GraphSignIn, "companies", false},
		{GraphSignIn, "vehicles", false},
		{GraphLoading, "home", false},
	}

	for _, tt := range tests {
		if got := Allows(tt.graph, tt.command); got != tt.want {
			t.Errorf("Allows(%q, %q) = %v, want %v", tt.graph, tt.command, got, tt.want)
		}
	}
}

func TestCommandsReturnsCopy(t *testing.T) {
	cmds := Commands(GraphManager)
	if len(cmds) == 0 {
		t.Fatal("manager graph has no commands")
	}
	cmds[0] = "tampered"
	if Commands(GraphManager)[0] == "tampered" {
		t.Error("Commands() exposes internal slice")
	}
}
