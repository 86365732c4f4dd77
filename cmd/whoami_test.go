// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"strings"
	"testing"

	"copybus/cli/internal/identity"
)

func TestWhoamiLine(t *testing.T) {
	tests := []struct {
		name string
		id   identity.Identity
		want string
	}{
		{
			name: "manager",
			id: identity.NewManager(identity.Manager{
				ID:    7,
				Name:  "Ana Souza",
				Email: "ana@frota.com",
			}),
			want: "👤 Ana Souza <ana@frota.com> - fleet manager",
		},
		{
			name: "employee",
			id: identity.NewEmployee(identity.Employee{
				ID:        3,
				Name:      "Carlos Lima",
				Email:     "carlos@frota.com",
				CompanyID: 9,
			}),
			want: "👤 Carlos Lima <carlos@frota.com> - employee of company #9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := whoamiLine(tt.id)
			if got != tt.want {
				t.Errorf("whoamiLine() = %q, want %q", got, tt.want)
			}
			// The separator is a plain hyphen, not typographic punctuation.
			if strings.ContainsAny(got, "—–") {
				t.Errorf("whoamiLine() = %q contains non-ASCII dashes", got)
			}
		})
	}
}
