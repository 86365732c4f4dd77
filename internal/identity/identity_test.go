// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

package identity

import (
	"errors"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		id   Identity
	}{
		{
			name: "manager",
			id: NewManager(Manager{
				ID:     7,
				Name:   "Ana Souza",
				Email:  "ana@frota.com",
				Active: true,
			}),
		},
		{
			name: "employee",
			id: NewEmployee(Employee{
				ID:        3,
				Name:      "Carlos Lima",
				Email:     "carlos@frota.com",
				CompanyID: 9,
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Marshal(tt.id)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			got, err := Unmarshal(data)
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got.Kind() != tt.id.Kind() {
				t.Errorf("Kind() = %q, want %q", got.Kind(), tt.id.Kind())
			}
			if got.DisplayName() != tt.id.DisplayName() {
				t.Errorf("DisplayName() = %q, want %q", got.DisplayName(), tt.id.DisplayName())
			}
			if got.Email() != tt.id.Email() {
				t.Errorf("Email() = %q, want %q", got.Email(), tt.id.Email())
			}
		})
	}
}

func TestVariantAccessors(t *testing.T) {
	mgr := NewManager(Manager{ID: 1, Name: "Ana"})
	if _, ok := mgr.Manager(); !ok {
		t.Error("Manager() not ok for manager identity")
	}
	if _, ok := mgr.Employee(); ok {
		t.Error("Employee() ok for manager identity")
	}

	emp := NewEmployee(Employee{ID: 2, Name: "Carlos", CompanyID: 4})
	if _, ok := emp.Employee(); !ok {
		t.Error("Employee() not ok for employee identity")
	}
	if _, ok := emp.Manager(); ok {
		t.Error("Manager() ok for employee identity")
	}
}

func TestUnmarshalRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{{{"},
		{name: "empty object", data: "{}"},
		{name: "future version", data: `{"v":2,"kind":"manager","manager":{"ges_codigo":1}}`},
		{name: "unknown kind", data: `{"v":1,"kind":"admin"}`},
		{name: "kind without payload", data: `{"v":1,"kind":"manager"}`},
		{name: "kind disagrees with payload", data: `{"v":1,"kind":"employee","manager":{"ges_codigo":1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.data))
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("Unmarshal() error = %v, want ErrCorrupt", err)
			}
		})
	}
}
