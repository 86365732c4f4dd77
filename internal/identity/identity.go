// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package identity defines the authenticated party for the Copybus CLI.
// The fleet API has two principal kinds, managers and company employees,
// each with its own login endpoint and record shape. An Identity carries
// exactly one of the two variants together with its kind tag, so the tag
// can never disagree with the shape it describes.
package identity

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind discriminates the two principal variants.
type Kind string

const (
	KindManager  Kind = "manager"
	KindEmployee Kind = "employee"
)

// Manager is a fleet manager record as returned by the remote API.
type Manager struct {
	ID        int    `json:"ges_codigo"`
	Name      string `json:"ges_nome"`
	Email     string `json:"ges_email"`
	Active    bool   `json:"ges_status"`
	CreatedAt string `json:"ges_created_at,omitempty"`
	UpdatedAt string `json:"ges_updated_at,omitempty"`
}

// Employee is a company employee record as returned by the remote API.
// CompanyID references the single company the employee belongs to.
type Employee struct {
	ID        int    `json:"usu_codigo"`
	Name      string `json:"usu_nome"`
	Email     string `json:"usu_email"`
	CompanyID int    `json:"emp_codigo"`
	CreatedAt string `json:"usu_created_at,omitempty"`
	UpdatedAt string `json:"usu_updated_at,omitempty"`
}

// Identity is the active principal tagged with its kind. Exactly one of
// the two variant pointers is non-nil; the constructors are the only way
// to build one, which keeps the invariant by construction.
type Identity struct {
	kind     Kind
	manager  *Manager
	employee *Employee
}

// NewManager builds a manager identity.
func NewManager(m Manager) Identity {
	return Identity{kind: KindManager, manager: &m}
}

// NewEmployee builds an employee identity.
func NewEmployee(e Employee) Identity {
	return Identity{kind: KindEmployee, employee: &e}
}

// Kind returns the discriminator tag.
func (id Identity) Kind() Kind { return id.kind }

// Manager returns the manager variant, or false when the identity is not one.
func (id Identity) Manager() (Manager, bool) {
	if id.manager == nil {
		return Manager{}, false
	}
	return *id.manager, true
}

// Employee returns the employee variant, or false when the identity is not one.
func (id Identity) Employee() (Employee, bool) {
	if id.employee == nil {
		return Employee{}, false
	}
	return *id.employee, true
}

// DisplayName returns the principal's human-readable name.
func (id Identity) DisplayName() string {
	switch id.kind {
	case KindManager:
		return id.manager.Name
	case KindEmployee:
		return id.employee.Name
	}
	return ""
}

// Email returns the principal's email address.
func (id Identity) Email() string {
	switch id.kind {
	case KindManager:
		return id.manager.Email
	case KindEmployee:
		return id.employee.Email
	}
	return ""
}

// envelopeVersion tags persisted identities so a future, incompatible
// shape can be detected and discarded instead of half-parsed.
const envelopeVersion = 1

// envelope is the persisted wire form of an Identity.
type envelope struct {
	Version  int       `json:"v"`
	Kind     Kind      `json:"kind"`
	Manager  *Manager  `json:"manager,omitempty"`
	Employee *Employee `json:"employee,omitempty"`
}

// ErrCorrupt reports a persisted identity payload that cannot be adopted:
// malformed JSON, an unknown envelope version, or a kind that disagrees
// with the variant it carries. Callers treat it as "nothing stored".
var ErrCorrupt = errors.New("identity: corrupt persisted payload")

// Marshal serializes the identity into its versioned envelope.
func Marshal(id Identity) ([]byte, error) {
	env := envelope{Version: envelopeVersion, Kind: id.kind}
	switch id.kind {
	case KindManager:
		env.Manager = id.manager
	case KindEmployee:
		env.Employee = id.employee
	default:
		return nil, fmt.Errorf("identity: unknown kind %q", id.kind)
	}
	return json.Marshal(env)
}

// Unmarshal parses a versioned envelope back into an Identity.
// Any payload that does not match the current envelope exactly yields
// ErrCorrupt so stale local state never blocks startup.
func Unmarshal(data []byte) (Identity, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if env.Version != envelopeVersion {
		return Identity{}, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, env.Version)
	}
	switch env.Kind {
	case KindManager:
		if env.Manager == nil {
			return Identity{}, fmt.Errorf("%w: manager payload missing", ErrCorrupt)
		}
		return Identity{kind: KindManager, manager: env.Manager}, nil
	case KindEmployee:
		if env.Employee == nil {
			return Identity{}, fmt.Errorf("%w: employee payload missing", ErrCorrupt)
		}
		return Identity{kind: KindEmployee, employee: env.Employee}, nil
	}
	return Identity{}, fmt.Errorf("%w: unknown kind %q", ErrCorrupt, env.Kind)
}
