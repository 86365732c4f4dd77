// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package sessionerr defines typed errors with categories for the session
// subsystem. All failures from the credential store and the authentication
// gateway are normalized to one of these kinds before they reach command
// code; raw transport or storage errors never cross the session boundary.
package sessionerr

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// AuthFailed indicates the credential exchange was rejected or the
	// backend was unreachable. The two cases intentionally present the same.
	AuthFailed Kind = "auth_failed"
	// StorageRead indicates persisted credentials were present but unusable.
	StorageRead Kind = "storage_read"
	// StorageWrite indicates the credential store rejected a write during sign-in.
	StorageWrite Kind = "storage_write"
	// StorageClear indicates the credential store failed to clear during sign-out.
	StorageClear Kind = "storage_clear"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf extracts the category from an error produced by this package.
// Returns false for foreign errors.
func KindOf(err error) (Kind, bool) {
	var e *E
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
