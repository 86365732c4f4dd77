// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides interfaces and implementations for communicating
// with the remote fleet API. It covers the two credential-exchange endpoints
// (one per principal kind; there is no unified login) and the authenticated
// domain listings, attaching the bearer token pulled from the credential
// store on every authenticated request.
package backend

import (
	"context"
	"errors"

	"copybus/cli/internal/fleet"
	"copybus/cli/internal/identity"
)

// ErrUnauthorized reports that the backend rejected the presented bearer
// token on an authenticated call. Callers drop the session and re-route to
// sign-in when they see it.
var ErrUnauthorized = errors.New("backend: unauthorized")

// TokenSource exposes the current bearer token, read-only and pull-based.
// The credential store satisfies it; an empty string means signed out.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// API defines the fleet API operations the CLI depends on.
// Implementations may call the real HTTP endpoints or provide mocks for tests.
type API interface {
	// LoginManager exchanges manager credentials for a principal and a raw
	// bearer token. The token is returned exactly as received, undecoded.
	LoginManager(ctx context.Context, email, secret string) (identity.Manager, string, error)
	// LoginEmployee exchanges employee credentials for a principal and a raw
	// bearer token.
	LoginEmployee(ctx context.Context, email, secret string) (identity.Employee, string, error)

	ListCompanies(ctx context.Context) ([]fleet.Company, error)
	ListVehicles(ctx context.Context) ([]fleet.Vehicle, error)
	ListDrivers(ctx context.Context) ([]fleet.Driver, error)
	ListFleets(ctx context.Context) ([]fleet.Fleet, error)
	ListEmployees(ctx context.Context) ([]identity.Employee, error)
	ListManagers(ctx context.Context) ([]identity.Manager, error)
}
