// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"copybus/cli/internal/fleet"
	"copybus/cli/internal/identity"
)

// ListCompanies calls GET /companies with the Authorization header.
func (h *HTTP) ListCompanies(ctx context.Context) ([]fleet.Company, error) {
	var out []fleet.Company
	if err := h.getAuthorized(ctx, "/companies", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListVehicles calls GET /vehicles with the Authorization header.
func (h *HTTP) ListVehicles(ctx context.Context) ([]fleet.Vehicle, error) {
	var out []fleet.Vehicle
	if err := h.getAuthorized(ctx, "/vehicles", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListDrivers calls GET /drivers with the Authorization header.
func (h *HTTP) ListDrivers(ctx context.Context) ([]fleet.Driver, error) {
	var out []fleet.Driver
	if err := h.getAuthorized(ctx, "/drivers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListFleets calls GET /fleets with the Authorization header.
func (h *HTTP) ListFleets(ctx context.Context) ([]fleet.Fleet, error) {
	var out []fleet.Fleet
	if err := h.getAuthorized(ctx, "/fleets", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListEmployees calls GET /users with the Authorization header.
func (h *HTTP) ListEmployees(ctx context.Context) ([]identity.Employee, error) {
	var out []identity.Employee
	if err := h.getAuthorized(ctx, "/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListManagers calls GET /managers with the Authorization header.
func (h *HTTP) ListManagers(ctx context.Context) ([]identity.Manager, error) {
	var out []identity.Manager
	if err := h.getAuthorized(ctx, "/managers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// getAuthorized issues an authenticated GET and decodes the JSON response.
// A 401 yields ErrUnauthorized so the caller can drop the stale session.
func (h *HTTP) getAuthorized(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+path, nil)
	if err != nil {
		return err
	}
	h.setStandardHeaders(req)
	if err := h.authorize(ctx, req); err != nil {
		return err
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s failed: %d %s", strings.TrimPrefix(path, "/"), resp.StatusCode, strings.TrimSpace(string(b)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
