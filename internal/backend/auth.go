// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"copybus/cli/internal/identity"
)

// LoginManager posts the manager credentials to /auth/manager/login.
// On success the body is { "token": ..., "manager": {...} }.
func (h *HTTP) LoginManager(ctx context.Context, email, secret string) (identity.Manager, string, error) {
	body := map[string]string{
		"ges_email": email,
		"ges_senha": secret,
	}
	var out struct {
		Token   string            `json:"token"`
		Manager *identity.Manager `json:"manager"`
	}
	if err := h.postLogin(ctx, "/auth/manager/login", body, &out); err != nil {
		return identity.Manager{}, "", err
	}
	if out.Token == "" || out.Manager == nil {
		return identity.Manager{}, "", errors.New("malformed login response")
	}
	return *out.Manager, out.Token, nil
}

// LoginEmployee posts the employee credentials to /auth/user/login.
// On success the body is { "token": ..., "user": {...} }.
func (h *HTTP) LoginEmployee(ctx context.Context, email, secret string) (identity.Employee, string, error) {
	body := map[string]string{
		"usu_email": email,
		"usu_senha": secret,
	}
	var out struct {
		Token string             `json:"token"`
		User  *identity.Employee `json:"user"`
	}
	if err := h.postLogin(ctx, "/auth/user/login", body, &out); err != nil {
		return identity.Employee{}, "", err
	}
	if out.Token == "" || out.User == nil {
		return identity.Employee{}, "", errors.New("malformed login response")
	}
	return *out.User, out.Token, nil
}

// postLogin sends a credential-exchange request and decodes the response.
// Error details are carried only for masked logging; the session layer
// collapses them all into one generic failure before they reach the user.
func (h *HTTP) postLogin(ctx context.Context, path string, body map[string]string, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	h.setStandardHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		if resp.StatusCode == http.StatusUnauthorized {
			return errors.New("credentials rejected")
		}
		rb, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("login failed: %d %s", resp.StatusCode, strings.TrimSpace(string(rb)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
