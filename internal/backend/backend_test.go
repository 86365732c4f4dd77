// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// staticToken is a TokenSource with a fixed value.
type staticToken string

func (s staticToken) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

func TestLoginManagerSuccess(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/manager/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"abc","manager":{"ges_codigo":7,"ges_nome":"Ana Souza","ges_email":"ana@frota.com","ges_status":true}}`))
	}))
	defer srv.Close()

	api := New(srv.URL, staticToken(""), "copybus-cli/test")
	mgr, token, err := api.LoginManager(context.Background(), "ana@frota.com", "pw")
	if err != nil {
		t.Fatalf("LoginManager() error = %v", err)
	}
	if token != "abc" {
		t.Errorf("token = %q, want %q", token, "abc")
	}
	if mgr.ID != 7 || mgr.Name != "Ana Souza" || !mgr.Active {
		t.Errorf("manager = %+v", mgr)
	}
	if gotBody["ges_email"] != "ana@frota.com" || gotBody["ges_senha"] != "pw" {
		t.Errorf("request body = %v", gotBody)
	}
}

func TestLoginEmployeeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/user/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["usu_email"] != "c@d.com" || body["usu_senha"] != "pw" {
			t.Errorf("request body = %v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"xyz","user":{"usu_codigo":3,"usu_nome":"Carlos Lima","usu_email":"c@d.com","emp_codigo":9}}`))
	}))
	defer srv.Close()

	api := New(srv.URL, staticToken(""), "copybus-cli/test")
	emp, token, err := api.LoginEmployee(context.Background(), "c@d.com", "pw")
	if err != nil {
		t.Fatalf("LoginEmployee() error = %v", err)
	}
	if token != "xyz" {
		t.Errorf("token = %q, want %q", token, "xyz")
	}
	if emp.ID != 3 || emp.CompanyID != 9 {
		t.Errorf("employee = %+v", emp)
	}
}

func TestLoginFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "invalid credentials",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
		{
			name: "missing token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"manager":{"ges_codigo":1}}`))
			},
		},
		{
			name: "missing principal",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"token":"abc"}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			api := New(srv.URL, staticToken(""), "copybus-cli/test")
			if _, _, err := api.LoginManager(context.Background(), "a@b.com", "pw"); err == nil {
				t.Error("LoginManager() succeeded, want error")
			}
		})
	}
}

func TestLoginUnreachableBackend(t *testing.T) {
	// A closed server: the client gets a transport error, not a status.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	api := New(srv.URL, staticToken(""), "copybus-cli/test")
	if _, _, err := api.LoginManager(context.Background(), "a@b.com", "pw"); err == nil {
		t.Error("LoginManager() succeeded against a closed server")
	}
}

func TestListingsAttachBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer abc" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer abc")
		}
		if got := r.Header.Get("User-Agent"); got != "copybus-cli/test" {
			t.Errorf("User-Agent = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/vehicles":
			w.Write([]byte(`[{"vei_codigo":1,"vei_modelo":"Marcopolo","vei_placa":"ABC1D23","vei_ano":2020,"vei_status":"ativo","vei_odometro":120000}]`))
		case "/companies":
			w.Write([]byte(`[{"emp_codigo":9,"emp_nome":"Frota Azul","emp_cnpj":"00.000.000/0001-00"}]`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
			w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	api := New(srv.URL, staticToken("abc"), "copybus-cli/test")

	vehicles, err := api.ListVehicles(context.Background())
	if err != nil {
		t.Fatalf("ListVehicles() error = %v", err)
	}
	if len(vehicles) != 1 || vehicles[0].Model != "Marcopolo" || vehicles[0].Odometer != 120000 {
		t.Errorf("vehicles = %+v", vehicles)
	}

	companies, err := api.ListCompanies(context.Background())
	if err != nil {
		t.Fatalf("ListCompanies() error = %v", err)
	}
	if len(companies) != 1 || companies[0].ID != 9 {
		t.Errorf("companies = %+v", companies)
	}
}

func TestListingRejectedTokenIsUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	api := New(srv.URL, staticToken("stale"), "copybus-cli/test")
	if _, err := api.ListFleets(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("ListFleets() error = %v, want ErrUnauthorized", err)
	}
}

func TestListingWithoutTokenSendsNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("Authorization = %q, want empty", got)
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	api := New(srv.URL, staticToken(""), "copybus-cli/test")
	if _, err := api.ListDrivers(context.Background()); err != nil {
		t.Fatalf("ListDrivers() error = %v", err)
	}
}
