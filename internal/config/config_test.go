package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("COPYBUS_API_URL", "")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.APIBaseURL != DefaultAPIBaseURL {
		t.Errorf("APIBaseURL = %q, want %q", c.APIBaseURL, DefaultAPIBaseURL)
	}
	if c.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", c.LogLevel, "info")
	}
	if c.InstallID == "" {
		t.Error("InstallID not generated on first load")
	}

	// The generated install id must be stable across loads.
	again, err := Load()
	if err != nil {
		t.Fatalf("second Load() error = %v", err)
	}
	if again.InstallID != c.InstallID {
		t.Errorf("InstallID changed across loads: %q then %q", c.InstallID, again.InstallID)
	}
}

func TestLoadEnvOverridesBaseURL(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("COPYBUS_API_URL", "https://fleet.example.com/api")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.APIBaseURL != "https://fleet.example.com/api" {
		t.Errorf("APIBaseURL = %q, want env override", c.APIBaseURL)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("COPYBUS_API_URL", "")

	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	c.APIBaseURL = "http://10.0.0.5:3000/api"
	if err := Save(c); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() error = %v", err)
	}
	if got.APIBaseURL != "http://10.0.0.5:3000/api" {
		t.Errorf("APIBaseURL = %q, want saved value", got.APIBaseURL)
	}
}
