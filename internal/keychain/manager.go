// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe access to the OS
// credential store for the Copybus CLI. All secrets the CLI persists (the
// signed-in identity and its bearer token) go through this package; nothing
// else writes those keys.
//
// Storage is backed by the platform keyring (macOS Keychain, Windows
// Credential Manager, Secret Service / pass on Linux). A process-memory
// backend is available for tests and headless environments.
package keychain

import (
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

// Global keychain manager instance
var (
	globalManager *Manager
	globalError   error
	mu            sync.Mutex
)

// Manager provides centralized, thread-safe operations on the OS keychain.
type Manager struct {
	mu      sync.RWMutex
	ring    keyring.Keyring
	backend Backend
}

// Backend is the minimal key-value contract the manager needs. The keyring
// library satisfies it in production; tests supply the memory backend.
type Backend interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// ServiceName namespaces our entries in the OS credential store.
const ServiceName = "copybus"

// Keys used for storing secrets in the OS keychain.
const (
	KeyIdentity = "session_identity"
	KeyToken    = "session_token"
)

// ErrNotFound reports an absent key. Absence is a normal outcome for this
// package's callers, not a failure.
var ErrNotFound = errors.New("keychain: not found")

// NewManager creates a keychain manager over the OS keyring.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// NewManagerWithBackend creates a manager over an explicit backend.
// Used by tests and by callers that cannot reach a real keyring.
func NewManagerWithBackend(b Backend) *Manager {
	return &Manager{backend: b}
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	globalManager, globalError = NewManager()
	if globalError != nil {
		globalManager = nil
		return nil, globalError
	}
	return globalManager, nil
}

// openRing opens the OS keyring using native platform backends.
func openRing() (keyring.Keyring, error) {
	var allowedBackends []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		allowedBackends = []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.PassBackend,
		}
	case "windows":
		allowedBackends = []keyring.BackendType{keyring.WinCredBackend}
	default:
		allowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.PassBackend,
		}
	}

	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowedBackends,
		PassPrefix:      ServiceName,
	}
	if runtime.GOOS == "windows" {
		cfg.WinCredPrefix = ServiceName
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, errors.New("secure credential storage unavailable on this system")
	}
	return ring, nil
}

// Set stores a value under key. This method is thread-safe.
func (m *Manager) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		return m.backend.Set(key, value)
	}
	return m.ring.Set(keyring.Item{Key: key, Data: []byte(value)})
}

// Get retrieves a value by key. Returns ErrNotFound when the key is absent.
// This method is thread-safe.
func (m *Manager) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.backend != nil {
		v, err := m.backend.Get(key)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return "", ErrNotFound
			}
			return "", err
		}
		return v, nil
	}

	it, err := m.ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return string(it.Data), nil
}

// Delete removes a key. Deleting an absent key is not an error.
// This method is thread-safe.
func (m *Manager) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		if err := m.backend.Delete(key); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		return nil
	}
	if err := m.ring.Remove(key); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}
