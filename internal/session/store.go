// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"context"
	"errors"
	"sync"

	"copybus/cli/internal/identity"
	"copybus/cli/internal/keychain"
	"copybus/cli/internal/sessionerr"
)

// Credential is the durable pair: the signed-in identity and the opaque
// bearer token it authenticates with. The two are written and cleared
// together; a load never yields one half without the other.
type Credential struct {
	Identity identity.Identity
	Token    string
}

// Store persists exactly one Credential across process restarts.
// Implementations must make Clear idempotent and must degrade unreadable
// stored data to "absent" rather than failing the load.
type Store interface {
	Save(ctx context.Context, cred Credential) error
	Load(ctx context.Context) (Credential, bool, error)
	Clear(ctx context.Context) error
	// Token returns the stored bearer token, or "" when signed out. The
	// HTTP client pulls it when attaching the Authorization header.
	Token(ctx context.Context) (string, error)
}

// KeychainStore keeps the credential in the OS keychain under the
// copybus service namespace.
type KeychainStore struct {
	km *keychain.Manager
}

// NewKeychainStore wraps a keychain manager as a credential store.
func NewKeychainStore(km *keychain.Manager) *KeychainStore {
	return &KeychainStore{km: km}
}

// Save writes both halves of the credential, overwriting any prior value.
func (s *KeychainStore) Save(ctx context.Context, cred Credential) error {
	data, err := identity.Marshal(cred.Identity)
	if err != nil {
		return sessionerr.Wrap(sessionerr.StorageWrite, "serialize identity", err)
	}
	if err := s.km.Set(keychain.KeyIdentity, string(data)); err != nil {
		return sessionerr.Wrap(sessionerr.StorageWrite, "persist identity", err)
	}
	if err := s.km.Set(keychain.KeyToken, cred.Token); err != nil {
		// Keep the pairing invariant: a failed token write must not leave
		// a stored identity behind.
		_ = s.km.Delete(keychain.KeyIdentity)
		return sessionerr.Wrap(sessionerr.StorageWrite, "persist token", err)
	}
	return nil
}

// Load reads the stored credential. Absence of either half, or an identity
// payload that no longer parses, yields (zero, false, nil); startup must
// never be blocked by stale local state. Parse failures are reported through
// the returned error's storage read kind purely for logging, alongside ok=false.
func (s *KeychainStore) Load(ctx context.Context) (Credential, bool, error) {
	rawIdentity, err := s.km.Get(keychain.KeyIdentity)
	if err != nil {
		if errors.Is(err, keychain.ErrNotFound) {
			return Credential{}, false, nil
		}
		return Credential{}, false, sessionerr.Wrap(sessionerr.StorageRead, "read identity", err)
	}
	token, err := s.km.Get(keychain.KeyToken)
	if err != nil {
		if errors.Is(err, keychain.ErrNotFound) {
			return Credential{}, false, nil
		}
		return Credential{}, false, sessionerr.Wrap(sessionerr.StorageRead, "read token", err)
	}
	if token == "" {
		return Credential{}, false, nil
	}
	id, err := identity.Unmarshal([]byte(rawIdentity))
	if err != nil {
		// Corrupt identity payload degrades to absent.
		return Credential{}, false, sessionerr.Wrap(sessionerr.StorageRead, "parse identity", err)
	}
	return Credential{Identity: id, Token: token}, true, nil
}

// Clear removes both halves. Clearing an already-empty store succeeds.
func (s *KeychainStore) Clear(ctx context.Context) error {
	if err := s.km.Delete(keychain.KeyToken); err != nil {
		return sessionerr.Wrap(sessionerr.StorageClear, "clear token", err)
	}
	if err := s.km.Delete(keychain.KeyIdentity); err != nil {
		return sessionerr.Wrap(sessionerr.StorageClear, "clear identity", err)
	}
	return nil
}

// Token returns the stored bearer token, or "" when none is stored.
func (s *KeychainStore) Token(ctx context.Context) (string, error) {
	token, err := s.km.Get(keychain.KeyToken)
	if err != nil {
		if errors.Is(err, keychain.ErrNotFound) {
			return "", nil
		}
		return "", sessionerr.Wrap(sessionerr.StorageRead, "read token", err)
	}
	return token, nil
}

// MemoryStore is an in-process Store for tests and fakes. It is safe for
// concurrent use.
type MemoryStore struct {
	mu   sync.Mutex
	cred *Credential
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(ctx context.Context, cred Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := cred
	s.cred = &c
	return nil
}

func (s *MemoryStore) Load(ctx context.Context) (Credential, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred == nil {
		return Credential{}, false, nil
	}
	return *s.cred, true, nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = nil
	return nil
}

func (s *MemoryStore) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred == nil {
		return "", nil
	}
	return s.cred.Token, nil
}
