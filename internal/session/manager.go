// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session owns the CLI's authentication state. It restores a
// previously persisted sign-in at startup, performs the credential exchange
// for both principal kinds, and keeps the in-memory session consistent with
// the credential store: persist first, then publish, for sign-in; clear
// first, then publish, for sign-out.
//
// The manager is an explicitly constructed instance handed to whoever
// composes the command tree. Consumers read it through Snapshot or subscribe
// to transitions; there is no ambient global to reach for, so tests can hand
// the same consumers a manager built over fakes.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"copybus/cli/internal/identity"
	"copybus/cli/internal/logging"
	"copybus/cli/internal/sessionerr"
)

var verboseSession = os.Getenv("COPYBUS_VERBOSE") == "1"

// Gateway exchanges user-supplied credentials for a principal and a bearer
// token. There is one remote endpoint per principal kind; implementations
// must collapse every failure mode into a single generic error so callers
// cannot tell a rejected password from an unreachable backend.
type Gateway interface {
	LoginManager(ctx context.Context, email, secret string) (identity.Manager, string, error)
	LoginEmployee(ctx context.Context, email, secret string) (identity.Employee, string, error)
}

// Snapshot is a read-only view of the session state. Restoring is true only
// until the one-time startup restore has resolved; Identity is nil when
// signed out.
type Snapshot struct {
	Restoring bool
	Identity  *identity.Identity
}

// ErrAlreadySignedIn reports a sign-in attempted while a session is active.
// A signed-in session cannot re-authenticate as a different principal
// without an explicit sign-out first.
var ErrAlreadySignedIn = errors.New("session: already signed in")

// Manager is the process-wide session state machine. It starts in the
// restoring state and settles into authenticated or unauthenticated after
// the one-time Restore; sign-in and sign-out move between the latter two.
type Manager struct {
	store Store
	gw    Gateway

	// gate serializes sign-in, sign-out, and invalidate so a racing pair
	// cannot interleave the persist and publish halves of a transition.
	gate sync.Mutex

	restoreOnce sync.Once

	mu        sync.RWMutex
	restoring bool
	identity  *identity.Identity
	subs      map[int]chan Snapshot
	nextSub   int
}

// New creates a session manager over the given store and gateway.
// The manager starts restoring; call Restore before routing anything.
func New(store Store, gw Gateway) *Manager {
	return &Manager{
		store:     store,
		gw:        gw,
		restoring: true,
		subs:      map[int]chan Snapshot{},
	}
}

// Restore adopts a previously persisted credential, once per process. A
// stored credential is taken verbatim with no network call; its token may
// turn out stale on the first authenticated request. Any load failure,
// including corrupt stored data, silently resolves to signed out. Restore
// always leaves the restoring state, so the first routing decision made
// after it never observes a default-unauthenticated flash.
func (m *Manager) Restore(ctx context.Context) {
	m.restoreOnce.Do(func() {
		cred, ok, err := m.store.Load(ctx)
		if err != nil && verboseSession {
			fmt.Fprintln(os.Stderr, logging.PresentError("session restore", err))
		}

		m.mu.Lock()
		if ok {
			id := cred.Identity
			m.identity = &id
		}
		m.restoring = false
		m.mu.Unlock()
		m.publish()
	})
}

// SignInManager authenticates against the manager login endpoint.
func (m *Manager) SignInManager(ctx context.Context, email, secret string) error {
	return m.signIn(ctx, email, secret, func(ctx context.Context, email, secret string) (identity.Identity, string, error) {
		principal, token, err := m.gw.LoginManager(ctx, email, secret)
		if err != nil {
			return identity.Identity{}, "", err
		}
		return identity.NewManager(principal), token, nil
	})
}

// SignInEmployee authenticates against the employee login endpoint.
func (m *Manager) SignInEmployee(ctx context.Context, email, secret string) error {
	return m.signIn(ctx, email, secret, func(ctx context.Context, email, secret string) (identity.Identity, string, error) {
		principal, token, err := m.gw.LoginEmployee(ctx, email, secret)
		if err != nil {
			return identity.Identity{}, "", err
		}
		return identity.NewEmployee(principal), token, nil
	})
}

// signIn runs the exchange-persist-publish sequence shared by both kinds.
// Persistence happens only after a successful exchange, and the in-memory
// session is published only after a successful persist, so a failure at any
// step leaves both the store and the session untouched.
func (m *Manager) signIn(ctx context.Context, email, secret string, exchange func(context.Context, string, string) (identity.Identity, string, error)) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(secret) == "" {
		return sessionerr.New(sessionerr.AuthFailed, "email and password must not be empty")
	}

	m.gate.Lock()
	defer m.gate.Unlock()

	if m.Snapshot().Identity != nil {
		return ErrAlreadySignedIn
	}

	id, token, err := exchange(ctx, email, secret)
	if err != nil {
		// Network failure and credential rejection present identically.
		return sessionerr.Wrap(sessionerr.AuthFailed, "invalid credentials", err)
	}

	if err := m.store.Save(ctx, Credential{Identity: id, Token: token}); err != nil {
		if kind, ok := sessionerr.KindOf(err); ok && kind == sessionerr.StorageWrite {
			return err
		}
		return sessionerr.Wrap(sessionerr.StorageWrite, "persist credentials", err)
	}

	m.mu.Lock()
	m.identity = &id
	m.mu.Unlock()
	m.publish()
	return nil
}

// SignOut clears the persisted credential and the in-memory session. It
// cannot fail from the caller's perspective: a store-clear failure is
// logged and the session is cleared regardless, since keeping a user locked
// in would be worse than leaking a dead local cache entry.
func (m *Manager) SignOut(ctx context.Context) {
	m.gate.Lock()
	defer m.gate.Unlock()
	m.clear(ctx, "sign out")
}

// Invalidate drops the session after the backend rejected its token.
// Behaves exactly like SignOut; the next routing decision lands on the
// sign-in graph.
func (m *Manager) Invalidate(ctx context.Context) {
	m.gate.Lock()
	defer m.gate.Unlock()
	m.clear(ctx, "invalidate session")
}

func (m *Manager) clear(ctx context.Context, what string) {
	if err := m.store.Clear(ctx); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError(what, err))
	}
	m.mu.Lock()
	m.identity = nil
	m.mu.Unlock()
	m.publish()
}

// Snapshot returns the current session state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap := Snapshot{Restoring: m.restoring}
	if m.identity != nil {
		id := *m.identity
		snap.Identity = &id
	}
	return snap
}

// Subscribe registers for snapshot notifications on every published
// transition. The returned cancel func unregisters and closes the channel.
// Slow receivers miss intermediate snapshots rather than blocking the
// manager; Snapshot always has the latest state.
func (m *Manager) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = ch
	m.mu.Unlock()

	cancel := func() {
		m.mu.Lock()
		if _, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(ch)
		}
		m.mu.Unlock()
	}
	return ch, cancel
}

func (m *Manager) publish() {
	snap := m.Snapshot()
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, ch := range m.subs {
		select {
		case ch <- snap:
		default:
			// Drop the stale snapshot and replace it with the fresh one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
