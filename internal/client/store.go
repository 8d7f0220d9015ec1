package client

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// AuthState is the client's view of the session lifecycle. Persisted
// identity is never trusted on its own: restarts land in
// StateAuthenticatedUnverified until the backend confirms the session.
type AuthState string

const (
	// StateAnonymous means no identity is held
	StateAnonymous AuthState = "anonymous"
	// StateAuthenticatedUnverified means an identity is held but has
	// not been confirmed by the backend since it was loaded
	StateAuthenticatedUnverified AuthState = "authenticated-unverified"
	// StateAuthenticatedVerified means the backend confirmed the
	// session on the most recent round trip
	StateAuthenticatedVerified AuthState = "authenticated-verified"
)

// reverifyInterval is how often a held identity is re-confirmed
const reverifyInterval = 5 * time.Minute

// Verifier confirms a held session against the backend. *Client
// satisfies it.
type Verifier interface {
	Verify(ctx context.Context) (*Admin, error)
}

// storeFile is the persisted shape of the auth store
type storeFile struct {
	Identity        *Admin `json:"identity"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

// AuthStore caches session state across restarts. Transitions to
// StateAuthenticatedVerified happen only right after a successful
// verify round trip; ClearAuth is the only way back to anonymous.
type AuthStore struct {
	path     string
	verifier Verifier
	logger   *zap.Logger

	mu       sync.RWMutex
	state    AuthState
	identity *Admin

	watcher *fsnotify.Watcher
	stop    chan struct{}
	done    sync.WaitGroup
}

// NewAuthStore loads the persisted state from path. A held identity
// starts unverified; Start kicks off the confirming round trip.
func NewAuthStore(path string, verifier Verifier, logger *zap.Logger) (*AuthStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &AuthStore{
		path:     path,
		verifier: verifier,
		logger:   logger,
		state:    StateAnonymous,
		stop:     make(chan struct{}),
	}
	s.load()
	return s, nil
}

// load reads the persisted file and reports whether it changed the
// in-memory state. Our own persist writes load back unchanged, which
// keeps the file watcher from re-verifying its own echoes. A corrupt
// file drops the store to anonymous.
func (s *AuthStore) load() bool {
	var file storeFile
	data, err := os.ReadFile(s.path)
	if err == nil {
		if err := json.Unmarshal(data, &file); err != nil {
			s.logger.Warn("Discarding corrupt auth store file", zap.Error(err))
			file = storeFile{}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if file.IsAuthenticated && file.Identity != nil {
		if s.identity != nil && *s.identity == *file.Identity && s.state != StateAnonymous {
			return false
		}
		s.identity = file.Identity
		s.state = StateAuthenticatedUnverified
		return true
	}
	if s.state == StateAnonymous && s.identity == nil {
		return false
	}
	s.identity = nil
	s.state = StateAnonymous
	return true
}

// persist writes the current state to disk
func (s *AuthStore) persist() {
	s.mu.RLock()
	file := storeFile{
		Identity:        s.identity,
		IsAuthenticated: s.state != StateAnonymous,
	}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		s.logger.Error("Failed to encode auth store", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		s.logger.Error("Failed to persist auth store", zap.Error(err))
	}
}

// Start verifies any loaded identity, then begins the periodic
// re-verify ticker and the watch on the persisted file. Call Stop to
// release both.
func (s *AuthStore) Start(ctx context.Context) error {
	if s.IsAuthenticated() {
		s.reverify(ctx)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory: editors and other processes replace files
	// by rename, which drops a watch held on the file itself.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return err
	}
	s.watcher = watcher

	s.done.Add(2)
	go s.watchLoop()
	go s.tickLoop()
	return nil
}

// Stop terminates the background loops
func (s *AuthStore) Stop() {
	close(s.stop)
	if s.watcher != nil {
		s.watcher.Close()
	}
	s.done.Wait()
}

// watchLoop re-validates whenever another process touches the
// persisted file, e.g. a second instance logging out.
func (s *AuthStore) watchLoop() {
	defer s.done.Done()
	for {
		select {
		case <-s.stop:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(s.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
				continue
			}
			if s.load() && s.IsAuthenticated() {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				s.reverify(ctx)
				cancel()
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("Auth store watch error", zap.Error(err))
		}
	}
}

// tickLoop re-confirms the session on a fixed interval while
// authenticated
func (s *AuthStore) tickLoop() {
	defer s.done.Done()
	ticker := time.NewTicker(reverifyInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if !s.IsAuthenticated() {
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			s.reverify(ctx)
			cancel()
		}
	}
}

// reverify performs one confirming round trip. Any failure, network
// included, clears auth: a session that cannot be confirmed is not
// treated as valid.
func (s *AuthStore) reverify(ctx context.Context) {
	admin, err := s.verifier.Verify(ctx)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			s.logger.Info("Session verification rejected",
				zap.Int("status", apiErr.StatusCode))
		} else {
			s.logger.Warn("Session verification failed", zap.Error(err))
		}
		s.ClearAuth()
		return
	}
	s.SetIdentity(admin)
}

// SetIdentity records a backend-confirmed identity and persists it
func (s *AuthStore) SetIdentity(admin *Admin) {
	s.mu.Lock()
	s.identity = admin
	s.state = StateAuthenticatedVerified
	s.mu.Unlock()
	s.persist()
}

// ClearAuth drops the identity and returns to anonymous. It is the
// only transition back to the anonymous state.
func (s *AuthStore) ClearAuth() {
	s.mu.Lock()
	s.identity = nil
	s.state = StateAnonymous
	s.mu.Unlock()
	s.persist()
}

// State returns the current auth state
func (s *AuthStore) State() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Identity returns the held identity, nil when anonymous
func (s *AuthStore) Identity() *Admin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// IsAuthenticated reports whether any identity is held, verified or not
func (s *AuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state != StateAnonymous
}
