package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry tracks live sessions keyed by the client cookie.
type Registry struct {
	mu           sync.RWMutex
	sessions     map[string]*Session
	splashDelay  time.Duration
	searchWindow time.Duration
}

func NewRegistry() *Registry {
	return &Registry{
		sessions:     make(map[string]*Session),
		splashDelay:  SplashDuration,
		searchWindow: SearchDebounce,
	}
}

// NewRegistryWithTimers shrinks the session timers, for tests.
func NewRegistryWithTimers(splashDelay, searchWindow time.Duration) *Registry {
	r := NewRegistry()
	r.splashDelay = splashDelay
	r.searchWindow = searchWindow
	return r
}

// Get returns the session for the given key, or nil.
func (r *Registry) Get(key string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[key]
}

// Create starts a fresh session and returns it with its key.
func (r *Registry) Create() (string, *Session) {
	key := uuid.NewString()
	s := New(key, r.splashDelay, r.searchWindow)

	r.mu.Lock()
	r.sessions[key] = s
	r.mu.Unlock()
	return key, s
}

// GetOrCreate resolves an existing session or starts one when the key
// is unknown or empty.
func (r *Registry) GetOrCreate(key string) (string, *Session) {
	if key != "" {
		if s := r.Get(key); s != nil {
			return key, s
		}
	}
	return r.Create()
}

// Drop closes and removes a session. Unknown keys are ignored.
func (r *Registry) Drop(key string) {
	r.mu.Lock()
	s := r.sessions[key]
	delete(r.sessions, key)
	r.mu.Unlock()

	if s != nil {
		s.Close()
	}
}
