package google

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"prepai/internal/errors"
)

// stateStore keeps issued OAuth state values until they are consumed or expire.
type stateStore struct {
	mu     sync.Mutex
	states map[string]time.Time
	ttl    time.Duration
	now    func() time.Time
}

func newStateStore(ttl time.Duration) *stateStore {
	return &stateStore{
		states: make(map[string]time.Time),
		ttl:    ttl,
		now:    time.Now,
	}
}

// issue generates a cryptographically secure random state and stores it with its expiry.
func (s *stateStore) issue() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", errors.Wrap(err, "failed to generate oauth state")
	}
	state := hex.EncodeToString(bytes)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cleanupExpired()
	s.states[state] = s.now().Add(s.ttl)

	return state, nil
}

// consume reports whether state was issued and is unexpired. A state is accepted at most once.
func (s *stateStore) consume(state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, exists := s.states[state]
	if !exists {
		return false
	}
	delete(s.states, state)

	return !s.now().After(expiry)
}

// cleanupExpired removes expired states. The caller holds mu.
func (s *stateStore) cleanupExpired() {
	now := s.now()
	for state, expiry := range s.states {
		if now.After(expiry) {
			delete(s.states, state)
		}
	}
}
