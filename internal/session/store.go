package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// tokenBytes gives 256 bits of entropy per token.
const tokenBytes = 32

// Store is an in-memory token to session mapping. Sessions live for the
// process lifetime; there is no expiry, only Destroy.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]Session)}
}

// Create issues a fresh random token for the given identity and role and
// records the session. The caller places the token in a response cookie.
func (s *Store) Create(identityHash []byte, account string, role Role) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	hash := make([]byte, len(identityHash))
	copy(hash, identityHash)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = Session{
		Token:        token,
		IdentityHash: hash,
		Account:      account,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	return token, nil
}

// Lookup returns the session for a token. Unknown or destroyed tokens
// return ok=false, never an error.
func (s *Store) Lookup(token string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[token]
	return sess, ok
}

// Destroy removes a session. Destroying an unknown token is a no-op.
func (s *Store) Destroy(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
