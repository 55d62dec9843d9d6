// Package password derives and verifies salted PBKDF2 password hashes.
//
// Hashes and salts are hex strings. The salt string itself (not its decoded
// bytes) is the KDF salt, which keeps stored credentials portable across
// implementations that treat the salt as text.
package password

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/reelhub/media-api/internal/core/domain"
)

const (
	DefaultIterations = 1000
	DefaultKeyLength  = 64
	SaltLength        = 16
)

// Hasher implements ports.PasswordHasher with PBKDF2-HMAC-SHA512.
type Hasher struct {
	iterations int
	keyLength  int
	random     io.Reader
}

// Option customises a Hasher.
type Option func(*Hasher)

// WithIterations overrides the PBKDF2 iteration count.
func WithIterations(n int) Option {
	return func(h *Hasher) {
		if n > 0 {
			h.iterations = n
		}
	}
}

// WithRandom swaps the salt entropy source. Intended for tests.
func WithRandom(r io.Reader) Option {
	return func(h *Hasher) {
		if r != nil {
			h.random = r
		}
	}
}

func NewHasher(opts ...Option) *Hasher {
	h := &Hasher{
		iterations: DefaultIterations,
		keyLength:  DefaultKeyLength,
		random:     rand.Reader,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Derive returns the hex-encoded PBKDF2 key for password under salt.
func (h *Hasher) Derive(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), h.iterations, h.keyLength, sha512.New)
	return hex.EncodeToString(key)
}

// GenerateSalt returns SaltLength random bytes, hex-encoded.
func (h *Hasher) GenerateSalt() (string, error) {
	buf := make([]byte, SaltLength)
	if _, err := io.ReadFull(h.random, buf); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// SetPassword replaces the user's salt and hash as a pair. On error the user
// is left untouched.
func (h *Hasher) SetPassword(user *domain.User, password string) error {
	salt, err := h.GenerateSalt()
	if err != nil {
		return err
	}
	user.Salt, user.PasswordHash = salt, h.Derive(password, salt)
	return nil
}

// Verify reports whether candidate matches the user's stored hash.
func (h *Hasher) Verify(user *domain.User, candidate string) bool {
	if user == nil || user.Salt == "" || user.PasswordHash == "" {
		return false
	}
	computed := h.Derive(candidate, user.Salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(user.PasswordHash)) == 1
}
