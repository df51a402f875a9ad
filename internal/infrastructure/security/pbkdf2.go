package security

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"logistica_cotizaciones/internal/usecase/interfaces"

	"golang.org/x/crypto/pbkdf2"
)

const (
	defaultIterations = 100_000
	keyLength         = 64
	saltLength        = 16
)

var ErrMalformedHash = errors.New("malformed password hash")

// PBKDF2Hasher stores passwords as "<salt hex>:<key hex>" using
// PBKDF2-HMAC-SHA512, the format already present in the users table.
type PBKDF2Hasher struct {
	iterations int
}

var _ interfaces.IPasswordHasher = (*PBKDF2Hasher)(nil)

func NewPBKDF2Hasher() *PBKDF2Hasher {
	return &PBKDF2Hasher{iterations: defaultIterations}
}

func (h *PBKDF2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := pbkdf2.Key([]byte(password), salt, h.iterations, keyLength, sha512.New)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

func (h *PBKDF2Hasher) Verify(password, encoded string) (bool, error) {
	saltHex, keyHex, ok := strings.Cut(encoded, ":")
	if !ok || saltHex == "" || keyHex == "" {
		return false, ErrMalformedHash
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false, fmt.Errorf("%w: salt: %v", ErrMalformedHash, err)
	}
	want, err := hex.DecodeString(keyHex)
	if err != nil {
		return false, fmt.Errorf("%w: key: %v", ErrMalformedHash, err)
	}

	got := pbkdf2.Key([]byte(password), salt, h.iterations, len(want), sha512.New)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
