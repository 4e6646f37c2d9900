package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"io"
	"strings"

	"github.com/mango-services/loyalty-auth/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// PasswordIterations is the PBKDF2-SHA256 work factor.
	PasswordIterations = 100_000
	// PasswordKeyLength is the derived key size in bytes.
	PasswordKeyLength = 32
	// SaltSize is the number of random bytes in a salt (128 bits).
	SaltSize = 16

	hashSeparator = "."
)

// GenerateSalt reads SaltSize bytes from r and returns them base64-encoded.
// The encoded string, not the raw bytes, is the KDF salt input.
func GenerateSalt(r io.Reader) (string, error) {
	return common.MakeRandBase64String(r, SaltSize)
}

// HashPassword derives the stored credential for password:
// base64(PBKDF2-SHA256(password, salt, 100000, 32)) + "." + salt.
func HashPassword(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), PasswordIterations, PasswordKeyLength, sha256.New)
	return base64.StdEncoding.EncodeToString(key) + hashSeparator + salt
}

// VerifyPassword reports whether password matches storedHash under storedSalt.
// It fails closed on empty inputs or a stored hash that is not exactly two
// dot-separated parts.
func VerifyPassword(password, storedHash, storedSalt string) bool {
	if storedHash == "" || storedSalt == "" {
		return false
	}
	if len(strings.Split(storedHash, hashSeparator)) != 2 {
		return false
	}
	candidate := HashPassword(password, storedSalt)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(storedHash)) == 1
}
