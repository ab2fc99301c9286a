package domain

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	credentialIterations = 100_000
	credentialSaltBytes  = 16
	credentialSep        = ":"
)

// IsHashedCredential reports whether a stored credential is in hashed form.
// Hashed values carry the salt separator; anything else is legacy plaintext.
func IsHashedCredential(stored string) bool {
	return strings.Contains(stored, credentialSep)
}

// HashCredential derives a PBKDF2-HMAC-SHA256 key from plain with a fresh
// random salt and serialises it as "salthex:keyhex". The hex-encoded salt
// string itself feeds the KDF, so stored values remain comparable across
// processes without carrying raw salt bytes.
func HashCredential(plain string) (string, error) {
	salt := make([]byte, credentialSaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating credential salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)
	key := pbkdf2.Key([]byte(plain), []byte(saltHex), credentialIterations, sha256.Size, sha256.New)
	return saltHex + credentialSep + hex.EncodeToString(key), nil
}

// VerifyCredential checks supplied against a stored credential. Hashed values
// are recomputed with the stored salt and compared in constant time; values
// without a separator fall back to exact string comparison.
func VerifyCredential(supplied, stored string) bool {
	salt, keyHex, ok := strings.Cut(stored, credentialSep)
	if !ok {
		return supplied == stored
	}
	want, err := hex.DecodeString(keyHex)
	if err != nil {
		return false
	}
	got := pbkdf2.Key([]byte(supplied), []byte(salt), credentialIterations, sha256.Size, sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}
