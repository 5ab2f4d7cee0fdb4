package security

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// CSRF tokens are "hex(salt).hex(HMAC-SHA256(secret, salt))". The salt
// makes every issued token distinct; validation recomputes the MAC and
// compares in constant time.

const csrfSaltLen = 16

func GenerateCSRFToken(secret string) (string, error) {
	salt := make([]byte, csrfSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(salt)
	return hex.EncodeToString(salt) + "." + hex.EncodeToString(mac.Sum(nil)), nil
}

func ValidateCSRFToken(secret, token string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return false
	}

	salt, err := hex.DecodeString(parts[0])
	if err != nil || len(salt) != csrfSaltLen {
		return false
	}
	sum, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(salt)
	return hmac.Equal(sum, mac.Sum(nil))
}
