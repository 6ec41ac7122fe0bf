package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidSignature = errors.New("invalid cookie signature")

// Sign appends an HMAC-SHA256 signature to a cookie value so tampered
// cookies are rejected before any Redis lookup happens.
func Sign(value, key string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(value))
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	return value + "." + sig
}

// Verify checks the signature produced by Sign and returns the original value.
func Verify(signed, key string) (string, error) {
	idx := strings.LastIndex(signed, ".")
	if idx < 0 {
		return "", ErrInvalidSignature
	}
	value, sig := signed[:idx], signed[idx+1:]

	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(value))
	expected := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", ErrInvalidSignature
	}
	return value, nil
}
