package xor

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// GenKey will generate an XOR key with the given length.
func GenKey(length int) ([]byte, error) {
	if length <= 0 {
		return nil, errors.New("asked to generate a 0-length key")
	}
	buf := make([]byte, length)
	n, err := rand.Read(buf)
	if n < length {
		return nil, fmt.Errorf("failed to read requested bytes: %v", err)
	}
	return buf, nil
}

// GenKeyAndOffset will generate an XOR key with the given length, and a random offset within it.
func GenKeyAndOffset(length int) ([]byte, int, error) {
	key, err := GenKey(length)
	if err != nil {
		return nil, 0, err
	}
	buf := make([]byte, 4)
	_, err = rand.Read(buf)
	if err != nil {
		return nil, 0, err
	}
	return key, int(binary.BigEndian.Uint32(buf) % uint32(length)), nil
}

// DeriveKey expands a secret shared by both ends of a channel into an XOR key of the given length with HKDF-SHA256.
// The same secret, salt, and info always produce the same key.
// Salt and info may be nil.
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	if len(secret) == 0 {
		return nil, errors.New("cannot derive a key from an empty secret")
	}
	if length <= 0 {
		return nil, errors.New("asked to derive a 0-length key")
	}
	key := make([]byte, length)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, salt, info), key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}
