package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// ModelHash identifies a math model by the content of its paytable.
// It is the first 16 hex characters of the full SHA-256 digest, the form
// certification documents embed.
type ModelHash Hash

const modelHashLen = 16

// NewModelHash creates a model hash from canonical paytable bytes
func NewModelHash(data []byte) ModelHash {
	full := NewHash(data)
	return ModelHash(full[:modelHashLen])
}

// String returns the string representation
func (h ModelHash) String() string { return string(h) }

// IsEmpty checks if the hash is empty
func (h ModelHash) IsEmpty() bool { return h == "" }

// Equals checks if two model hashes are equal
func (h ModelHash) Equals(other ModelHash) bool { return h == other }
