// Package id generates identifiers for catalog entities and loans.
package id

import (
	"fmt"
	"strconv"
	"sync/atomic"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Generate creates a prefixed unique ID using NanoID
// Format: prefix-nanoid (e.g., "book-V1StGXR8_Z5jdHi6B-myT")
//
// NanoIDs are URL-friendly, compact (21 characters vs UUID's 36),
// and use a larger alphabet for better entropy per character.
//
// Returns an error if the system has insufficient entropy for secure random generation.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// MustGenerate is like Generate but panics if ID generation fails.
// Use this only when you're certain the system entropy is available,
// or when failure should crash the program (e.g., during initialization).
func MustGenerate(prefix string) string {
	id, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}

// Sequence issues strictly increasing prefixed ids ("L1", "L2", ...).
// Loan ids use it instead of deriving the next id from map size, which
// collides under concurrent insertion and drifts if entries are deleted.
type Sequence struct {
	prefix string
	last   atomic.Int64
}

// NewSequence creates a sequence with the given prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// Next returns the next id in the sequence. Safe for concurrent use.
func (s *Sequence) Next() string {
	return s.prefix + strconv.FormatInt(s.last.Add(1), 10)
}
