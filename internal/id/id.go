// Package id generates prefixed unique identifiers for gallery records.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Record prefixes used across the gallery data set.
const (
	ImagePrefix = "img"
	GroupPrefix = "grp"
)

// Generate creates a prefixed unique ID using NanoID.
// Format: prefix-nanoid (e.g., "img-V1StGXR8_Z5jdHi6B-myT").
//
// NanoIDs are URL-friendly and compact (21 characters), which keeps the
// persisted JSON readable.
//
// Returns an error if the system has insufficient entropy.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// MustGenerate is like Generate but panics on failure. Use when entropy
// exhaustion should crash the batch rather than produce a record without
// an identity.
func MustGenerate(prefix string) string {
	id, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}
