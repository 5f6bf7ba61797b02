// Package id generates prefixed unique identifiers for catalog records.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Generate returns a new id of the form "<prefix>-<nanoid>", e.g.
// "bm-V1StGXR8_Z5jdHi6B-myT". Prefixes in use: "bm" for bookmarks,
// "fld" for folders, "sse" for stream clients. The seed fixture uses
// fixed "bm-seed-*" ids instead, which sort alongside generated ones.
//
// Fails only when the system cannot supply secure random bytes.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// MustGenerate is Generate for paths where an id failure should abort
// the program, such as tooling and initialization.
func MustGenerate(prefix string) string {
	id, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}
