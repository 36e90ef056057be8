package id

import (
	"strings"

	"github.com/google/uuid"
)

// NewID32 returns a random (v4) UUID as exactly 32 lowercase hex characters
// (no separators/prefixes).
func NewID32() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Valid reports whether s is a 32-char lowercase hex id or a canonical
// 36-char UUID.
func Valid(s string) bool {
	switch len(s) {
	case 32:
		if strings.ToLower(s) != s {
			return false
		}
	case 36:
	default:
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
