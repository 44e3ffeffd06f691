package model

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// NewID returns prefix-<suffix> where suffix is 8 chars of lowercase base32
// (~40 bits). Collisions within one schedule's lifetime are negligible.
func NewID(prefix string) string {
	var b [5]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms
		panic(fmt.Sprintf("model: read random id bytes: %v", err))
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	return prefix + "-" + strings.ToLower(enc.EncodeToString(b[:]))
}

// NewTaskID mints an identifier for a schedule task.
func NewTaskID() string { return NewID("task") }
