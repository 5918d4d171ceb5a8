package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/locksmith/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes content digests with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash returns the 16-character hex XXHash64 digest of data.
func (h *Hasher) Hash(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
