package expr

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Digest is the blake3 hash of a rendered tree.
type Digest [32]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Fingerprint returns the digest of the rendering of n. Two trees with the
// same fingerprint evaluate the same operations in the same order.
func Fingerprint[T any](n Node[T]) Digest {
	return blake3.Sum256([]byte(Format(n, Printer{})))
}

// ShapeFingerprint is [Fingerprint] with every MulAdd(a, b, c) replaced by
// c + a * b. A plain and a fused tree built by the same algorithm share
// their shape fingerprint.
func ShapeFingerprint[T any](n Node[T]) Digest {
	return blake3.Sum256([]byte(Format(n, Printer{Unfuse: true})))
}
