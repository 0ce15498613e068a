// Package digest labels content with its BLAKE2b-256 hash.
package digest

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Prefix names the algorithm in rendered digests.
const Prefix = "blake2b-256="

// Sum returns the digest of data as "blake2b-256=<hex>".
func Sum(data []byte) string {
	sum := blake2b.Sum256(data)
	return Prefix + hex.EncodeToString(sum[:])
}
