package conflux

import "golang.org/x/crypto/blake2b"

// HashName identifies the digest algorithm used for configuration
// content hashes. The algorithm is fixed at build time.
const HashName = "BLAKE2b"

// digest computes the content hash over canonical serialized bytes.
func digest(data []byte) []byte {
	sum := blake2b.Sum256(data)
	return sum[:]
}
