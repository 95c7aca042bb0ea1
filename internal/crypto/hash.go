// Package crypto provides the hashing and signing primitives of the ledger.
package crypto

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // address scheme requires RIPEMD-160
)

// PubKeyHashSize is the length of a public-key hash.
const PubKeyHashSize = ripemd160.Size

// SHA256 returns the SHA-256 digest of b.
func SHA256(b []byte) []byte {
	return chainhash.HashB(b)
}

// SHA256Hex returns the hex-encoded SHA-256 digest of b.
func SHA256Hex(b []byte) string {
	return hex.EncodeToString(SHA256(b))
}

// RIPEMD160 returns the RIPEMD-160 digest of b.
func RIPEMD160(b []byte) []byte {
	h := ripemd160.New()
	_, _ = h.Write(b)
	return h.Sum(nil)
}

// HashPubKey returns RIPEMD-160(SHA-256(publicKey)), the locking predicate of an output.
func HashPubKey(publicKey []byte) []byte {
	return RIPEMD160(SHA256(publicKey))
}
