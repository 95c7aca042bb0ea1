package crypto

import (
	"crypto/ed25519"
	"fmt"
	"io"
)

// SeedSize is the number of random bytes a key pair is derived from.
const SeedSize = ed25519.SeedSize

// NewKeyPair derives an Ed25519 key pair from a 32 byte seed.
// The secret key is 64 bytes (seed followed by public key), the public key 32 bytes.
func NewKeyPair(seed []byte) (secret, public []byte, err error) {
	if len(seed) != SeedSize {
		return nil, nil, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)
	return []byte(priv), []byte(pub), nil
}

// GenerateKeyPair reads a seed from r and derives a key pair from it.
func GenerateKeyPair(r io.Reader) (secret, public []byte, err error) {
	seed := make([]byte, SeedSize)
	if _, err := io.ReadFull(r, seed); err != nil {
		return nil, nil, fmt.Errorf("read seed: %w", err)
	}
	return NewKeyPair(seed)
}

// Sign signs msg with a 64 byte secret key.
func Sign(msg, secret []byte) ([]byte, error) {
	if len(secret) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("secret key must be %d bytes, got %d", ed25519.PrivateKeySize, len(secret))
	}
	return ed25519.Sign(ed25519.PrivateKey(secret), msg), nil
}

// Verify reports whether sig is a valid signature of msg by public.
// Malformed keys and signatures verify as false.
func Verify(msg, public, sig []byte) bool {
	if len(public) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(public), msg, sig)
}
