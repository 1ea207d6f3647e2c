package signing

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/evannetwork/vc-engine/pkg/secpsign"
	"github.com/evannetwork/vc-engine/pkg/vc"
)

// Secp256k1Signer implements Signer using an in-memory secp256k1
// private key.
type Secp256k1Signer struct {
	privateKey []byte
	keyID      string
}

// NewSecp256k1Signer builds a Secp256k1Signer from a 32-byte hex-encoded
// private key and the verification method it is registered under.
func NewSecp256k1Signer(privateKeyHex, keyID string) (*Secp256k1Signer, error) {
	privateKey, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vc.ErrInvalidPrivateKey, err)
	}
	if len(privateKey) != secpsign.MessageLength {
		return nil, fmt.Errorf("%w: private key must be %d bytes, got %d", vc.ErrInvalidPrivateKey, secpsign.MessageLength, len(privateKey))
	}

	return &Secp256k1Signer{privateKey: privateKey, keyID: keyID}, nil
}

// Sign signs digest32 with the held private key.
func (s *Secp256k1Signer) Sign(ctx context.Context, digest32 []byte) ([]byte, byte, error) {
	return secpsign.Sign(digest32, s.privateKey)
}

// KeyID returns the verification method this key is registered under.
func (s *Secp256k1Signer) KeyID() string {
	return s.keyID
}
