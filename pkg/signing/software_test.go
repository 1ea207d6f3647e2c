package signing

import (
	"context"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrivateKeyHex = "01734663843202e2245e5796cb120510506343c67915eb4f9348ac0d8c2cf22a"

func TestNewSecp256k1SignerAndSign(t *testing.T) {
	signer, err := NewSecp256k1Signer(testPrivateKeyHex, "did:evan:testcore:0x0ef0e584c714564a4fc0c6c367edccb0c1cbf65f#key-1")
	require.NoError(t, err)
	assert.Equal(t, "did:evan:testcore:0x0ef0e584c714564a4fc0c6c367edccb0c1cbf65f#key-1", signer.KeyID())

	digest := sha256.Sum256([]byte("header.payload"))
	sig, recoveryID, err := signer.Sign(context.Background(), digest[:])
	require.NoError(t, err)
	assert.Len(t, sig, 64)
	assert.LessOrEqual(t, recoveryID, byte(3))
}

func TestNewSecp256k1SignerRejectsBadHex(t *testing.T) {
	_, err := NewSecp256k1Signer("not-hex", "kid")
	assert.Error(t, err)
}

func TestNewSecp256k1SignerRejectsWrongLength(t *testing.T) {
	_, err := NewSecp256k1Signer("0102", "kid")
	assert.Error(t, err)
}
