package secpsign

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"gotest.tools/v3/assert"
)

const (
	testPrivateKeyHex   = "01734663843202e2245e5796cb120510506343c67915eb4f9348ac0d8c2cf22a"
	testExpectedAddress = "0x001de828935e8c7e4cb56fe610495cae63fb2612"
)

func TestAddressOfMatchesTestVector(t *testing.T) {
	keyBytes, err := hex.DecodeString(testPrivateKeyHex)
	assert.NilError(t, err)

	privateKey, err := crypto.ToECDSA(keyBytes)
	assert.NilError(t, err)

	pub65 := crypto.FromECDSAPub(&privateKey.PublicKey)

	addr, err := AddressOf(pub65)
	assert.NilError(t, err)

	got := "0x" + hex.EncodeToString(addr[:])
	assert.Assert(t, strings.EqualFold(testExpectedAddress, got), "expected %s, got %s", testExpectedAddress, got)
}

func TestSignRecoverRoundTrip(t *testing.T) {
	keyBytes, err := hex.DecodeString(testPrivateKeyHex)
	assert.NilError(t, err)

	digest := sha256.Sum256([]byte("header.payload"))

	sig64, recoveryID, err := Sign(digest[:], keyBytes)
	assert.NilError(t, err)
	assert.Equal(t, len(sig64), SignatureLength)

	pub65, err := Recover(digest[:], sig64, recoveryID)
	assert.NilError(t, err)

	privateKey, err := crypto.ToECDSA(keyBytes)
	assert.NilError(t, err)
	assert.DeepEqual(t, crypto.FromECDSAPub(&privateKey.PublicKey), pub65)
}

func TestSignRecoverWrongRecoveryIDFails(t *testing.T) {
	keyBytes, err := hex.DecodeString(testPrivateKeyHex)
	assert.NilError(t, err)

	digest := sha256.Sum256([]byte("header.payload"))

	sig64, recoveryID, err := Sign(digest[:], keyBytes)
	assert.NilError(t, err)

	wrongID := byte(1)
	if recoveryID == 1 {
		wrongID = 0
	}

	pub65, err := Recover(digest[:], sig64, wrongID)
	if err != nil {
		return
	}

	privateKey, err := crypto.ToECDSA(keyBytes)
	assert.NilError(t, err)
	assert.Assert(t, string(crypto.FromECDSAPub(&privateKey.PublicKey)) != string(pub65))
}

func TestRecoverRejectsWrongLength(t *testing.T) {
	_, err := Recover(make([]byte, 31), make([]byte, SignatureLength), 0)
	assert.ErrorContains(t, err, "")

	_, err = Recover(make([]byte, MessageLength), make([]byte, 63), 0)
	assert.ErrorContains(t, err, "")
}
