// Package secpsign implements C2: recoverable secp256k1 ECDSA signing
// and recovery, plus Keccak-256 Ethereum-style address derivation.
// Built directly on github.com/ethereum/go-ethereum/crypto, grounded on
// certenIO-certen-validator's pkg/ethereum/client.go and the secp256k1
// signing idiom shown across the retrieval pack's other_examples files
// (crypto.Sign / crypto.Ecrecover / crypto.Keccak256).
package secpsign

import (
	"fmt"

	"github.com/evannetwork/vc-engine/pkg/vc"

	"github.com/ethereum/go-ethereum/crypto"
)

// SignatureLength is the wire length of R‖S, without the recovery byte.
const SignatureLength = 64

// MessageLength is the expected digest length for Sign/Recover.
const MessageLength = 32

// AddressLength is the length of an Ethereum-style address.
const AddressLength = 20

// Sign computes a recoverable secp256k1 ECDSA signature over message32
// using the 32-byte private key privateKey32. It returns the 64-byte
// R‖S signature (big-endian, low-S normalized by the underlying
// library) and the recovery id in {0,1,2,3}.
func Sign(message32, privateKey32 []byte) (sig64 []byte, recoveryID byte, err error) {
	if len(message32) != MessageLength {
		return nil, 0, fmt.Errorf("%w: message must be %d bytes, got %d", vc.ErrSigningFailure, MessageLength, len(message32))
	}

	privateKey, err := crypto.ToECDSA(privateKey32)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", vc.ErrInvalidPrivateKey, err)
	}

	sig, err := crypto.Sign(message32, privateKey)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", vc.ErrSigningFailure, err)
	}

	// crypto.Sign returns 65 bytes: R(32) || S(32) || V(1), V in {0,1}.
	return sig[:SignatureLength], sig[SignatureLength], nil
}

// Recover reconstructs the uncompressed SEC1 public key (prefix 0x04,
// 65 bytes total) whose signature over message32 with the supplied
// recovery id equals sig64.
func Recover(message32, sig64 []byte, recoveryID byte) (pub65 []byte, err error) {
	if len(message32) != MessageLength {
		return nil, fmt.Errorf("%w: message must be %d bytes, got %d", vc.ErrBadSignature, MessageLength, len(message32))
	}
	if len(sig64) != SignatureLength {
		return nil, fmt.Errorf("%w: signature must be %d bytes, got %d", vc.ErrBadSignature, SignatureLength, len(sig64))
	}

	sig65 := make([]byte, 65)
	copy(sig65, sig64)
	sig65[64] = recoveryID

	pub, err := crypto.Ecrecover(message32, sig65)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vc.ErrBadSignature, err)
	}

	return pub, nil
}

// AddressOf derives the 20-byte Ethereum-style address of an
// uncompressed public key: Keccak256(public_key65[1:65])[12:32].
func AddressOf(pub65 []byte) ([AddressLength]byte, error) {
	var addr [AddressLength]byte

	if len(pub65) != 65 || pub65[0] != 0x04 {
		return addr, fmt.Errorf("%w: expected 65-byte uncompressed public key with 0x04 prefix, got %d bytes", vc.ErrBadSignature, len(pub65))
	}

	hash := crypto.Keccak256(pub65[1:])
	copy(addr[:], hash[len(hash)-AddressLength:])

	return addr, nil
}
