// Package vcengine implements C3 (the VC builder) and C4 (the VC
// verifier): the core of the verification/issuance engine, built on
// pkg/canon, pkg/secpsign and pkg/signing.
package vcengine

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/evannetwork/vc-engine/pkg/canon"
	"github.com/evannetwork/vc-engine/pkg/signing"
	"github.com/evannetwork/vc-engine/pkg/vc"
)

// Builder implements C3: deterministically turning a partial VC JSON
// object into a complete VC whose proof is a JWS over a canonical
// payload. It carries no mutable state; every CreateVC call is
// independent and may run concurrently with others.
type Builder struct{}

// NewBuilder returns a stateless Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// CreateVC builds a complete VC from partialJSON, signing it with the
// secp256k1 private key privateKeyHex (32 raw bytes, hex-encoded) under
// verificationMethod. This is the public create_vc operation of
// spec.md §6.
func (b *Builder) CreateVC(ctx context.Context, partialJSON []byte, verificationMethod, privateKeyHex string) (string, error) {
	signer, err := signing.NewSecp256k1Signer(privateKeyHex, verificationMethod)
	if err != nil {
		return "", err
	}

	return b.CreateVCWithSigner(ctx, partialJSON, verificationMethod, signer)
}

// CreateVCWithSigner is CreateVC parameterized over a pluggable Signer,
// so a future HSM- or KMS-backed Signer can be substituted without
// changing the builder's field-defaulting logic.
func (b *Builder) CreateVCWithSigner(ctx context.Context, partialJSON []byte, verificationMethod string, signer signing.Signer) (string, error) {
	var credential vc.VerifiableCredential
	if err := canon.Unmarshal(partialJSON, &credential); err != nil {
		return "", err
	}

	if credential.ID == "" {
		return "", vc.ErrMissingId
	}

	if credential.Context == nil {
		credential.Context = []string{}
	}
	if !containsString(credential.Context, vc.ContextURL) {
		credential.Context = append(credential.Context, vc.ContextURL)
	}

	if credential.Type == nil {
		credential.Type = vc.DefaultType
	}

	if credential.Issuer == nil {
		credential.Issuer = didPrefix(verificationMethod)
	}

	now := time.Now().UTC()
	formattedNow := vc.FormatTimestamp(now)

	if credential.ValidFrom == "" {
		credential.ValidFrom = formattedNow
	}

	if credential.Proof == nil {
		proof, err := buildProof(ctx, &credential, verificationMethod, formattedNow, now, signer)
		if err != nil {
			return "", err
		}
		credential.Proof = proof
	}

	complete, err := canon.Marshal(&credential)
	if err != nil {
		return "", err
	}

	return string(complete), nil
}

// buildProof constructs the detached-style JWS proof per spec.md §4.3.
// credential must not yet carry a proof; the vc value embedded in the
// JWS payload is the exact bytes of credential at this point.
func buildProof(ctx context.Context, credential *vc.VerifiableCredential, verificationMethod, formattedNow string, now time.Time, signer signing.Signer) (*vc.Proof, error) {
	issuerID, ok := vc.IssuerID(credential.Issuer)
	if !ok {
		return nil, fmt.Errorf("%w: issuer is neither a string nor an object with an id", vc.ErrSigningFailure)
	}

	vcBytes, err := canon.Marshal(credential)
	if err != nil {
		return nil, err
	}

	payload := vc.JWSPayload{
		IAT: now.Unix(),
		VC:  json.RawMessage(vcBytes),
		ISS: issuerID,
	}

	payloadBytes, err := canon.Marshal(payload)
	if err != nil {
		return nil, err
	}

	b64Header := canon.EncodeB64URL([]byte(vc.JWSHeader))
	b64Payload := canon.EncodeB64URL(payloadBytes)

	digest := sha256.Sum256([]byte(b64Header + "." + b64Payload))

	sig64, _, err := signer.Sign(ctx, digest[:])
	if err != nil {
		return nil, err
	}

	b64Sig := canon.EncodeB64URL(sig64)

	return &vc.Proof{
		Type:               vc.ProofType,
		Created:            formattedNow,
		ProofPurpose:       "assertionMethod",
		VerificationMethod: verificationMethod,
		JWS:                b64Header + "." + b64Payload + "." + b64Sig,
	}, nil
}

func containsString(haystack []string, needle string) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}

func didPrefix(verificationMethod string) string {
	for i := 0; i < len(verificationMethod); i++ {
		if verificationMethod[i] == '#' {
			return verificationMethod[:i]
		}
	}
	return verificationMethod
}
