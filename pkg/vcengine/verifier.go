package vcengine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/evannetwork/vc-engine/pkg/canon"
	"github.com/evannetwork/vc-engine/pkg/logger"
	"github.com/evannetwork/vc-engine/pkg/secpsign"
	"github.com/evannetwork/vc-engine/pkg/vc"
)

// DIDResolver is the collaborator needed to resolve a verification
// method's owning DID document. Satisfied structurally by
// pkg/keyresolver.Client and pkg/keyresolver.CachingResolver.
type DIDResolver interface {
	GetDIDDocument(ctx context.Context, did string) (string, error)
}

// StatusFetcher is the collaborator needed to query a credentialStatus
// endpoint. Satisfied structurally by pkg/keyresolver.Client.
type StatusFetcher interface {
	FetchStatus(ctx context.Context, statusURL string) (*vc.StatusResponse, error)
}

// payloadPattern pulls the "vc" member out of a JWS payload without
// fully parsing the payload, so that member alone can be parsed and
// compared value-wise against the surrounding document per spec.md
// §4.4. It intentionally accepts only the fixed iat/vc/iss field order
// the builder emits.
var payloadPattern = regexp.MustCompile(`^\s*\{"iat":[^,]+,"vc":(.*),"iss":"[^"]+?"\}\s*$`)

// Verifier implements C4: checking that a VC's proof is a valid
// signature over the VC's own content, by a key registered to the
// issuing DID, and (when present) that its credentialStatus is active.
type Verifier struct {
	didResolver   DIDResolver
	statusFetcher StatusFetcher
	log           *logger.Log
}

// NewVerifier builds a Verifier. statusFetcher may be nil if
// credential-status checks are never needed; CheckVC then returns
// ErrStatusQueryFailed for any VC carrying a credentialStatus.
func NewVerifier(didResolver DIDResolver, statusFetcher StatusFetcher, log *logger.Log) *Verifier {
	return &Verifier{didResolver: didResolver, statusFetcher: statusFetcher, log: log}
}

// CheckVC implements the public check_vc operation of spec.md §6. vcID
// identifies the VC being checked; the check does not read it (the
// engine never fetches a VC by id itself). A nil return means the VC is
// either validly signed or intentionally unsigned.
func (v *Verifier) CheckVC(ctx context.Context, vcID, vcJSON string) error {
	var document map[string]any
	if err := json.Unmarshal([]byte(vcJSON), &document); err != nil {
		return fmt.Errorf("%w: %v", vc.ErrJsonMalformed, err)
	}

	proofValue, hasProof := document["proof"]
	if !hasProof || proofValue == nil {
		return nil
	}

	proofBytes, err := json.Marshal(proofValue)
	if err != nil {
		return fmt.Errorf("%w: %v", vc.ErrJsonMalformed, err)
	}

	var proof vc.Proof
	if err := json.Unmarshal(proofBytes, &proof); err != nil {
		return fmt.Errorf("%w: %v", vc.ErrJsonMalformed, err)
	}

	vcBody := make(map[string]any, len(document))
	for k, val := range document {
		if k != "proof" {
			vcBody[k] = val
		}
	}

	parts := strings.Split(proof.JWS, ".")
	if len(parts) != 3 {
		return fmt.Errorf("%w: jws has %d segments, want 3", vc.ErrJwsMalformed, len(parts))
	}
	header, payloadSeg, sigSeg := parts[0], parts[1], parts[2]

	payloadBytes, err := canon.DecodeB64URL(payloadSeg)
	if err != nil {
		return fmt.Errorf("%w: %v", vc.ErrJwsMalformed, err)
	}

	match := payloadPattern.FindStringSubmatch(string(payloadBytes))
	if match == nil {
		return fmt.Errorf("%w: jws payload does not match the expected iat/vc/iss shape", vc.ErrJwsMalformed)
	}

	var embeddedVC map[string]any
	if err := json.Unmarshal([]byte(match[1]), &embeddedVC); err != nil {
		return fmt.Errorf("%w: jws payload vc member is not valid json: %v", vc.ErrJwsMalformed, err)
	}

	if diff := cmp.Diff(vcBody, embeddedVC); diff != "" {
		return fmt.Errorf("%w: vc content does not match the signed payload", vc.ErrDocumentMismatch)
	}

	sig64, err := canon.DecodeB64URL(sigSeg)
	if err != nil {
		return fmt.Errorf("%w: %v", vc.ErrJwsMalformed, err)
	}
	if len(sig64) != secpsign.SignatureLength {
		return fmt.Errorf("%w: signature is %d bytes, want %d", vc.ErrJwsMalformed, len(sig64), secpsign.SignatureLength)
	}

	digest := sha256.Sum256([]byte(header + "." + payloadSeg))

	did, err := v.didResolver.GetDIDDocument(ctx, proof.VerificationMethod)
	if err != nil {
		return err
	}

	var didDocument vc.DIDDocument
	if err := json.Unmarshal([]byte(did), &didDocument); err != nil {
		return fmt.Errorf("%w: could not parse did document: %v", vc.ErrDidResolutionFailed, err)
	}

	registeredAddress, err := lookupKey(didDocument, proof.VerificationMethod)
	if err != nil {
		return err
	}

	if !signatureMatchesAddress(digest[:], sig64, registeredAddress) {
		return vc.ErrBadSignature
	}

	if statusValue, hasStatus := document["credentialStatus"]; hasStatus && statusValue != nil {
		if err := v.checkStatus(ctx, statusValue); err != nil {
			return err
		}
	}

	return nil
}

// lookupKey finds the single publicKey entry in doc whose id equals
// verificationMethod, returning ErrUnknownKey or ErrAmbiguousKey when
// there is not exactly one match.
func lookupKey(doc vc.DIDDocument, verificationMethod string) (string, error) {
	var found string
	matches := 0
	for _, key := range doc.PublicKey {
		if key.ID == verificationMethod {
			found = key.EthereumAddress
			matches++
		}
	}

	switch {
	case matches == 0:
		return "", fmt.Errorf("%w: %s", vc.ErrUnknownKey, verificationMethod)
	case matches > 1:
		return "", fmt.Errorf("%w: %s", vc.ErrAmbiguousKey, verificationMethod)
	default:
		return found, nil
	}
}

// signatureMatchesAddress tries both secp256k1 recovery ids, per the
// fixed 64-byte R‖S wire format that never transmits one, and accepts
// the signature if either candidate address matches registeredAddress.
func signatureMatchesAddress(digest, sig64 []byte, registeredAddress string) bool {
	registeredAddress = strings.ToLower(registeredAddress)

	for _, recoveryID := range [2]byte{0, 1} {
		pub, err := secpsign.Recover(digest, sig64, recoveryID)
		if err != nil {
			continue
		}

		addr, err := secpsign.AddressOf(pub)
		if err != nil {
			continue
		}

		if "0x"+hex.EncodeToString(addr[:]) == registeredAddress {
			return true
		}
	}

	return false
}

func (v *Verifier) checkStatus(ctx context.Context, statusValue any) error {
	if v.statusFetcher == nil {
		return fmt.Errorf("%w: credentialStatus present but no status fetcher configured", vc.ErrStatusQueryFailed)
	}

	statusBytes, err := json.Marshal(statusValue)
	if err != nil {
		return fmt.Errorf("%w: %v", vc.ErrJsonMalformed, err)
	}

	var status vc.CredentialStatus
	if err := json.Unmarshal(statusBytes, &status); err != nil {
		return fmt.Errorf("%w: %v", vc.ErrJsonMalformed, err)
	}

	if status.Type != vc.CredentialStatusType {
		return nil
	}

	result, err := v.statusFetcher.FetchStatus(ctx, status.ID)
	if err != nil {
		return err
	}

	if result.VCStatus != "active" {
		return fmt.Errorf("%w: credential status is %q", vc.ErrRevoked, result.VCStatus)
	}

	return nil
}
