// Package vc holds the data model and constants shared by the canonical
// encoder, the secp256k1 signer and the VC builder/verifier: the
// VerifiableCredential and Proof shapes, the DID document shape consumed
// from the collaborator, and the bit-exact constants the spec mandates.
package vc

import (
	"encoding/json"
	"time"
)

// Constants (bit-exact, see spec.md §6)
const (
	// ContextURL is the mandatory W3C context URL every complete VC
	// must contain exactly once.
	ContextURL = "https://www.w3.org/2018/credentials/v1"

	// DefaultType is the VC type the builder writes when the caller
	// omits one.
	DefaultType = "VerifiableCredential"

	// ProofType identifies the only signature suite in scope.
	ProofType = "EcdsaPublicKeySecp256k1"

	// JWSAlgorithm is the alg value of the fixed JWS header.
	JWSAlgorithm = "ES256K-R"

	// CredentialStatusType is the sentinel credentialStatus.type value
	// that triggers a remote status check.
	CredentialStatusType = "evan:evanCredential"

	// JWSHeader is the fixed literal JWS header byte sequence. It is
	// never produced via json.Marshal of a map, because Go would
	// alphabetize "alg" before "typ".
	JWSHeader = `{"typ":"JWT","alg":"ES256K-R"}`

	// timestampLayout formats everything except the forced millisecond
	// suffix, which FormatTimestamp appends literally.
	timestampLayout = "2006-01-02T15:04:05"
)

// FormatTimestamp renders t as "%Y-%m-%dT%H:%M:%S.000Z" with the
// millisecond field forced to "000", per spec.md §6.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout) + ".000Z"
}

// VerifiableCredential is a VC JSON document. Field declaration order
// is the order encoding/json.Marshal emits them in; this is the
// mechanism (not a third-party ordered-map) that keeps builder output
// deterministic and matches spec.md's insertion-order requirement for
// the payload's embedded vc value.
type VerifiableCredential struct {
	Context           []string          `json:"@context"`
	ID                string            `json:"id"`
	Type              any               `json:"type,omitempty"`
	Issuer            any               `json:"issuer,omitempty"`
	ValidFrom         string            `json:"validFrom,omitempty"`
	CredentialSubject json.RawMessage   `json:"credentialSubject,omitempty"`
	CredentialStatus  *CredentialStatus `json:"credentialStatus,omitempty"`
	Proof             *Proof            `json:"proof,omitempty"`
}

// CredentialStatus is the optional status pointer on a VC.
type CredentialStatus struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Proof is the fixed-shape JWS-based proof object attached by the builder.
type Proof struct {
	Type               string `json:"type"`
	Created            string `json:"created"`
	ProofPurpose       string `json:"proofPurpose"`
	VerificationMethod string `json:"verificationMethod"`
	JWS                string `json:"jws"`
}

// JWSPayload is the JWS payload object. Its three keys, in this exact
// declaration order (iat, vc, iss), are load-bearing: the verifier's
// payload regex assumes this sequence. vc carries the already-encoded
// bytes of the VC-without-proof so the builder never re-serializes it
// (and risks reordering it) between signing and attaching the proof.
type JWSPayload struct {
	IAT int64           `json:"iat"`
	VC  json.RawMessage `json:"vc"`
	ISS string          `json:"iss"`
}

// DIDDocument is the subset of an evan.network DID document the core reads.
type DIDDocument struct {
	PublicKey []PublicKeyEntry `json:"publicKey"`
}

// PublicKeyEntry binds a verification method id to an Ethereum-style address.
type PublicKeyEntry struct {
	ID              string `json:"id"`
	EthereumAddress string `json:"ethereumAddress"`
}

// StatusResponse is the response shape of a credentialStatus.id GET.
type StatusResponse struct {
	Status   string `json:"status,omitempty"`
	Error    string `json:"error,omitempty"`
	VCStatus string `json:"vcStatus,omitempty"`
}

// DIDEnvelope is the response shape of a GET against
// https://<network-host>/did/<did>.
type DIDEnvelope struct {
	Status string          `json:"status,omitempty"`
	Error  string          `json:"error,omitempty"`
	DID    json.RawMessage `json:"did,omitempty"`
}

// VCEnvelope is the response shape of a GET against
// https://<network-host>/vc/<vc_id>.
type VCEnvelope struct {
	Status string          `json:"status,omitempty"`
	Error  string          `json:"error,omitempty"`
	VC     json.RawMessage `json:"vc,omitempty"`
}

// IssuerID extracts the issuer DID string whether issuer was written as
// a bare string or as an {id: <DID>} object.
func IssuerID(issuer any) (string, bool) {
	switch v := issuer.(type) {
	case string:
		return v, true
	case map[string]any:
		id, ok := v["id"].(string)
		return id, ok
	default:
		return "", false
	}
}
