package vc

import "errors"

// Error taxonomy for the VC/DID verification and issuance engine. Call
// sites wrap these sentinels with fmt.Errorf("%w: ...", ErrX) to attach
// detail while keeping errors.Is matching intact.
var (
	// ErrMissingId is returned when create_vc is invoked without an id
	ErrMissingId = errors.New("missing_id")

	// ErrJsonMalformed is returned when input is not parseable as JSON
	ErrJsonMalformed = errors.New("json_malformed")

	// ErrDecodingError is returned when base64url decoding fails under
	// every padding candidate
	ErrDecodingError = errors.New("decoding_error")

	// ErrJwsMalformed is returned when a JWS is not in three-segment
	// form, or its payload does not match the payload grammar
	ErrJwsMalformed = errors.New("jws_malformed")

	// ErrDocumentMismatch is returned when the VC body differs from the
	// vc value embedded in the JWS payload
	ErrDocumentMismatch = errors.New("document_mismatch")

	// ErrUnknownKey is returned when the DID document has zero publicKey
	// entries matching the verification method
	ErrUnknownKey = errors.New("unknown_key")

	// ErrAmbiguousKey is returned when the DID document has more than
	// one publicKey entry matching the verification method
	ErrAmbiguousKey = errors.New("ambiguous_key")

	// ErrBadSignature is returned when the recovered address does not
	// match the registered ethereumAddress
	ErrBadSignature = errors.New("bad_signature")

	// ErrRevoked is returned when the credential status endpoint reports
	// a vcStatus other than "active"
	ErrRevoked = errors.New("revoked")

	// ErrStatusQueryFailed is returned when the credential status
	// endpoint itself reports a failure
	ErrStatusQueryFailed = errors.New("status_query_failed")

	// ErrInvalidPrivateKey is returned when a private key is not a valid
	// secp256k1 scalar in [1, n-1]
	ErrInvalidPrivateKey = errors.New("invalid_private_key")

	// ErrSigningFailure is returned when the signer cannot produce a
	// recoverable signature
	ErrSigningFailure = errors.New("signing_failure")

	// ErrDidResolutionFailed is returned when the DID collaborator fails
	// to resolve a DID document
	ErrDidResolutionFailed = errors.New("did_resolution_failed")

	// ErrNetworkError is returned when a remote HTTP collaborator call
	// fails or reports a status=="error" envelope
	ErrNetworkError = errors.New("network_error")
)
