// Package signing provides a pluggable signing abstraction for the VC
// builder. The Signer interface lets pkg/vcengine program against any
// key-holding backend; Secp256k1Signer is the concrete software-key
// implementation used in this repository, grounded on the teacher's
// Signer/SoftwareSigner split (an HSM- or KMS-backed Signer could be
// substituted later without touching the builder).
package signing

import "context"

// Signer signs a 32-byte digest and returns a recoverable secp256k1
// signature plus its recovery id.
type Signer interface {
	// Sign signs the 32-byte digest and returns the 64-byte R‖S
	// signature and recovery id.
	Sign(ctx context.Context, digest32 []byte) (sig64 []byte, recoveryID byte, err error)

	// KeyID returns the verification method this signer's key is
	// registered under.
	KeyID() string
}
