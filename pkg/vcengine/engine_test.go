package vcengine

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evannetwork/vc-engine/pkg/signing"
	"github.com/evannetwork/vc-engine/pkg/vc"
)

const (
	testPrivateKeyHex     = "01734663843202e2245e5796cb120510506343c67915eb4f9348ac0d8c2cf22a"
	testExpectedAddress   = "0x001de828935e8c7e4cb56fe610495cae63fb2612"
	testDID               = "did:evan:testcore:0x001de828935e8c7e4cb56fe610495cae63fb2612"
	testVerificationKeyID = testDID + "#key-1"
)

type stubResolver struct {
	doc string
	err error
}

func (s *stubResolver) GetDIDDocument(ctx context.Context, did string) (string, error) {
	return s.doc, s.err
}

type stubStatusFetcher struct {
	status *vc.StatusResponse
	err    error
}

func (s *stubStatusFetcher) FetchStatus(ctx context.Context, url string) (*vc.StatusResponse, error) {
	return s.status, s.err
}

func resolverWithRegisteredKey() *stubResolver {
	doc := vc.DIDDocument{PublicKey: []vc.PublicKeyEntry{{ID: testVerificationKeyID, EthereumAddress: testExpectedAddress}}}
	raw, _ := json.Marshal(doc)
	return &stubResolver{doc: string(raw)}
}

func buildSignedVC(t *testing.T, partial string) string {
	t.Helper()
	signer, err := signing.NewSecp256k1Signer(testPrivateKeyHex, testVerificationKeyID)
	require.NoError(t, err)

	b := NewBuilder()
	out, err := b.CreateVCWithSigner(context.Background(), []byte(partial), testVerificationKeyID, signer)
	require.NoError(t, err)
	return out
}

func TestCreateVCFillsDefaultsAndSigns(t *testing.T) {
	out := buildSignedVC(t, `{"id":"vc:evan:testcore:0x1","credentialSubject":{"name":"alice"}}`)

	var credential vc.VerifiableCredential
	require.NoError(t, json.Unmarshal([]byte(out), &credential))

	assert.Contains(t, credential.Context, vc.ContextURL)
	assert.Equal(t, vc.DefaultType, credential.Type)
	assert.Equal(t, testDID, credential.Issuer)
	assert.NotEmpty(t, credential.ValidFrom)
	require.NotNil(t, credential.Proof)
	assert.Equal(t, vc.ProofType, credential.Proof.Type)
	assert.Equal(t, testVerificationKeyID, credential.Proof.VerificationMethod)
}

func TestCreateVCMissingIdFails(t *testing.T) {
	signer, err := signing.NewSecp256k1Signer(testPrivateKeyHex, testVerificationKeyID)
	require.NoError(t, err)

	b := NewBuilder()
	_, err = b.CreateVCWithSigner(context.Background(), []byte(`{"credentialSubject":{}}`), testVerificationKeyID, signer)
	require.Error(t, err)
	assert.ErrorIs(t, err, vc.ErrMissingId)
}

func TestCreateVCIdempotentContext(t *testing.T) {
	out := buildSignedVC(t, `{"id":"vc:evan:testcore:0x1","@context":["`+vc.ContextURL+`"],"credentialSubject":{}}`)

	var credential vc.VerifiableCredential
	require.NoError(t, json.Unmarshal([]byte(out), &credential))
	assert.Equal(t, []string{vc.ContextURL}, credential.Context)
}

func TestCheckVCAcceptsValidSignature(t *testing.T) {
	signedVC := buildSignedVC(t, `{"id":"vc:evan:testcore:0x1","credentialSubject":{"name":"alice"}}`)

	verifier := NewVerifier(resolverWithRegisteredKey(), nil, nil)
	err := verifier.CheckVC(context.Background(), "vc:evan:testcore:0x1", signedVC)
	assert.NoError(t, err)
}

func TestCheckVCAcceptsUnsignedVC(t *testing.T) {
	verifier := NewVerifier(resolverWithRegisteredKey(), nil, nil)
	err := verifier.CheckVC(context.Background(), "vc:evan:testcore:0x1", `{"id":"vc:evan:testcore:0x1","@context":["`+vc.ContextURL+`"]}`)
	assert.NoError(t, err)
}

func TestCheckVCDetectsTamperedBody(t *testing.T) {
	signedVC := buildSignedVC(t, `{"id":"vc:evan:testcore:0x1","credentialSubject":{"name":"alice"}}`)

	var document map[string]any
	require.NoError(t, json.Unmarshal([]byte(signedVC), &document))
	document["credentialSubject"] = map[string]any{"name": "mallory"}
	tampered, err := json.Marshal(document)
	require.NoError(t, err)

	verifier := NewVerifier(resolverWithRegisteredKey(), nil, nil)
	err = verifier.CheckVC(context.Background(), "vc:evan:testcore:0x1", string(tampered))
	require.Error(t, err)
	assert.ErrorIs(t, err, vc.ErrDocumentMismatch)
}

func TestCheckVCDetectsKeyMismatch(t *testing.T) {
	signedVC := buildSignedVC(t, `{"id":"vc:evan:testcore:0x1","credentialSubject":{"name":"alice"}}`)

	doc := vc.DIDDocument{PublicKey: []vc.PublicKeyEntry{{ID: testVerificationKeyID, EthereumAddress: "0x000000000000000000000000000000000000ff"}}}
	raw, _ := json.Marshal(doc)

	verifier := NewVerifier(&stubResolver{doc: string(raw)}, nil, nil)
	err := verifier.CheckVC(context.Background(), "vc:evan:testcore:0x1", signedVC)
	require.Error(t, err)
	assert.ErrorIs(t, err, vc.ErrBadSignature)
}

func TestCheckVCDetectsUnknownKey(t *testing.T) {
	signedVC := buildSignedVC(t, `{"id":"vc:evan:testcore:0x1","credentialSubject":{"name":"alice"}}`)

	doc := vc.DIDDocument{PublicKey: []vc.PublicKeyEntry{}}
	raw, _ := json.Marshal(doc)

	verifier := NewVerifier(&stubResolver{doc: string(raw)}, nil, nil)
	err := verifier.CheckVC(context.Background(), "vc:evan:testcore:0x1", signedVC)
	require.Error(t, err)
	assert.ErrorIs(t, err, vc.ErrUnknownKey)
}

func TestCheckVCDetectsAmbiguousKey(t *testing.T) {
	signedVC := buildSignedVC(t, `{"id":"vc:evan:testcore:0x1","credentialSubject":{"name":"alice"}}`)

	doc := vc.DIDDocument{PublicKey: []vc.PublicKeyEntry{
		{ID: testVerificationKeyID, EthereumAddress: testExpectedAddress},
		{ID: testVerificationKeyID, EthereumAddress: testExpectedAddress},
	}}
	raw, _ := json.Marshal(doc)

	verifier := NewVerifier(&stubResolver{doc: string(raw)}, nil, nil)
	err := verifier.CheckVC(context.Background(), "vc:evan:testcore:0x1", signedVC)
	require.Error(t, err)
	assert.ErrorIs(t, err, vc.ErrAmbiguousKey)
}

func TestCheckVCPropagatesDidResolutionFailure(t *testing.T) {
	signedVC := buildSignedVC(t, `{"id":"vc:evan:testcore:0x1","credentialSubject":{"name":"alice"}}`)

	verifier := NewVerifier(&stubResolver{err: vc.ErrDidResolutionFailed}, nil, nil)
	err := verifier.CheckVC(context.Background(), "vc:evan:testcore:0x1", signedVC)
	require.Error(t, err)
	assert.ErrorIs(t, err, vc.ErrDidResolutionFailed)
}

func TestCheckVCRejectsMalformedJWS(t *testing.T) {
	verifier := NewVerifier(resolverWithRegisteredKey(), nil, nil)
	err := verifier.CheckVC(context.Background(), "vc:evan:testcore:0x1",
		`{"id":"vc:evan:testcore:0x1","proof":{"type":"EcdsaPublicKeySecp256k1","jws":"abc.def"}}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, vc.ErrJwsMalformed)
}

func TestCheckVCRevokedStatus(t *testing.T) {
	signer, err := signing.NewSecp256k1Signer(testPrivateKeyHex, testVerificationKeyID)
	require.NoError(t, err)

	b := NewBuilder()
	out, err := b.CreateVCWithSigner(context.Background(), []byte(
		`{"id":"vc:evan:testcore:0x1","credentialSubject":{"name":"alice"},"credentialStatus":{"id":"https://core.demo.evan.network/status/0x1","type":"`+vc.CredentialStatusType+`"}}`),
		testVerificationKeyID, signer)
	require.NoError(t, err)

	statusFetcher := &stubStatusFetcher{status: &vc.StatusResponse{VCStatus: "revoked"}}
	verifier := NewVerifier(resolverWithRegisteredKey(), statusFetcher, nil)
	err = verifier.CheckVC(context.Background(), "vc:evan:testcore:0x1", out)
	require.Error(t, err)
	assert.ErrorIs(t, err, vc.ErrRevoked)
}

func TestCheckVCPropagatesNetworkError(t *testing.T) {
	signedVC := buildSignedVC(t, `{"id":"vc:evan:testcore:0x1","credentialSubject":{"name":"alice"}}`)

	verifier := NewVerifier(&stubResolver{err: errors.New("could not get vc document: connection refused")}, nil, nil)
	err := verifier.CheckVC(context.Background(), "vc:evan:testcore:0x1", signedVC)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not get vc document")
}
