package canon

import (
	"errors"
	"testing"

	"github.com/evannetwork/vc-engine/pkg/vc"
	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeB64URLRoundTrip(t *testing.T) {
	data := []byte(`{"iat":1,"vc":{},"iss":"did:evan:testcore:0x0"}`)
	encoded := EncodeB64URL(data)
	decoded, err := DecodeB64URL(encoded)
	assert.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestDecodeB64URLPaddingTolerance(t *testing.T) {
	data := []byte("hello world!")
	encoded := EncodeB64URL(data)

	for _, padded := range []string{encoded, encoded + "=", encoded + "==", encoded + "==="} {
		decoded, err := DecodeB64URL(padded)
		assert.NoError(t, err, "padding variant %q should decode", padded)
		assert.Equal(t, data, decoded)
	}
}

func TestDecodeB64URLInvalid(t *testing.T) {
	_, err := DecodeB64URL("not base64!!")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, vc.ErrDecodingError))
}

func TestMarshalPreservesInsertionOrder(t *testing.T) {
	type payload struct {
		IAT int    `json:"iat"`
		ISS string `json:"iss"`
	}

	b, err := Marshal(payload{IAT: 1, ISS: "did:evan:testcore:0x0"})
	assert.NoError(t, err)
	assert.Equal(t, `{"iat":1,"iss":"did:evan:testcore:0x0"}`, string(b))
}
