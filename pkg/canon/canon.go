// Package canon implements C1, the canonical encoder: turning a JSON
// value into deterministic UTF-8 bytes with insertion-order keys, and
// base64url encoding/decoding with padding tolerance on decode.
//
// Insertion order is achieved by marshaling plain Go structs (whose
// field declaration order encoding/json.Marshal is documented to
// preserve) rather than map[string]any, which encoding/json sorts
// alphabetically. No library in the retrieval pack offers
// insertion-order JSON construction that fits this need any better
// than the standard library does; see DESIGN.md.
package canon

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/evannetwork/vc-engine/pkg/vc"
)

// Marshal serializes v with no insignificant whitespace. v must be a
// struct (or a value whose MarshalJSON is order-preserving, such as
// json.RawMessage) rather than a map, to keep key order deterministic.
func Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vc.ErrJsonMalformed, err)
	}
	return b, nil
}

// Unmarshal parses data into v.
func Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", vc.ErrJsonMalformed, err)
	}
	return nil
}

// EncodeB64URL encodes data using the unpadded URL-safe alphabet.
func EncodeB64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeB64URL decodes s. It accepts bare unpadded input whose length
// mod 4 is 0, 2 or 3 (the base64url-without-padding form), and it also
// accepts the same input suffixed by the caller with one, two or three
// "=" characters, per spec.md §4.1.
func DecodeB64URL(s string) ([]byte, error) {
	trimmed := strings.TrimRight(s, "=")

	if b, err := base64.RawURLEncoding.DecodeString(trimmed); err == nil {
		return b, nil
	}

	return nil, fmt.Errorf("%w: %q is not valid base64url under any padding", vc.ErrDecodingError, s)
}
