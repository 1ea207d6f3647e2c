package keyresolver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDIDPrefix(t *testing.T) {
	assert.Equal(t, "did:evan:testcore:0x0ef0e584c714564a4fc0c6c367edccb0c1cbf65f",
		DIDPrefix("did:evan:testcore:0x0ef0e584c714564a4fc0c6c367edccb0c1cbf65f#key-1"))
	assert.Equal(t, "did:evan:testcore:0x0ef0e584c714564a4fc0c6c367edccb0c1cbf65f",
		DIDPrefix("did:evan:testcore:0x0ef0e584c714564a4fc0c6c367edccb0c1cbf65f"))
}

func TestGetDIDDocumentSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"did":{"publicKey":[{"id":"did:evan:testcore:0x0#key-1","ethereumAddress":"0x001de828935e8c7e4cb56fe610495cae63fb2612"}]}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)

	doc, err := c.GetDIDDocument(context.Background(), "did:evan:testcore:0x0#key-1")
	require.NoError(t, err)
	assert.Contains(t, doc, "0x001de828935e8c7e4cb56fe610495cae63fb2612")
}

func TestGetDIDDocumentNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","error":"not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)

	_, err := c.GetDIDDocument(context.Background(), "did:evan:testcore:0xdead")
	assert.Error(t, err)
}

func TestGetVCDocumentNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","error":"could not get vc document"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, nil)

	_, err := c.GetVCDocument(context.Background(), "vc:evan:testcore:invalid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not get vc document")
}
