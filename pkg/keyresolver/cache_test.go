package keyresolver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingResolver struct {
	calls int
	doc   string
}

func (c *countingResolver) GetDIDDocument(ctx context.Context, did string) (string, error) {
	c.calls++
	return c.doc, nil
}

func TestCachingResolverCachesWithinTTL(t *testing.T) {
	inner := &countingResolver{doc: `{"publicKey":[]}`}
	cached := NewCachingResolver(inner, time.Minute)
	defer cached.Stop()

	doc1, err := cached.GetDIDDocument(context.Background(), "did:evan:testcore:0x0")
	require.NoError(t, err)
	doc2, err := cached.GetDIDDocument(context.Background(), "did:evan:testcore:0x0")
	require.NoError(t, err)

	assert.Equal(t, doc1, doc2)
	assert.Equal(t, 1, inner.calls)
}

func TestCachingResolverDisabledWithZeroTTL(t *testing.T) {
	inner := &countingResolver{doc: `{"publicKey":[]}`}
	cached := NewCachingResolver(inner, 0)
	defer cached.Stop()

	_, err := cached.GetDIDDocument(context.Background(), "did:evan:testcore:0x0")
	require.NoError(t, err)
	_, err = cached.GetDIDDocument(context.Background(), "did:evan:testcore:0x0")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}
