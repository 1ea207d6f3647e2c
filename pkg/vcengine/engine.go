package vcengine

import (
	"context"
	"time"

	"github.com/evannetwork/vc-engine/pkg/keyresolver"
	"github.com/evannetwork/vc-engine/pkg/logger"
)

// Engine wires the Builder, the Verifier and the evan.network HTTP
// collaborator together behind the four public operations spec.md §6
// names, so a caller (cmd/vcengine's HTTP façade or a direct Go
// embedder) needs only one type to depend on.
type Engine struct {
	builder  *Builder
	verifier *Verifier
	client   *keyresolver.Client
}

// Config holds the parameters needed to build an Engine against a
// running evan.network core instance.
type Config struct {
	NetworkHost        string
	DIDFetchTimeout    time.Duration
	StatusFetchTimeout time.Duration
	DIDCacheTTL        time.Duration
}

// NewEngine builds an Engine. A DIDCacheTTL of zero disables DID
// document caching. DID and VC document GETs are bounded by
// DIDFetchTimeout, credentialStatus GETs by StatusFetchTimeout.
func NewEngine(cfg Config, log *logger.Log) *Engine {
	client := keyresolver.New(cfg.NetworkHost, cfg.DIDFetchTimeout, log)
	statusClient := keyresolver.New(cfg.NetworkHost, cfg.StatusFetchTimeout, log)
	resolver := keyresolver.NewCachingResolver(client, cfg.DIDCacheTTL)

	return &Engine{
		builder:  NewBuilder(),
		verifier: NewVerifier(resolver, statusClient, log),
		client:   client,
	}
}

// CreateVC is the public create_vc operation.
func (e *Engine) CreateVC(ctx context.Context, partialJSON []byte, verificationMethod, privateKeyHex string) (string, error) {
	return e.builder.CreateVC(ctx, partialJSON, verificationMethod, privateKeyHex)
}

// CheckVC is the public check_vc operation.
func (e *Engine) CheckVC(ctx context.Context, vcID, vcJSON string) error {
	return e.verifier.CheckVC(ctx, vcID, vcJSON)
}

// GetVCDocument is the public get_vc_document operation.
func (e *Engine) GetVCDocument(ctx context.Context, vcID string) (string, error) {
	return e.client.GetVCDocument(ctx, vcID)
}

// GetDIDDocument is the public get_did_document operation.
func (e *Engine) GetDIDDocument(ctx context.Context, did string) (string, error) {
	return e.client.GetDIDDocument(ctx, did)
}
