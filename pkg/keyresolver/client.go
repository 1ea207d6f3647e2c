// Package keyresolver is the glue layer: HTTP wrappers that fetch DID
// documents, VC documents and credential-status responses from
// evan.network endpoints, plus a DID-document resolution cache.
// Grounded on the teacher's pkg/keyresolver (collaborator adapters) and
// pkg/httphelpers client idiom, narrowed to the three GET endpoints
// spec.md §6 names.
package keyresolver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/evannetwork/vc-engine/pkg/logger"
	"github.com/evannetwork/vc-engine/pkg/vc"
)

// DIDResolver is the single-capability collaborator the VC engine
// depends on: given a DID, return its DID document as a JSON string.
type DIDResolver interface {
	GetDIDDocument(ctx context.Context, did string) (string, error)
}

// Client is the default HTTP-backed DIDResolver, also able to fetch VC
// documents and arbitrary credential-status endpoints. Its *http.Client
// is safe for concurrent use and may be shared across verifications.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logger.Log
}

// New creates a Client targeting networkHost (e.g.
// "core.demo.evan.network"). networkHost may optionally carry its own
// scheme (e.g. in tests, an "http://127.0.0.1:port" httptest server
// URL); otherwise "https://" is assumed, matching spec.md §6.
func New(networkHost string, timeout time.Duration, log *logger.Log) *Client {
	baseURL := networkHost
	if !strings.Contains(baseURL, "://") {
		baseURL = "https://" + baseURL
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        log,
	}
}

// DIDPrefix returns the DID substring before the first "#", i.e. the
// DID without its key fragment.
func DIDPrefix(didOrVerificationMethod string) string {
	if idx := strings.IndexByte(didOrVerificationMethod, '#'); idx != -1 {
		return didOrVerificationMethod[:idx]
	}
	return didOrVerificationMethod
}

// GetDIDDocument fetches https://<network-host>/did/<did> and returns
// the embedded DID document as a JSON string.
func (c *Client) GetDIDDocument(ctx context.Context, did string) (string, error) {
	url := fmt.Sprintf("%s/did/%s", c.baseURL, DIDPrefix(did))

	body, err := c.get(ctx, url)
	if err != nil {
		return "", fmt.Errorf("%w: %v", vc.ErrDidResolutionFailed, err)
	}

	var envelope vc.DIDEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", fmt.Errorf("%w: could not parse did document response: %v", vc.ErrDidResolutionFailed, err)
	}
	if envelope.Status == "error" {
		return "", fmt.Errorf("%w: could not get did document: %s", vc.ErrDidResolutionFailed, envelope.Error)
	}
	if len(envelope.DID) == 0 {
		return "", fmt.Errorf("%w: did document response missing \"did\"", vc.ErrDidResolutionFailed)
	}

	return string(envelope.DID), nil
}

// GetVCDocument fetches https://<network-host>/vc/<vcID> and returns
// the embedded VC document as a JSON string.
func (c *Client) GetVCDocument(ctx context.Context, vcID string) (string, error) {
	url := fmt.Sprintf("%s/vc/%s", c.baseURL, vcID)

	body, err := c.get(ctx, url)
	if err != nil {
		return "", fmt.Errorf("%w: could not get vc document: %v", vc.ErrNetworkError, err)
	}

	var envelope vc.VCEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", fmt.Errorf("%w: could not parse vc document response: %v", vc.ErrNetworkError, err)
	}
	if envelope.Status == "error" {
		return "", fmt.Errorf("%w: could not get vc document: %s", vc.ErrNetworkError, envelope.Error)
	}
	if len(envelope.VC) == 0 {
		return "", fmt.Errorf("%w: could not get vc document: vc document response missing \"vc\"", vc.ErrNetworkError)
	}

	return string(envelope.VC), nil
}

// FetchStatus performs a GET against an arbitrary credentialStatus.id
// URL and parses the response.
func (c *Client) FetchStatus(ctx context.Context, statusURL string) (*vc.StatusResponse, error) {
	body, err := c.get(ctx, statusURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vc.ErrStatusQueryFailed, err)
	}

	var status vc.StatusResponse
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("%w: could not parse status response: %v", vc.ErrStatusQueryFailed, err)
	}
	if status.Status == "error" {
		return nil, fmt.Errorf("%w: %s", vc.ErrStatusQueryFailed, status.Error)
	}

	return &status, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if c.log != nil {
		c.log.Debug("keyresolver:get", "url", url, "status", resp.StatusCode)
	}

	return body, nil
}
