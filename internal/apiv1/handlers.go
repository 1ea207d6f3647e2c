package apiv1

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

// CreateVCRequest is the request to build and sign a complete VC from a
// partial one.
type CreateVCRequest struct {
	PartialVC          json.RawMessage `json:"partial_vc" validate:"required"`
	VerificationMethod string          `json:"verification_method" validate:"required"`
	PrivateKey         string          `json:"private_key" validate:"required"`
}

// CreateVCReply carries the complete, signed VC.
type CreateVCReply struct {
	VC json.RawMessage `json:"vc"`
}

// CreateVC is the public create_vc operation. The façade, not the
// core engine, mints a default id when the caller omits one: the
// engine itself still requires an id per the MissingId contract.
func (c *Client) CreateVC(ctx context.Context, req *CreateVCRequest) (*CreateVCReply, error) {
	ctx, span := c.tracer.Start(ctx, "apiv1:CreateVC")
	defer span.End()

	partial, err := withDefaultID(req.PartialVC)
	if err != nil {
		return nil, err
	}

	out, err := c.engine.CreateVC(ctx, partial, req.VerificationMethod, req.PrivateKey)
	if err != nil {
		return nil, err
	}

	return &CreateVCReply{VC: json.RawMessage(out)}, nil
}

// CheckVCRequest is the request to verify a VC's proof and status.
type CheckVCRequest struct {
	VCID string          `json:"vc_id" validate:"required"`
	VC   json.RawMessage `json:"vc" validate:"required"`
}

// CheckVCReply reports whether the VC passed verification.
type CheckVCReply struct {
	Valid bool `json:"valid"`
}

// CheckVC is the public check_vc operation.
func (c *Client) CheckVC(ctx context.Context, req *CheckVCRequest) (*CheckVCReply, error) {
	ctx, span := c.tracer.Start(ctx, "apiv1:CheckVC")
	defer span.End()

	if err := c.engine.CheckVC(ctx, req.VCID, string(req.VC)); err != nil {
		return nil, err
	}

	return &CheckVCReply{Valid: true}, nil
}

// GetVCDocumentRequest identifies a remote VC to fetch.
type GetVCDocumentRequest struct {
	VCID string `uri:"vc_id" binding:"required"`
}

// GetVCDocumentReply carries the fetched VC document.
type GetVCDocumentReply struct {
	VC json.RawMessage `json:"vc"`
}

// GetVCDocument is the public get_vc_document operation.
func (c *Client) GetVCDocument(ctx context.Context, req *GetVCDocumentRequest) (*GetVCDocumentReply, error) {
	ctx, span := c.tracer.Start(ctx, "apiv1:GetVCDocument")
	defer span.End()

	doc, err := c.engine.GetVCDocument(ctx, req.VCID)
	if err != nil {
		return nil, err
	}

	return &GetVCDocumentReply{VC: json.RawMessage(doc)}, nil
}

// GetDIDDocumentRequest identifies a DID to resolve.
type GetDIDDocumentRequest struct {
	DID string `uri:"did" binding:"required"`
}

// GetDIDDocumentReply carries the resolved DID document.
type GetDIDDocumentReply struct {
	DIDDocument json.RawMessage `json:"did_document"`
}

// GetDIDDocument is the public get_did_document operation.
func (c *Client) GetDIDDocument(ctx context.Context, req *GetDIDDocumentRequest) (*GetDIDDocumentReply, error) {
	ctx, span := c.tracer.Start(ctx, "apiv1:GetDIDDocument")
	defer span.End()

	doc, err := c.engine.GetDIDDocument(ctx, req.DID)
	if err != nil {
		return nil, err
	}

	return &GetDIDDocumentReply{DIDDocument: json.RawMessage(doc)}, nil
}

// StatusReply is the health-check reply.
type StatusReply struct {
	Status string `json:"status"`
}

// Health reports liveness of the façade.
func (c *Client) Health(ctx context.Context) (*StatusReply, error) {
	return &StatusReply{Status: "ok"}, nil
}

// withDefaultID injects a generated "id" member into partial when the
// caller omitted it, leaving every other member untouched.
func withDefaultID(partial json.RawMessage) (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(partial, &fields); err != nil {
		return nil, err
	}

	if _, hasID := fields["id"]; hasID {
		return partial, nil
	}

	id, err := json.Marshal("vc:evan:testcore:" + uuid.New().String())
	if err != nil {
		return nil, err
	}
	fields["id"] = id

	return json.Marshal(fields)
}
