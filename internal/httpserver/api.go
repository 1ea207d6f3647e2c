package httpserver

import (
	"context"

	"github.com/evannetwork/vc-engine/internal/apiv1"
)

// Apiv1 is the subset of apiv1.Client the façade depends on.
type Apiv1 interface {
	Health(ctx context.Context) (*apiv1.StatusReply, error)
	CreateVC(ctx context.Context, req *apiv1.CreateVCRequest) (*apiv1.CreateVCReply, error)
	CheckVC(ctx context.Context, req *apiv1.CheckVCRequest) (*apiv1.CheckVCReply, error)
	GetVCDocument(ctx context.Context, req *apiv1.GetVCDocumentRequest) (*apiv1.GetVCDocumentReply, error)
	GetDIDDocument(ctx context.Context, req *apiv1.GetDIDDocumentRequest) (*apiv1.GetDIDDocumentReply, error)
}
