package httpserver

import (
	"context"

	"github.com/evannetwork/vc-engine/internal/apiv1"
	"github.com/evannetwork/vc-engine/pkg/helpers"

	"go.opentelemetry.io/otel/codes"

	"github.com/gin-gonic/gin"
)

func (s *Service) endpointStatus(ctx context.Context, c *gin.Context) (any, error) {
	ctx, span := s.tp.Start(ctx, "httpserver:endpointStatus")
	defer span.End()

	reply, err := s.apiv1.Health(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return reply, nil
}

func (s *Service) endpointCreateVC(ctx context.Context, c *gin.Context) (any, error) {
	ctx, span := s.tp.Start(ctx, "httpserver:endpointCreateVC")
	defer span.End()

	req := &apiv1.CreateVCRequest{}
	if err := s.client.Binding.FastAndSimple(ctx, c, req); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if err := helpers.CheckSimple(req); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	reply, err := s.apiv1.CreateVC(ctx, req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return reply, nil
}

func (s *Service) endpointCheckVC(ctx context.Context, c *gin.Context) (any, error) {
	ctx, span := s.tp.Start(ctx, "httpserver:endpointCheckVC")
	defer span.End()

	req := &apiv1.CheckVCRequest{}
	if err := s.client.Binding.FastAndSimple(ctx, c, req); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if err := helpers.CheckSimple(req); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	reply, err := s.apiv1.CheckVC(ctx, req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return reply, nil
}

func (s *Service) endpointGetVCDocument(ctx context.Context, c *gin.Context) (any, error) {
	ctx, span := s.tp.Start(ctx, "httpserver:endpointGetVCDocument")
	defer span.End()

	req := &apiv1.GetVCDocumentRequest{}
	if err := s.client.Binding.Request(ctx, c, req); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	reply, err := s.apiv1.GetVCDocument(ctx, req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return reply, nil
}

func (s *Service) endpointGetDIDDocument(ctx context.Context, c *gin.Context) (any, error) {
	ctx, span := s.tp.Start(ctx, "httpserver:endpointGetDIDDocument")
	defer span.End()

	req := &apiv1.GetDIDDocumentRequest{}
	if err := s.client.Binding.Request(ctx, c, req); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	reply, err := s.apiv1.GetDIDDocument(ctx, req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return reply, nil
}
