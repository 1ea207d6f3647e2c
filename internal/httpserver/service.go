// Package httpserver is the optional HTTP façade exposing the engine's
// four public operations as REST endpoints, grounded on the teacher's
// internal/issuer/httpserver service shape and built on
// pkg/httphelpers for gin wiring, middleware and rendering.
package httpserver

import (
	"context"
	"net/http"

	"github.com/evannetwork/vc-engine/pkg/httphelpers"
	"github.com/evannetwork/vc-engine/pkg/logger"
	"github.com/evannetwork/vc-engine/pkg/model"
	"github.com/evannetwork/vc-engine/pkg/trace"

	"github.com/gin-gonic/gin"
)

// Service is the httpserver service object
type Service struct {
	config *model.Cfg
	log    *logger.Log
	server *http.Server
	apiv1  Apiv1
	gin    *gin.Engine
	client *httphelpers.Client
	tp     *trace.Tracer
}

// New creates and starts a new httpserver Service
func New(ctx context.Context, config *model.Cfg, api Apiv1, tracer *trace.Tracer, log *logger.Log) (*Service, error) {
	client, err := httphelpers.New(ctx, tracer, config, log)
	if err != nil {
		return nil, err
	}

	s := &Service{
		config: config,
		log:    log,
		apiv1:  api,
		server: &http.Server{},
		client: client,
		tp:     tracer,
	}

	s.gin = gin.New()

	rgRoot, err := s.client.Server.Default(ctx, s.server, s.gin, config.APIServer.Addr)
	if err != nil {
		return nil, err
	}

	s.client.Server.RegEndpoint(ctx, rgRoot, http.MethodGet, "health", http.StatusOK, s.endpointStatus)

	rgAPIv1 := rgRoot.Group("api/v1")
	s.client.Server.RegEndpoint(ctx, rgAPIv1, http.MethodPost, "/vc", http.StatusCreated, s.endpointCreateVC)
	s.client.Server.RegEndpoint(ctx, rgAPIv1, http.MethodPost, "/vc/check", http.StatusOK, s.endpointCheckVC)
	s.client.Server.RegEndpoint(ctx, rgAPIv1, http.MethodGet, "/vc/:vc_id", http.StatusOK, s.endpointGetVCDocument)
	s.client.Server.RegEndpoint(ctx, rgAPIv1, http.MethodGet, "/did/:did", http.StatusOK, s.endpointGetDIDDocument)

	go func() {
		if err := s.client.Server.ListenAndServe(ctx, s.server, config.APIServer); err != nil {
			s.log.New("http").Trace("listen_error", "error", err)
		}
	}()

	s.log.Info("started")

	return s, nil
}

// Close shuts down the HTTP server
func (s *Service) Close(ctx context.Context) error {
	s.log.Info("Quit")
	return s.server.Shutdown(ctx)
}
