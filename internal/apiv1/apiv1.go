// Package apiv1 is the business-logic layer behind the optional HTTP
// façade: it binds the four public engine operations to request/reply
// types, the way the teacher's internal/issuer/apiv1 binds credential
// construction to its own request/reply types.
package apiv1

import (
	"context"
	"time"

	"github.com/evannetwork/vc-engine/pkg/logger"
	"github.com/evannetwork/vc-engine/pkg/model"
	"github.com/evannetwork/vc-engine/pkg/trace"
	"github.com/evannetwork/vc-engine/pkg/vcengine"
)

// Client holds the public api object
type Client struct {
	cfg    *model.Cfg
	log    *logger.Log
	tracer *trace.Tracer
	engine *vcengine.Engine
}

// New creates a new instance of the public api
func New(ctx context.Context, cfg *model.Cfg, tracer *trace.Tracer, log *logger.Log) (*Client, error) {
	engineCfg := vcengine.Config{
		NetworkHost:        cfg.Engine.NetworkHost,
		DIDFetchTimeout:    time.Duration(cfg.Engine.DIDFetchTimeout) * time.Second,
		StatusFetchTimeout: time.Duration(cfg.Engine.StatusFetchTimeout) * time.Second,
		DIDCacheTTL:        time.Duration(cfg.Engine.DIDCacheTTLSeconds) * time.Second,
	}

	c := &Client{
		cfg:    cfg,
		log:    log,
		tracer: tracer,
		engine: vcengine.NewEngine(engineCfg, log.New("vcengine")),
	}

	c.log.Info("Started")

	return c, nil
}

// Close is a no-op kept to satisfy the façade's service interface. It
// does not stop the engine's DID-document cache goroutine or close the
// engine's idle HTTP connections.
func (c *Client) Close(ctx context.Context) error {
	return nil
}
