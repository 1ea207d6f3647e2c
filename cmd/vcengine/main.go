package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/evannetwork/vc-engine/internal/apiv1"
	"github.com/evannetwork/vc-engine/internal/httpserver"
	"github.com/evannetwork/vc-engine/pkg/configuration"
	"github.com/evannetwork/vc-engine/pkg/logger"
	"github.com/evannetwork/vc-engine/pkg/trace"
)

type service interface {
	Close(ctx context.Context) error
}

func main() {
	var wg sync.WaitGroup
	ctx := context.Background()

	services := make(map[string]service)

	cfg, err := configuration.New(ctx)
	if err != nil {
		panic(err)
	}

	log, err := logger.New("vc_engine", cfg.Common.Log.FolderPath, cfg.Common.Production)
	if err != nil {
		panic(err)
	}

	tracer, err := trace.New(ctx, cfg, log, "vc-engine", "vcengine")
	if err != nil {
		panic(err)
	}

	apiv1Client, err := apiv1.New(ctx, cfg, tracer, log.New("apiv1"))
	services["apiv1"] = apiv1Client
	if err != nil {
		panic(err)
	}

	httpService, err := httpserver.New(ctx, cfg, apiv1Client, tracer, log.New("httpserver"))
	services["httpserver"] = httpService
	if err != nil {
		panic(err)
	}

	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)

	<-termChan

	mainLog := log.New("main")
	mainLog.Info("HALTING SIGNAL!")

	for serviceName, svc := range services {
		if err := svc.Close(ctx); err != nil {
			mainLog.Trace("serviceName", serviceName, "error", err)
		}
	}

	if err := tracer.Shutdown(ctx); err != nil {
		mainLog.Error(err, "Tracer shutdown")
	}

	wg.Wait()

	mainLog.Info("Stopped")
}
