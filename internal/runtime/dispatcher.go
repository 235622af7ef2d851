package runtime

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

type ServiceCtx struct {
	deps            *dependencies
	shutdownChannel chan os.Signal
	stopRequested   chan struct{}
	stopOnce        sync.Once
	serverCtx       context.Context
	serverStopFunc  context.CancelFunc
	serverReady     chan struct{}
	listenHost      string
	listenPort      int
}

func New(opts ...ServiceOption) *ServiceCtx {
	ctx := &ServiceCtx{
		shutdownChannel: make(chan os.Signal, 1),
		stopRequested:   make(chan struct{}),
	}

	for _, opt := range opts {
		opt(ctx)
	}

	return ctx
}

func (c *ServiceCtx) Run() {
	if err := c.build(); err != nil {
		log.Fatalf("failed to build service: %v", err)
	}

	c.initialScan()
	c.startService()
	c.shutdownHook()

	select {
	case <-c.serverCtx.Done():
	case <-c.shutdownChannel:
		defer close(c.shutdownChannel)
	case <-c.stopRequested:
	}

	c.shutdown()
}

func (c *ServiceCtx) build() error {
	c.serverCtx, c.serverStopFunc = context.WithCancel(context.Background())

	var err error

	c.deps, err = initializeDependencies(c.serverCtx, c.RequestStop)
	if err != nil {
		return fmt.Errorf("initializing dependencies: %w", err)
	}

	c.applyListenOverride()

	return nil
}

func (c *ServiceCtx) applyListenOverride() {
	if c.listenHost != "" {
		c.deps.config.GRPCServer.Host = c.listenHost
	}

	if c.listenPort > 0 {
		c.deps.config.GRPCServer.Port = uint(c.listenPort)
	}
}

// RequestStop signals the dispatcher to begin a graceful shutdown. It is safe
// to call from an in-flight RPC: the signal is asynchronous, so the reply has
// a chance to reach the caller before the server stops accepting work.
func (c *ServiceCtx) RequestStop() {
	c.stopOnce.Do(func() {
		close(c.stopRequested)
	})
}

// initialScan populates the registry before the server starts answering. A
// failed scan is not fatal: the service comes up with an empty registry and a
// later rescan can recover.
func (c *ServiceCtx) initialScan() {
	if err := c.deps.controlService.Rescan(c.serverCtx); err != nil {
		c.deps.infra.logger.Warn().
			Err(err).
			Msg("initial device scan failed, starting with an empty registry")

		return
	}

	c.deps.infra.logger.Info().
		Int("devices", c.deps.repos.deviceRegistry.Len()).
		Msg("initial device scan complete")
}

func (c *ServiceCtx) startService() {
	go func() {
		if c.serverReady != nil {
			c.serverReady <- struct{}{}
		}

		addr := net.JoinHostPort(c.deps.config.GRPCServer.Host, fmt.Sprintf("%d", c.deps.config.GRPCServer.Port))
		listener, err := net.Listen("tcp", addr)
		if err != nil {
			log.Fatalf("failed to listen on %s: %v", addr, err)
		}

		c.deps.infra.logger.Info().
			Str("address", addr).
			Msg("starting the gRPC server")

		if c.serverReady != nil {
			close(c.serverReady)
		}

		if err := c.deps.infra.grpcServer.Serve(listener); err != nil {
			log.Fatalf("gRPC server error: %v", err)
		}
	}()
}

func (c *ServiceCtx) shutdownHook() {
	signal.Notify(c.shutdownChannel, syscall.SIGINT, syscall.SIGTERM)
}

func (c *ServiceCtx) shutdown() {
	c.deps.infra.logger.Info().Msg("shutting down service...")

	c.deps.controlService.BeginShutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.deps.config.GRPCServer.ShutdownTimeout)
	defer cancel()

	go func() {
		<-shutdownCtx.Done()

		if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
			c.deps.infra.logger.Error().Msg("graceful shutdown timed out.. forcing exit.")
			c.deps.infra.grpcServer.Stop()
			os.Exit(1)
		}
	}()

	drainCtx, drainCancel := context.WithTimeout(shutdownCtx, c.deps.config.GRPCServer.DrainTimeout)
	defer drainCancel()

	if err := c.deps.controlService.Drain(drainCtx); err != nil {
		c.deps.infra.logger.Warn().
			Err(err).
			Msg("in-flight device commands did not drain in time")
	}

	c.deps.infra.grpcServer.GracefulStop()
	c.serverStopFunc()

	c.cleanup(shutdownCtx)

	c.deps.infra.logger.Info().Msg("service shutdown complete")
}

func (c *ServiceCtx) WaitForServer() {
	if c.serverReady != nil {
		<-c.serverReady
	}
}

func (c *ServiceCtx) cleanup(shutdownCtx context.Context) {
	c.deps.infra.logger.Info().Msg("cleaning up resources...")

	for resource, cleanupFn := range c.deps.cleanupFuncs {
		if err := cleanupFn(shutdownCtx); err != nil {
			c.deps.infra.logger.Error().
				Err(err).
				Str("resource", resource).
				Msg("failed to shutdown the resource gracefully")
		}
	}

	c.deps.infra.logger.Info().Msg("cleanup completed")
}
