// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	g "github.com/mahabubulhasibshawon/shiptrack/internal/adapters/grpc"
	"github.com/mahabubulhasibshawon/shiptrack/internal/adapters/rest"
	"github.com/mahabubulhasibshawon/shiptrack/internal/bootstrap"
	"github.com/mahabubulhasibshawon/shiptrack/internal/config"
	"github.com/mahabubulhasibshawon/shiptrack/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; fall back to a production logger at info.
		zap.Must(zap.NewProduction()).Fatal("invalid configuration", zap.Error(err))
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		zap.Must(zap.NewProduction()).Fatal("failed to build logger", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error("server exited", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

// run serves until ctx is canceled or a listener fails. Everything it opens
// is closed before it returns.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialise storage: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("close failed", zap.Error(err))
		}
	}()

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCAddr, err)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(g.LoggingInterceptor(logger)))
	g.RegisterShipmentServiceServer(grpcServer, g.NewServer(app.Service, logger))

	gin.SetMode(gin.ReleaseMode)
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           rest.NewRouter(rest.NewHandler(app.Service, logger)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("gRPC server listening", zap.String("addr", cfg.GRPCAddr))
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc: %w", err)
		}
	}()
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	grpcServer.GracefulStop()
	return serveErr
}
