// Command shipctl manages shipment records from the terminal against the same
// backend the server is configured with.
package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/shiptrack/internal/bootstrap"
	"github.com/mahabubulhasibshawon/shiptrack/internal/config"
	"github.com/mahabubulhasibshawon/shiptrack/internal/logging"
)

func openConfigured(ctx context.Context) (*bootstrap.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewConsole(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	// Console output is for warnings only; the command prints its own results.
	logger = logger.WithOptions(zap.IncreaseLevel(zap.WarnLevel))
	return bootstrap.New(ctx, cfg, logger)
}

func main() {
	if err := newRootCmd(openConfigured).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
