package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	wasmdtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"go.uber.org/zap"

	"github.com/stonefinance/stone-sub000/pkg/base"
	"github.com/stonefinance/stone-sub000/pkg/config"
	"github.com/stonefinance/stone-sub000/pkg/grpc"
	"github.com/stonefinance/stone-sub000/pkg/oracle/pyth"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "monitor.toml", "path to locust-monitor config")
	flag.Parse()

	cfg, err := config.LoadMonitorConfig(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	conn, err := grpc.SetupGRPCConnection(cfg.GRPC.Address, cfg.GRPC.UseTLS)
	if err != nil {
		logger.Fatal("connect to grpc endpoint", zap.Error(err))
	}
	defer conn.Close()

	queryClient := wasmdtypes.NewQueryClient(conn)
	adapter := pyth.NewAdapter(queryClient, cfg.OracleAddress)

	poller := newPricePoller(logger, adapter, cfg.Markets)
	monitor := base.NewMonitor(cfg, logger, poller)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := monitor.Start(); err != nil {
		logger.Fatal("start monitor", zap.Error(err))
	}

	logger.Info("locust-monitor running",
		zap.String("oracle_address", cfg.OracleAddress),
		zap.Int("markets", len(cfg.Markets)),
		zap.Duration("poll_interval", cfg.PollInterval),
	)

	<-ctx.Done()
	logger.Info("shutdown signal received")
	monitor.Stop()
}

func newLogger(level string) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if level != "" {
		parsed, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, err
		}
		zapCfg.Level = parsed
	}
	return zapCfg.Build()
}
