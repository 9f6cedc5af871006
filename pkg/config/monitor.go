package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/stonefinance/stone-sub000/pkg/types"
)

// MarketWatch names one market pair the monitor samples prices for each
// poll tick.
type MarketWatch struct {
	MarketID        string `toml:"market_id" mapstructure:"market_id"`
	CollateralDenom string `toml:"collateral_denom" mapstructure:"collateral_denom"`
	DebtDenom       string `toml:"debt_denom" mapstructure:"debt_denom"`
}

// MonitorConfig is cmd/locust-monitor's TOML configuration: a gRPC
// endpoint to query, the oracle contract to read prices from, the set
// of markets to watch, and the poll cadence.
type MonitorConfig struct {
	GRPC          types.GRPCEndpointConfig `toml:"grpc"`
	OracleAddress string                   `toml:"oracle_address"`
	Markets       []MarketWatch            `toml:"market"`
	PollInterval  time.Duration            `toml:"poll_interval_ms"`
	LogLevel      string                   `toml:"log_level"`
}

// LoadMonitorConfig reads and parses a MonitorConfig from a TOML file,
// adapted from LoadConfig's file-existence-check-then-parse shape.
func LoadMonitorConfig(configPath string) (*MonitorConfig, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found at path: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg MonitorConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.PollInterval *= time.Millisecond
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 30 * time.Second
	}

	return &cfg, nil
}
