package market

import "github.com/stonefinance/stone-sub000/pkg/oracle"

// Config is set at instantiation and never changes afterward, mirroring
// original_source/packages/types/src/market.rs's MarketConfig.
type Config struct {
	Factory              string
	Curator              string
	OracleConfig         oracle.Config
	CollateralDenom      string
	DebtDenom            string
	ProtocolFeeCollector string
}
