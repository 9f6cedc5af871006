package market

import (
	sdkmath "cosmossdk.io/math"

	"github.com/stonefinance/stone-sub000/pkg/market/fixedpoint"
)

// State is the mutable, per-market accounting record: indices, rates,
// totals and timestamps. Mirrors
// original_source/packages/types/src/market.rs's MarketState, and is
// generalized from pkg/contracts/mars/redbank/market.go's Market
// struct, which uses the same index-based accounting for a single
// asset but does not split interest into protocol/curator/supplier
// shares.
type State struct {
	BorrowIndex       sdkmath.LegacyDec
	LiquidityIndex    sdkmath.LegacyDec
	BorrowRate        sdkmath.LegacyDec
	LiquidityRate     sdkmath.LegacyDec
	TotalSupplyScaled sdkmath.Int
	TotalDebtScaled   sdkmath.Int
	TotalCollateral   sdkmath.Int
	LastUpdate        uint64
	CreatedAt         uint64

	ProtocolFeeAccrued sdkmath.Int
	CuratorFeeAccrued  sdkmath.Int
}

// NewState builds the initial state for a market created at timestamp.
func NewState(timestamp uint64) State {
	return State{
		BorrowIndex:        sdkmath.LegacyOneDec(),
		LiquidityIndex:     sdkmath.LegacyOneDec(),
		BorrowRate:         sdkmath.LegacyZeroDec(),
		LiquidityRate:      sdkmath.LegacyZeroDec(),
		TotalSupplyScaled:  sdkmath.ZeroInt(),
		TotalDebtScaled:    sdkmath.ZeroInt(),
		TotalCollateral:    sdkmath.ZeroInt(),
		LastUpdate:         timestamp,
		CreatedAt:          timestamp,
		ProtocolFeeAccrued: sdkmath.ZeroInt(),
		CuratorFeeAccrued:  sdkmath.ZeroInt(),
	}
}

// TotalSupply returns the actual (unscaled) total supply, floored.
func (s State) TotalSupply() sdkmath.Int {
	return fixedpoint.ScaledToAmountFloor(s.TotalSupplyScaled, s.LiquidityIndex)
}

// TotalDebt returns the actual (unscaled) total debt, ceiled per
// spec.md §4.1's table (debt reads round up).
func (s State) TotalDebt() sdkmath.Int {
	return fixedpoint.ScaledToAmountCeil(s.TotalDebtScaled, s.BorrowIndex)
}

// Utilization returns total_debt / total_supply, or zero if there is no
// supply.
func (s State) Utilization() sdkmath.LegacyDec {
	supply := s.TotalSupply()
	if supply.IsZero() {
		return sdkmath.LegacyZeroDec()
	}
	return sdkmath.LegacyNewDecFromInt(s.TotalDebt()).Quo(sdkmath.LegacyNewDecFromInt(supply))
}

// AvailableLiquidity returns total_supply - total_debt, floored at zero.
// This is spec.md §3 invariant 1's non-negativity, enforced by
// construction rather than asserted after the fact.
func (s State) AvailableLiquidity() sdkmath.Int {
	return fixedpoint.SaturatingSub(s.TotalSupply(), s.TotalDebt())
}
