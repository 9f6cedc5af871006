package market

import sdkmath "cosmossdk.io/math"

// Params holds the governable risk and fee parameters for a market,
// mirroring original_source/packages/types/src/market.rs's MarketParams.
type Params struct {
	LoanToValue            sdkmath.LegacyDec
	LiquidationThreshold   sdkmath.LegacyDec
	LiquidationBonus       sdkmath.LegacyDec
	LiquidationProtocolFee sdkmath.LegacyDec
	CloseFactor            sdkmath.LegacyDec
	DustDebtThreshold      sdkmath.Int
	InterestRateModel      InterestRateModel
	ProtocolFee            sdkmath.LegacyDec
	CuratorFee             sdkmath.LegacyDec
	SupplyCap              *sdkmath.Int
	BorrowCap              *sdkmath.Int
	Enabled                bool
	IsMutable              bool
	LtvLastUpdate          uint64
}

// LtvCooldownSeconds is the default cooldown between LTV changes,
// spec.md §4.8: 604_800 seconds (7 days).
const LtvCooldownSeconds = 7 * 24 * 60 * 60

// MaxLtvStep is the maximum absolute change allowed to LoanToValue in a
// single governance update, spec.md §4.8: 0.05.
var MaxLtvStep = sdkmath.LegacyNewDecWithPrec(5, 2)

// MinLtv and MaxLtv bound the allowed range for LoanToValue updates.
var (
	MinLtv = sdkmath.LegacyNewDecWithPrec(1, 2)
	MaxLtv = sdkmath.LegacyNewDecWithPrec(95, 2)
)

// MaxCuratorFee bounds CuratorFee, spec.md §3 invariant 6.
var MaxCuratorFee = sdkmath.LegacyNewDecWithPrec(25, 2)

// MaxDustDebtThreshold bounds DustDebtThreshold, spec.md §3 invariant 6.
var MaxDustDebtThreshold = sdkmath.NewInt(10_000_000)

// MinLiquidationBonus and MaxLiquidationBonus bound LiquidationBonus.
var (
	MinLiquidationBonus = sdkmath.LegacyNewDecWithPrec(3, 2)
	MaxLiquidationBonus = sdkmath.LegacyNewDecWithPrec(15, 2)
)

// Validate checks every invariant from spec.md §3 that applies to a
// single Params value in isolation (invariant 6).
func (p Params) Validate() error {
	if p.LiquidationThreshold.LTE(p.LoanToValue) {
		return NewInvalidParameterError("liquidation_threshold must exceed loan_to_value")
	}
	if p.LiquidationThreshold.GTE(sdkmath.LegacyOneDec()) {
		return NewInvalidParameterError("liquidation_threshold must be less than 1.0")
	}
	if p.LoanToValue.GTE(sdkmath.LegacyOneDec()) || p.LoanToValue.IsNegative() {
		return NewInvalidParameterError("loan_to_value must be in [0, 1)")
	}
	if p.LiquidationBonus.LT(MinLiquidationBonus) || p.LiquidationBonus.GT(MaxLiquidationBonus) {
		return NewInvalidParameterError("liquidation_bonus must be between 3% and 15%")
	}
	if p.ProtocolFee.Add(p.CuratorFee).GTE(sdkmath.LegacyOneDec()) {
		return NewInvalidParameterError("protocol_fee + curator_fee must be less than 1.0")
	}
	if p.CuratorFee.GT(MaxCuratorFee) {
		return NewCuratorFeeExceedsMaxError()
	}
	if p.DustDebtThreshold.GT(MaxDustDebtThreshold) {
		return NewInvalidParameterError("dust_debt_threshold exceeds maximum of 10^7 base units")
	}
	if p.CloseFactor.IsNegative() || p.CloseFactor.GT(sdkmath.LegacyOneDec()) {
		return NewInvalidParameterError("close_factor must be in [0, 1]")
	}
	return p.InterestRateModel.Validate()
}
