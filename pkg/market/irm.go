package market

import (
	sdkmath "cosmossdk.io/math"
)

// InterestRateModel is a two-slope piecewise-linear curve in utilization,
// with a kink at OptimalUtilization. Below the kink the borrow rate grows
// from BaseRate at slope Slope1; above it, from BaseRate+Slope1 at slope
// Slope2. This shape is grounded on
// pkg/contracts/mars/redbank/irm.go's InterestRateModelRational, but the
// validation rules below follow spec.md exactly rather than the
// teacher's additional Slope1 < Slope2 constraint.
type InterestRateModel struct {
	OptimalUtilization sdkmath.LegacyDec
	BaseRate           sdkmath.LegacyDec
	Slope1             sdkmath.LegacyDec
	Slope2             sdkmath.LegacyDec
}

// DefaultInterestRateModel matches the parameters used throughout
// spec.md's worked scenarios (S1, S5): U*=0.8, r0=0, s1=0.04, s2=3.0.
func DefaultInterestRateModel() InterestRateModel {
	return InterestRateModel{
		OptimalUtilization: sdkmath.LegacyNewDecWithPrec(8, 1),
		BaseRate:           sdkmath.LegacyZeroDec(),
		Slope1:             sdkmath.LegacyNewDecWithPrec(4, 2),
		Slope2:             sdkmath.LegacyNewDec(3),
	}
}

// Validate checks U* <= 1 and that every parameter is non-negative, per
// spec.md §4.2. It deliberately does not require Slope1 < Slope2.
func (m InterestRateModel) Validate() error {
	if m.OptimalUtilization.IsNegative() || m.OptimalUtilization.GT(sdkmath.LegacyOneDec()) {
		return NewInvalidInterestRateModelError("optimal_utilization must be in [0, 1]")
	}
	if m.BaseRate.IsNegative() {
		return NewInvalidInterestRateModelError("base_rate must be non-negative")
	}
	if m.Slope1.IsNegative() {
		return NewInvalidInterestRateModelError("slope1 must be non-negative")
	}
	if m.Slope2.IsNegative() {
		return NewInvalidInterestRateModelError("slope2 must be non-negative")
	}
	return nil
}

// BorrowRate computes the annualized borrow rate at the given
// utilization U ∈ [0,1], per spec.md §4.2.
func (m InterestRateModel) BorrowRate(utilization sdkmath.LegacyDec) sdkmath.LegacyDec {
	if utilization.LTE(m.OptimalUtilization) {
		if m.OptimalUtilization.IsZero() {
			return m.BaseRate
		}
		return m.BaseRate.Add(utilization.Quo(m.OptimalUtilization).Mul(m.Slope1))
	}
	if m.OptimalUtilization.Equal(sdkmath.LegacyOneDec()) {
		return m.BaseRate.Add(m.Slope1)
	}
	excess := utilization.Sub(m.OptimalUtilization)
	denom := sdkmath.LegacyOneDec().Sub(m.OptimalUtilization)
	return m.BaseRate.Add(m.Slope1).Add(excess.Quo(denom).Mul(m.Slope2))
}

// LiquidityRate derives the supplier-facing rate from the borrow rate,
// utilization, and the fees skimmed from interest: liquidity_rate =
// borrow_rate * U * (1 - protocol_fee - curator_fee).
func LiquidityRate(borrowRate, utilization, protocolFee, curatorFee sdkmath.LegacyDec) sdkmath.LegacyDec {
	retained := sdkmath.LegacyOneDec().Sub(protocolFee).Sub(curatorFee)
	if retained.IsNegative() {
		retained = sdkmath.LegacyZeroDec()
	}
	return borrowRate.Mul(utilization).Mul(retained)
}
