// Package fixedpoint implements the scaled/unscaled conversions used to
// virtualize interest across a market's suppliers and borrowers.
//
// Every conversion takes an explicit rounding direction as part of its
// name rather than as a parameter with a default, so a call site can
// never silently round against the protocol.
package fixedpoint

import (
	"math/big"

	sdkmath "cosmossdk.io/math"
)

// MaxU128 is the largest value representable by an unsigned 128-bit
// integer. NarrowToU128 rejects anything above it, reproducing the
// narrowing boundary the original contract enforces when converting its
// wide liquidation intermediates back down to a token amount.
var MaxU128 = func() sdkmath.Int {
	max := new(big.Int).Lsh(big.NewInt(1), 128)
	max.Sub(max, big.NewInt(1))
	return sdkmath.NewIntFromBigInt(max)
}()

// AmountToScaledFloor converts an unscaled token amount to its scaled
// representation, rounding down. Used by supply, withdraw and repay.
//
// Returns ErrDivideByZero if idx is zero.
func AmountToScaledFloor(amount sdkmath.Int, idx sdkmath.LegacyDec) (sdkmath.Int, error) {
	if idx.IsZero() {
		return sdkmath.Int{}, ErrDivideByZero
	}
	return sdkmath.LegacyNewDecFromInt(amount).Quo(idx).TruncateInt(), nil
}

// AmountToScaledCeil converts an unscaled token amount to its scaled
// representation, rounding up. Used by borrow, so that the scaled debt
// recorded can never understate what was actually lent out.
//
// Returns ErrDivideByZero if idx is zero.
func AmountToScaledCeil(amount sdkmath.Int, idx sdkmath.LegacyDec) (sdkmath.Int, error) {
	if idx.IsZero() {
		return sdkmath.Int{}, ErrDivideByZero
	}
	num := sdkmath.LegacyNewDecFromInt(amount)
	quotient := num.Quo(idx)
	floor := quotient.TruncateInt()
	if quotient.Sub(sdkmath.LegacyNewDecFromInt(floor)).IsZero() {
		return floor, nil
	}
	return floor.Add(sdkmath.OneInt()), nil
}

// ScaledToAmountFloor converts a scaled amount back to an unscaled token
// amount, rounding down. Used for supply totals and other protocol-facing
// reads.
func ScaledToAmountFloor(scaled sdkmath.Int, idx sdkmath.LegacyDec) sdkmath.Int {
	return sdkmath.LegacyNewDecFromInt(scaled).Mul(idx).TruncateInt()
}

// ScaledToAmountCeil converts a scaled amount back to an unscaled token
// amount, rounding up. Used for debt display and every health/limits
// check, so a borrower's owed balance never reads below what they truly
// owe.
func ScaledToAmountCeil(scaled sdkmath.Int, idx sdkmath.LegacyDec) sdkmath.Int {
	product := sdkmath.LegacyNewDecFromInt(scaled).Mul(idx)
	floor := product.TruncateInt()
	if product.Sub(sdkmath.LegacyNewDecFromInt(floor)).IsZero() {
		return floor
	}
	return floor.Add(sdkmath.OneInt())
}

// SaturatingSub returns minuend - subtrahend, floored at zero instead of
// underflowing. Mirrors the teacher's pkg/math.SaturatingSub helper.
func SaturatingSub(minuend, subtrahend sdkmath.Int) sdkmath.Int {
	if minuend.LT(subtrahend) {
		return sdkmath.ZeroInt()
	}
	return minuend.Sub(subtrahend)
}

// NarrowToU128 asserts that x fits in an unsigned 128-bit integer,
// returning ErrMathOverflow otherwise. This is the single explicit
// narrowing boundary in the liquidation path: every other amount in
// this package stays in sdkmath.Int/sdkmath.LegacyDec's native
// arbitrary precision, which never overflows mid-computation the way a
// fixed 128/256-bit type would.
func NarrowToU128(x sdkmath.Int) (sdkmath.Int, error) {
	if x.IsNegative() || x.GT(MaxU128) {
		return sdkmath.Int{}, ErrMathOverflow
	}
	return x, nil
}
