package market

import (
	"fmt"

	cosmoserrors "cosmossdk.io/errors"
)

// codespace registers this package's errors with cosmossdk.io/errors,
// the same wrapping convention the teacher's dependency graph already
// carries via cosmos-sdk, used here for the "Std" passthrough case the
// way the original Rust ContractError::Std(#[from] StdError) variant
// passes through host errors.
const codespace = "market"

var rootErr = cosmoserrors.Register(codespace, 1, "market error")

// Kind enumerates the non-overlapping error categories from spec.md §7.
type Kind string

const (
	KindZeroAmount              Kind = "zero_amount"
	KindWrongDenom              Kind = "wrong_denom"
	KindNoFundsSent             Kind = "no_funds_sent"
	KindSameDenom               Kind = "same_denom"
	KindInvalidParameter        Kind = "invalid_parameter"
	KindUnauthorized            Kind = "unauthorized"
	KindExceedsLtv              Kind = "exceeds_ltv"
	KindInsufficientCollateral  Kind = "insufficient_collateral"
	KindInsufficientLiquidity   Kind = "insufficient_liquidity"
	KindSupplyCapExceeded       Kind = "supply_cap_exceeded"
	KindBorrowCapExceeded       Kind = "borrow_cap_exceeded"
	KindNotLiquidatable         Kind = "not_liquidatable"
	KindNoDebt                  Kind = "no_debt"
	KindNoSupply                Kind = "no_supply"
	KindNoCollateral            Kind = "no_collateral"
	KindMarketDisabled          Kind = "market_disabled"
	KindMarketImmutable         Kind = "market_immutable"
	KindLtvCooldownNotElapsed   Kind = "ltv_cooldown_not_elapsed"
	KindLtvChangeExceedsMax     Kind = "ltv_change_exceeds_max"
	KindCuratorFeeExceedsMax    Kind = "curator_fee_exceeds_max"
	KindInvalidOracle           Kind = "invalid_oracle"
	KindMathOverflow            Kind = "math_overflow"
	KindDivideByZero            Kind = "divide_by_zero"
	KindInvalidInterestRateModel Kind = "invalid_interest_rate_model"
)

// Error is the structured error type every market operation returns on
// failure. Fields carries per-kind structured context (e.g.
// remaining_seconds, health_factor, age_seconds) sufficient for a
// client to diagnose without re-querying state, matching spec.md §7's
// requirement and translating the original's thiserror named-field
// enum variants into a single Go type with a Kind discriminant.
type Error struct {
	Kind   Kind
	Msg    string
	Fields map[string]string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap lets errors.Is/errors.As match against the registered
// cosmossdk.io/errors root, the way the original's Std(StdError) variant
// passes host errors through unchanged.
func (e *Error) Unwrap() error {
	return rootErr
}

func newError(kind Kind, msg string, fields map[string]string) *Error {
	return &Error{Kind: kind, Msg: msg, Fields: fields}
}

func NewZeroAmountError() *Error {
	return newError(KindZeroAmount, "zero amount not allowed", nil)
}

func NewWrongDenomError(expected, got string) *Error {
	return newError(KindWrongDenom, "wrong denom sent", map[string]string{
		"expected": expected, "got": got,
	})
}

func NewSameDenomError() *Error {
	return newError(KindSameDenom, "collateral and debt must be different", nil)
}

func NewUnauthorizedError() *Error {
	return newError(KindUnauthorized, "unauthorized", nil)
}

func NewExceedsLtvError(maxBorrow, requested string) *Error {
	return newError(KindExceedsLtv, "borrow would exceed LTV limit", map[string]string{
		"max_borrow": maxBorrow, "requested": requested,
	})
}

func NewInsufficientCollateralError(healthFactor string) *Error {
	return newError(KindInsufficientCollateral, "insufficient collateral", map[string]string{
		"health_factor": healthFactor,
	})
}

func NewInsufficientLiquidityError(available, requested string) *Error {
	return newError(KindInsufficientLiquidity, "insufficient liquidity", map[string]string{
		"available": available, "requested": requested,
	})
}

func NewSupplyCapExceededError(cap, current, adding string) *Error {
	return newError(KindSupplyCapExceeded, "supply cap exceeded", map[string]string{
		"cap": cap, "current": current, "adding": adding,
	})
}

func NewBorrowCapExceededError(cap, current, adding string) *Error {
	return newError(KindBorrowCapExceeded, "borrow cap exceeded", map[string]string{
		"cap": cap, "current": current, "adding": adding,
	})
}

func NewNotLiquidatableError(healthFactor string) *Error {
	return newError(KindNotLiquidatable, "position is not liquidatable", map[string]string{
		"health_factor": healthFactor,
	})
}

func NewNoDebtError() *Error { return newError(KindNoDebt, "no debt to repay", nil) }

func NewNoSupplyError() *Error { return newError(KindNoSupply, "no supply to withdraw", nil) }

func NewNoCollateralError() *Error {
	return newError(KindNoCollateral, "no collateral to withdraw", nil)
}

func NewMarketDisabledError() *Error {
	return newError(KindMarketDisabled, "market is disabled", nil)
}

func NewMarketImmutableError() *Error {
	return newError(KindMarketImmutable, "market is immutable: LTV cannot be changed", nil)
}

func NewLtvCooldownNotElapsedError(remainingSeconds uint64) *Error {
	return newError(KindLtvCooldownNotElapsed, "LTV update cooldown not elapsed", map[string]string{
		"remaining_seconds": fmt.Sprintf("%d", remainingSeconds),
	})
}

func NewLtvChangeExceedsMaxError(attempted string) *Error {
	return newError(KindLtvChangeExceedsMax, "LTV change exceeds maximum step", map[string]string{
		"attempted": attempted,
	})
}

func NewCuratorFeeExceedsMaxError() *Error {
	return newError(KindCuratorFeeExceedsMax, "curator fee exceeds maximum of 25%", nil)
}

func NewInvalidOracleError(denom string) *Error {
	return newError(KindInvalidOracle, "failed to query price", map[string]string{"denom": denom})
}

func NewMathOverflowError(reason string) *Error {
	return newError(KindMathOverflow, reason, nil)
}

func NewDivideByZeroError() *Error {
	return newError(KindDivideByZero, "divide by zero", nil)
}

func NewInvalidInterestRateModelError(reason string) *Error {
	return newError(KindInvalidInterestRateModel, reason, nil)
}

func NewInvalidParameterError(reason string) *Error {
	return newError(KindInvalidParameter, reason, nil)
}

func NewNoFundsSentError() *Error {
	return newError(KindNoFundsSent, "no funds sent", nil)
}
