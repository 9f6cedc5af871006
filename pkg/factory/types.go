// Package factory implements deterministic market creation: market-id
// derivation, creation-fee collection, oracle/parameter pre-validation,
// two-phase instantiation via a reply continuation, five lookup
// indices, and two-step ownership transfer for a single factory
// instance that mints isolated-pair market instances.
package factory

import (
	sdkmath "cosmossdk.io/math"

	"github.com/stonefinance/stone-sub000/pkg/market"
	"github.com/stonefinance/stone-sub000/pkg/oracle"
)

// Config is the factory's mutable, owner-governed configuration,
// mirroring original_source/contracts/factory/src/state.rs's
// FactoryConfig.
type Config struct {
	Owner                string
	ProtocolFeeCollector string
	MarketCreationFee    Coin
	MarketCodeID         uint64
}

// Coin is a single denom/amount pair, mirroring cosmwasm_std::Coin.
type Coin struct {
	Denom  string
	Amount sdkmath.Int
}

// MarketRecord is the factory-side index entry for a registered market,
// mirroring original_source/packages/types's MarketRecord.
type MarketRecord struct {
	MarketID        string
	Address         string
	Curator         string
	CollateralDenom string
	DebtDenom       string
	CreatedAt       uint64
}

// CreateMarketParams carries every market risk/fee parameter a curator
// supplies at creation time — everything market.Params holds except
// Enabled and LtvLastUpdate, which the factory/market fix at creation
// (a new market always starts enabled, with no LTV update yet
// recorded), mirroring
// original_source/contracts/factory/src/execute.rs's CreateMarketParams.
type CreateMarketParams struct {
	LoanToValue            sdkmath.LegacyDec
	LiquidationThreshold   sdkmath.LegacyDec
	LiquidationBonus       sdkmath.LegacyDec
	LiquidationProtocolFee sdkmath.LegacyDec
	CloseFactor            sdkmath.LegacyDec
	DustDebtThreshold      sdkmath.Int
	InterestRateModel      market.InterestRateModel
	ProtocolFee            sdkmath.LegacyDec
	CuratorFee             sdkmath.LegacyDec
	SupplyCap              *sdkmath.Int
	BorrowCap              *sdkmath.Int
	IsMutable              bool
}

// ToMarketParams builds the new market's initial Params from a
// validated CreateMarketParams, fixing Enabled=true and
// LtvLastUpdate=0.
func (p CreateMarketParams) ToMarketParams() market.Params {
	return market.Params{
		LoanToValue:            p.LoanToValue,
		LiquidationThreshold:   p.LiquidationThreshold,
		LiquidationBonus:       p.LiquidationBonus,
		LiquidationProtocolFee: p.LiquidationProtocolFee,
		CloseFactor:            p.CloseFactor,
		DustDebtThreshold:      p.DustDebtThreshold,
		InterestRateModel:      p.InterestRateModel,
		ProtocolFee:            p.ProtocolFee,
		CuratorFee:             p.CuratorFee,
		SupplyCap:              p.SupplyCap,
		BorrowCap:              p.BorrowCap,
		Enabled:                true,
		IsMutable:              p.IsMutable,
		LtvLastUpdate:          0,
	}
}

// Validate checks every CreateMarketParams invariant that applies
// before a market exists, mirroring
// original_source/contracts/factory/src/execute.rs's
// validate_market_params. Narrower than market.Params.Validate: it does not
// check that close_factor lies in [0, 1] or that loan_to_value is
// non-negative.
func (p CreateMarketParams) Validate() error {
	if p.LoanToValue.GTE(p.LiquidationThreshold) {
		return NewInvalidParameterError("loan_to_value must be less than liquidation_threshold")
	}
	if p.LiquidationThreshold.GTE(sdkmath.LegacyOneDec()) {
		return NewInvalidParameterError("liquidation_threshold must be less than 1.0")
	}
	if p.LiquidationBonus.LT(market.MinLiquidationBonus) || p.LiquidationBonus.GT(market.MaxLiquidationBonus) {
		return NewInvalidParameterError("liquidation_bonus must be between 3% and 15%")
	}
	if p.ProtocolFee.Add(p.CuratorFee).GTE(sdkmath.LegacyOneDec()) {
		return NewInvalidParameterError("protocol_fee + curator_fee must be less than 1.0")
	}
	if p.CuratorFee.GT(market.MaxCuratorFee) {
		return NewCuratorFeeExceedsMaxError()
	}
	if p.DustDebtThreshold.GT(market.MaxDustDebtThreshold) {
		return NewInvalidParameterError("dust_debt_threshold exceeds maximum of 10^7 base units")
	}
	return p.InterestRateModel.Validate()
}

// CreateMarketRequest is the input to BeginCreateMarket, mirroring the
// CreateMarket execute message's fields.
type CreateMarketRequest struct {
	CollateralDenom string
	DebtDenom       string
	OracleConfig    oracle.Config
	Params          CreateMarketParams
	Salt            *uint64
}

// MarketInstantiateRequest is the would-be instantiate message this
// package returns instead of dispatching, mirroring
// original_source/contracts/factory/src/execute.rs's
// MarketInstantiateMsg plus the enclosing WasmMsg::Instantiate. The
// host is expected to instantiate a market contract/process from this
// and, on success, call CompleteCreateMarket with the resulting
// address and an authoritative config readback.
type MarketInstantiateRequest struct {
	CodeID               uint64
	Label                string
	Curator              string
	OracleConfig         oracle.Config
	CollateralDenom      string
	DebtDenom            string
	ProtocolFeeCollector string
	Params               market.Params
}
