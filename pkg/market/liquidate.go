package market

import (
	sdkmath "cosmossdk.io/math"

	"github.com/stonefinance/stone-sub000/pkg/market/fixedpoint"
)

// Liquidate repays part of an unhealthy borrower's debt in exchange for
// seized collateral plus a liquidation bonus, grounded step-for-step on
// original_source/contracts/market/src/execute/liquidate.rs. Always
// allowed regardless of the market's enabled flag, to prevent bad debt
// from accumulating while a market is disabled.
//
// The original widens every value in this function to Decimal256/
// Uint256 to guard against overflow, then narrows the final seize
// amount back to Uint128 (math256.rs's uint256_to_uint128). This repo's
// sdkmath.Int/LegacyDec are already arbitrary-precision, so no
// parallel widened type is needed; the boundary this function still
// enforces explicitly is fixedpoint.NarrowToU128, applied to
// collateralNeeded and, when the seize is capped, to the rescaled
// finalDebtRepaid (spec.md §9 design notes: "256-bit widening is local").
func (m *Market) Liquidate(now uint64, liquidator, borrower string, debtToRepay sdkmath.Int) (*Outcome, error) {
	cfg, err := m.Store.LoadConfig()
	if err != nil {
		return nil, err
	}
	params, err := m.Store.LoadParams()
	if err != nil {
		return nil, err
	}

	if debtToRepay.IsZero() {
		return nil, NewZeroAmountError()
	}

	if err := m.ApplyAccumulatedInterest(now); err != nil {
		return nil, err
	}

	hf, err := m.HealthFactor(now, borrower)
	if err != nil {
		return nil, err
	}
	if hf == nil {
		return nil, NewNotLiquidatableError("infinite (no debt)")
	}
	if hf.GTE(sdkmath.LegacyOneDec()) {
		return nil, NewNotLiquidatableError(hf.String())
	}

	borrowerDebt, err := m.GetUserDebt(borrower)
	if err != nil {
		return nil, err
	}
	borrowerCollateral, _, err := m.Store.LoadCollateral(borrower)
	if err != nil {
		return nil, err
	}

	// Dust positions bypass close_factor entirely so they can always be
	// fully closed out, rather than leaving an unliquidatable remainder.
	maxLiquidatable := borrowerDebt
	if borrowerDebt.GT(params.DustDebtThreshold) {
		maxLiquidatable = sdkmath.LegacyNewDecFromInt(borrowerDebt).Mul(params.CloseFactor).TruncateInt()
	}
	actualDebtRepaid := sdkmath.MinInt(sdkmath.MinInt(debtToRepay, maxLiquidatable), borrowerDebt)

	collateralPrice, err := m.queryPrice(now, cfg, cfg.CollateralDenom)
	if err != nil {
		return nil, err
	}
	debtPrice, err := m.queryPrice(now, cfg, cfg.DebtDenom)
	if err != nil {
		return nil, err
	}

	debtValue := sdkmath.LegacyNewDecFromInt(actualDebtRepaid).Mul(debtPrice)
	collateralNeeded, err := fixedpoint.NarrowToU128(debtValue.Quo(collateralPrice).TruncateInt())
	if err != nil {
		return nil, err
	}

	bonusAmount := sdkmath.LegacyNewDecFromInt(collateralNeeded).Mul(params.LiquidationBonus).TruncateInt()
	protocolFeeAmount := sdkmath.LegacyNewDecFromInt(collateralNeeded).Mul(params.LiquidationProtocolFee).TruncateInt()
	uncappedTotal := collateralNeeded.Add(bonusAmount).Add(protocolFeeAmount)

	totalSeized := sdkmath.MinInt(uncappedTotal, borrowerCollateral)

	finalCollateralSeized := totalSeized
	finalProtocolFee := protocolFeeAmount
	finalDebtRepaid := actualDebtRepaid
	if totalSeized.LT(uncappedTotal) {
		scale := sdkmath.LegacyNewDecFromInt(totalSeized).Quo(sdkmath.LegacyNewDecFromInt(uncappedTotal))
		scaledCollateral := sdkmath.LegacyNewDecFromInt(collateralNeeded).Mul(scale).TruncateInt()
		finalProtocolFee = sdkmath.LegacyNewDecFromInt(protocolFeeAmount).Mul(scale).TruncateInt()
		scaledDebtValue := sdkmath.LegacyNewDecFromInt(scaledCollateral).Mul(collateralPrice)
		finalDebtRepaid, err = fixedpoint.NarrowToU128(scaledDebtValue.Quo(debtPrice).TruncateInt())
		if err != nil {
			return nil, err
		}
		finalCollateralSeized = totalSeized
	}

	liquidatorCollateral := fixedpoint.SaturatingSub(finalCollateralSeized, finalProtocolFee)

	state, err := m.Store.LoadState()
	if err != nil {
		return nil, err
	}

	scaledDebtDecrease, err := fixedpoint.AmountToScaledFloor(finalDebtRepaid, state.BorrowIndex)
	if err != nil {
		return nil, err
	}
	currentDebtScaled, _, err := m.Store.LoadDebt(borrower)
	if err != nil {
		return nil, err
	}
	newDebtScaled := fixedpoint.SaturatingSub(currentDebtScaled, scaledDebtDecrease)
	if newDebtScaled.IsZero() {
		if err := m.Store.RemoveDebt(borrower); err != nil {
			return nil, err
		}
	} else if err := m.Store.SaveDebt(borrower, newDebtScaled); err != nil {
		return nil, err
	}

	newCollateral := fixedpoint.SaturatingSub(borrowerCollateral, finalCollateralSeized)
	if newCollateral.IsZero() {
		if err := m.Store.RemoveCollateral(borrower); err != nil {
			return nil, err
		}
	} else if err := m.Store.SaveCollateral(borrower, newCollateral); err != nil {
		return nil, err
	}

	state.TotalDebtScaled = fixedpoint.SaturatingSub(state.TotalDebtScaled, scaledDebtDecrease)
	state.TotalCollateral = fixedpoint.SaturatingSub(state.TotalCollateral, finalCollateralSeized)
	if err := m.Store.SaveState(state); err != nil {
		return nil, err
	}

	out := newOutcome("liquidate").
		attr("liquidator", liquidator).
		attr("borrower", borrower).
		attr("debt_repaid", finalDebtRepaid.String()).
		attr("collateral_seized", finalCollateralSeized.String()).
		attr("liquidator_collateral", liquidatorCollateral.String()).
		attr("protocol_fee", finalProtocolFee.String()).
		attr("scaled_debt_decrease", scaledDebtDecrease.String()).
		attr("borrow_index", state.BorrowIndex.String()).
		attr("liquidity_index", state.LiquidityIndex.String()).
		attr("borrow_rate", state.BorrowRate.String()).
		attr("liquidity_rate", state.LiquidityRate.String()).
		attr("total_supply", state.TotalSupply().String()).
		attr("total_debt", state.TotalDebt().String()).
		attr("total_collateral", state.TotalCollateral.String()).
		attr("utilization", state.Utilization().String())

	if liquidatorCollateral.IsPositive() {
		out.transfer(liquidator, cfg.CollateralDenom, liquidatorCollateral.String())
	}
	// Protocol fee on liquidation is paid in collateral denom, not debt
	// denom — a detail the spec's prose leaves implicit but
	// liquidate.rs makes explicit (both the seize and the protocol cut
	// come out of the same collateral the liquidator receives).
	if finalProtocolFee.IsPositive() {
		out.transfer(cfg.ProtocolFeeCollector, cfg.CollateralDenom, finalProtocolFee.String())
	}
	refund := fixedpoint.SaturatingSub(debtToRepay, finalDebtRepaid)
	if refund.IsPositive() {
		out.attr("refund", refund.String()).transfer(liquidator, cfg.DebtDenom, refund.String())
	}

	return out, nil
}
