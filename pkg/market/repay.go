package market

import (
	sdkmath "cosmossdk.io/math"

	"github.com/stonefinance/stone-sub000/pkg/market/fixedpoint"
)

// Repay pays down a borrower's debt. amountSent is capped at the
// borrower's current debt; any excess is returned to the sender as a
// refund transfer, grounded on
// original_source/contracts/market/src/execute/repay.rs. onBehalfOf
// nil repays the sender's own debt.
func (m *Market) Repay(now uint64, sender string, amountSent sdkmath.Int, onBehalfOf *string) (*Outcome, error) {
	cfg, err := m.Store.LoadConfig()
	if err != nil {
		return nil, err
	}
	params, err := m.Store.LoadParams()
	if err != nil {
		return nil, err
	}
	if !params.Enabled {
		return nil, NewMarketDisabledError()
	}
	if amountSent.IsZero() {
		return nil, NewZeroAmountError()
	}

	if err := m.ApplyAccumulatedInterest(now); err != nil {
		return nil, err
	}

	borrower := sender
	if onBehalfOf != nil && *onBehalfOf != "" {
		borrower = *onBehalfOf
	}

	currentDebt, err := m.GetUserDebt(borrower)
	if err != nil {
		return nil, err
	}
	if currentDebt.IsZero() {
		return nil, NewNoDebtError()
	}

	repayAmount := sdkmath.MinInt(amountSent, currentDebt)
	refundAmount := fixedpoint.SaturatingSub(amountSent, repayAmount)

	state, err := m.Store.LoadState()
	if err != nil {
		return nil, err
	}

	scaledDecrease, err := fixedpoint.AmountToScaledFloor(repayAmount, state.BorrowIndex)
	if err != nil {
		return nil, err
	}

	currentScaled, _, err := m.Store.LoadDebt(borrower)
	if err != nil {
		return nil, err
	}
	newScaled := fixedpoint.SaturatingSub(currentScaled, scaledDecrease)
	if newScaled.IsZero() {
		if err := m.Store.RemoveDebt(borrower); err != nil {
			return nil, err
		}
	} else if err := m.Store.SaveDebt(borrower, newScaled); err != nil {
		return nil, err
	}

	state.TotalDebtScaled = fixedpoint.SaturatingSub(state.TotalDebtScaled, scaledDecrease)
	if err := m.Store.SaveState(state); err != nil {
		return nil, err
	}

	out := newOutcome("repay").
		attr("repayer", sender).
		attr("borrower", borrower).
		attr("amount", repayAmount.String()).
		attr("scaled_decrease", scaledDecrease.String()).
		attr("borrow_index", state.BorrowIndex.String()).
		attr("liquidity_index", state.LiquidityIndex.String()).
		attr("borrow_rate", state.BorrowRate.String()).
		attr("liquidity_rate", state.LiquidityRate.String()).
		attr("total_supply", state.TotalSupply().String()).
		attr("total_debt", state.TotalDebt().String()).
		attr("utilization", state.Utilization().String())

	if refundAmount.IsPositive() {
		out.attr("refund", refundAmount.String()).transfer(sender, cfg.DebtDenom, refundAmount.String())
	}

	return out, nil
}
