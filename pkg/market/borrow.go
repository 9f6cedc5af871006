package market

import (
	sdkmath "cosmossdk.io/math"

	"github.com/stonefinance/stone-sub000/pkg/market/fixedpoint"
)

// Borrow draws debt_denom against collateral, gated by available
// liquidity, borrow cap and LTV admission. Grounded on
// original_source/contracts/market/src/execute/borrow.rs.
// amount_to_scaled_ceil is used here (not the floor variant supply
// uses) so recorded scaled debt never understates what was actually
// disbursed (spec.md §4.1's table; see fixedpoint.AmountToScaledCeil).
func (m *Market) Borrow(now uint64, sender string, amount sdkmath.Int, recipient *string) (*Outcome, error) {
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
	if amount.IsZero() {
		return nil, NewZeroAmountError()
	}

	if err := m.ApplyAccumulatedInterest(now); err != nil {
		return nil, err
	}

	state, err := m.Store.LoadState()
	if err != nil {
		return nil, err
	}

	available := state.AvailableLiquidity()
	if amount.GT(available) {
		return nil, NewInsufficientLiquidityError(available.String(), amount.String())
	}

	currentDebt := state.TotalDebt()
	if params.BorrowCap != nil {
		wouldBe := currentDebt.Add(amount)
		if wouldBe.GT(*params.BorrowCap) {
			return nil, NewBorrowCapExceededError(params.BorrowCap.String(), currentDebt.String(), amount.String())
		}
	}

	if err := m.CheckBorrowAllowed(now, sender, amount); err != nil {
		return nil, err
	}

	scaledAmount, err := fixedpoint.AmountToScaledCeil(amount, state.BorrowIndex)
	if err != nil {
		return nil, err
	}

	currentScaled, _, err := m.Store.LoadDebt(sender)
	if err != nil {
		return nil, err
	}
	if err := m.Store.SaveDebt(sender, currentScaled.Add(scaledAmount)); err != nil {
		return nil, err
	}

	state.TotalDebtScaled = state.TotalDebtScaled.Add(scaledAmount)
	if err := m.Store.SaveState(state); err != nil {
		return nil, err
	}

	recipientAddr := Recipient(sender, recipient)

	return newOutcome("borrow").
		attr("borrower", sender).
		attr("recipient", recipientAddr).
		attr("amount", amount.String()).
		attr("scaled_amount", scaledAmount.String()).
		attr("borrow_index", state.BorrowIndex.String()).
		attr("liquidity_index", state.LiquidityIndex.String()).
		attr("borrow_rate", state.BorrowRate.String()).
		attr("liquidity_rate", state.LiquidityRate.String()).
		attr("total_supply", state.TotalSupply().String()).
		attr("total_debt", state.TotalDebt().String()).
		attr("utilization", state.Utilization().String()).
		transfer(recipientAddr, cfg.DebtDenom, amount.String()), nil
}
