package market

import (
	sdkmath "cosmossdk.io/math"

	"github.com/stonefinance/stone-sub000/pkg/market/fixedpoint"
)

// Withdraw returns previously supplied debt_denom. Grounded on
// original_source/contracts/market/src/execute/withdraw.rs. Withdraw is
// ALWAYS allowed regardless of the market's enabled flag (spec.md §9
// design notes: withdraw-always-open is a deliberate asymmetry with the
// disabled flag). amount nil means withdraw the user's entire supply.
func (m *Market) Withdraw(now uint64, sender string, amount *sdkmath.Int, recipient *string) (*Outcome, error) {
	cfg, err := m.Store.LoadConfig()
	if err != nil {
		return nil, err
	}

	if err := m.ApplyAccumulatedInterest(now); err != nil {
		return nil, err
	}

	currentSupply, err := m.GetUserSupply(sender)
	if err != nil {
		return nil, err
	}
	if currentSupply.IsZero() {
		return nil, NewNoSupplyError()
	}

	withdrawAmount := currentSupply
	if amount != nil {
		if amount.IsZero() {
			return nil, NewZeroAmountError()
		}
		withdrawAmount = sdkmath.MinInt(*amount, currentSupply)
	}

	state, err := m.Store.LoadState()
	if err != nil {
		return nil, err
	}

	available := state.AvailableLiquidity()
	if withdrawAmount.GT(available) {
		return nil, NewInsufficientLiquidityError(available.String(), withdrawAmount.String())
	}

	scaledDecrease, err := fixedpoint.AmountToScaledFloor(withdrawAmount, state.LiquidityIndex)
	if err != nil {
		return nil, err
	}

	currentScaled, _, err := m.Store.LoadSupply(sender)
	if err != nil {
		return nil, err
	}
	newScaled := fixedpoint.SaturatingSub(currentScaled, scaledDecrease)
	if newScaled.IsZero() {
		if err := m.Store.RemoveSupply(sender); err != nil {
			return nil, err
		}
	} else if err := m.Store.SaveSupply(sender, newScaled); err != nil {
		return nil, err
	}

	state.TotalSupplyScaled = fixedpoint.SaturatingSub(state.TotalSupplyScaled, scaledDecrease)
	if err := m.Store.SaveState(state); err != nil {
		return nil, err
	}

	recipientAddr := Recipient(sender, recipient)

	out := newOutcome("withdraw").
		attr("withdrawer", sender).
		attr("recipient", recipientAddr).
		attr("amount", withdrawAmount.String()).
		attr("scaled_decrease", scaledDecrease.String()).
		attr("borrow_index", state.BorrowIndex.String()).
		attr("liquidity_index", state.LiquidityIndex.String()).
		attr("borrow_rate", state.BorrowRate.String()).
		attr("liquidity_rate", state.LiquidityRate.String()).
		attr("total_supply", state.TotalSupply().String()).
		attr("total_debt", state.TotalDebt().String()).
		attr("utilization", state.Utilization().String()).
		transfer(recipientAddr, cfg.DebtDenom, withdrawAmount.String())
	return out, nil
}
