package market

import (
	sdkmath "cosmossdk.io/math"

	"github.com/stonefinance/stone-sub000/pkg/market/fixedpoint"
)

// Supply deposits debt_denom to earn interest, grounded on
// original_source/contracts/market/src/execute/supply.rs. amount is the
// quantity of debt_denom the sender attached (the denom check is the
// caller's responsibility — the host, not this package, validates sent
// funds, since fund handling is out of scope; a zero amount is rejected
// here with ZeroAmount).
func (m *Market) Supply(now uint64, sender string, amount sdkmath.Int, recipient *string) (*Outcome, error) {
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

	currentSupply := state.TotalSupply()
	if params.SupplyCap != nil {
		wouldBe := currentSupply.Add(amount)
		if wouldBe.GT(*params.SupplyCap) {
			return nil, NewSupplyCapExceededError(params.SupplyCap.String(), currentSupply.String(), amount.String())
		}
	}

	scaledAmount, err := fixedpoint.AmountToScaledFloor(amount, state.LiquidityIndex)
	if err != nil {
		return nil, err
	}

	recipientAddr := Recipient(sender, recipient)

	currentScaled, _, err := m.Store.LoadSupply(recipientAddr)
	if err != nil {
		return nil, err
	}
	if err := m.Store.SaveSupply(recipientAddr, currentScaled.Add(scaledAmount)); err != nil {
		return nil, err
	}

	state.TotalSupplyScaled = state.TotalSupplyScaled.Add(scaledAmount)
	if err := m.Store.SaveState(state); err != nil {
		return nil, err
	}

	out := newOutcome("supply").
		attr("supplier", sender).
		attr("recipient", recipientAddr).
		attr("amount", amount.String()).
		attr("scaled_amount", scaledAmount.String()).
		attr("total_supply", state.TotalSupply().String()).
		attr("total_debt", state.TotalDebt().String()).
		attr("utilization", state.Utilization().String())
	return out, nil
}
