package market

import (
	sdkmath "cosmossdk.io/math"

	"github.com/stonefinance/stone-sub000/pkg/market/fixedpoint"
)

// SupplyCollateral deposits collateral_denom to enable borrowing.
// Collateral is never scaled (it doesn't earn interest), unlike supply.
// Grounded on
// original_source/contracts/market/src/execute/collateral.rs's
// execute_supply_collateral.
func (m *Market) SupplyCollateral(sender string, amount sdkmath.Int, recipient *string) (*Outcome, error) {
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

	recipientAddr := Recipient(sender, recipient)

	current, _, err := m.Store.LoadCollateral(recipientAddr)
	if err != nil {
		return nil, err
	}
	if err := m.Store.SaveCollateral(recipientAddr, current.Add(amount)); err != nil {
		return nil, err
	}

	state, err := m.Store.LoadState()
	if err != nil {
		return nil, err
	}
	state.TotalCollateral = state.TotalCollateral.Add(amount)
	if err := m.Store.SaveState(state); err != nil {
		return nil, err
	}

	return newOutcome("supply_collateral").
		attr("supplier", sender).
		attr("recipient", recipientAddr).
		attr("amount", amount.String()), nil
}

// WithdrawCollateral returns collateral_denom, subject to the LTV
// constraint if the user carries debt. Always allowed regardless of
// the market's enabled flag (spec.md §9 design notes). amount nil means
// withdraw the user's entire collateral balance.
func (m *Market) WithdrawCollateral(now uint64, sender string, amount *sdkmath.Int, recipient *string) (*Outcome, error) {
	cfg, err := m.Store.LoadConfig()
	if err != nil {
		return nil, err
	}

	if err := m.ApplyAccumulatedInterest(now); err != nil {
		return nil, err
	}

	currentCollateral, _, err := m.Store.LoadCollateral(sender)
	if err != nil {
		return nil, err
	}
	if currentCollateral.IsZero() {
		return nil, NewNoCollateralError()
	}

	withdrawAmount := currentCollateral
	if amount != nil {
		if amount.IsZero() {
			return nil, NewZeroAmountError()
		}
		withdrawAmount = sdkmath.MinInt(*amount, currentCollateral)
	}

	if err := m.CheckWithdrawalAllowed(now, sender, withdrawAmount); err != nil {
		return nil, err
	}

	newCollateral := currentCollateral.Sub(withdrawAmount)
	if newCollateral.IsZero() {
		if err := m.Store.RemoveCollateral(sender); err != nil {
			return nil, err
		}
	} else if err := m.Store.SaveCollateral(sender, newCollateral); err != nil {
		return nil, err
	}

	state, err := m.Store.LoadState()
	if err != nil {
		return nil, err
	}
	state.TotalCollateral = fixedpoint.SaturatingSub(state.TotalCollateral, withdrawAmount)
	if err := m.Store.SaveState(state); err != nil {
		return nil, err
	}

	recipientAddr := Recipient(sender, recipient)

	return newOutcome("withdraw_collateral").
		attr("user", sender).
		attr("recipient", recipientAddr).
		attr("amount", withdrawAmount.String()).
		transfer(recipientAddr, cfg.CollateralDenom, withdrawAmount.String()), nil
}
