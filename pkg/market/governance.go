package market

import (
	sdkmath "cosmossdk.io/math"
)

// ParamsUpdate carries the optional-field update set for UpdateParams,
// mirroring original_source/packages/types's MarketParamsUpdate: every
// field left nil is left unchanged.
type ParamsUpdate struct {
	LoanToValue       *sdkmath.LegacyDec
	InterestRateModel *InterestRateModel
	CuratorFee        *sdkmath.LegacyDec
	SupplyCap         **sdkmath.Int
	BorrowCap         **sdkmath.Int
	Enabled           *bool
}

// UpdateParams applies a curator-only governance update to a market's
// parameters, grounded on
// original_source/contracts/market/src/execute/admin.rs's
// execute_update_params. LoanToValue is the only field gated by
// is_mutable, a cooldown, and a max step per update; every other field
// is always updatable by the curator.
func (m *Market) UpdateParams(now uint64, sender string, updates ParamsUpdate) (*Outcome, error) {
	cfg, err := m.Store.LoadConfig()
	if err != nil {
		return nil, err
	}
	if sender != cfg.Curator {
		return nil, NewUnauthorizedError()
	}

	params, err := m.Store.LoadParams()
	if err != nil {
		return nil, err
	}

	out := newOutcome("update_params")

	if updates.LoanToValue != nil {
		newLtv := *updates.LoanToValue

		if !params.IsMutable {
			return nil, NewMarketImmutableError()
		}

		timeSinceLast := uint64(0)
		if now > params.LtvLastUpdate {
			timeSinceLast = now - params.LtvLastUpdate
		}
		if timeSinceLast < LtvCooldownSeconds {
			return nil, NewLtvCooldownNotElapsedError(LtvCooldownSeconds - timeSinceLast)
		}

		change := newLtv.Sub(params.LoanToValue).Abs()
		if change.GT(MaxLtvStep) {
			return nil, NewLtvChangeExceedsMaxError(newLtv.String())
		}

		if newLtv.LT(MinLtv) || newLtv.GT(MaxLtv) {
			return nil, NewInvalidParameterError("loan_to_value must be between 1% and 95%")
		}
		if newLtv.GTE(params.LiquidationThreshold) {
			return nil, NewInvalidParameterError("loan_to_value must be less than liquidation_threshold")
		}

		params.LoanToValue = newLtv
		params.LtvLastUpdate = now
		out.attr("new_ltv", newLtv.String())
	}

	if updates.InterestRateModel != nil {
		if err := updates.InterestRateModel.Validate(); err != nil {
			return nil, err
		}
		params.InterestRateModel = *updates.InterestRateModel
		out.attr("interest_rate_model", "updated")
	}

	if updates.CuratorFee != nil {
		if updates.CuratorFee.GT(MaxCuratorFee) {
			return nil, NewCuratorFeeExceedsMaxError()
		}
		params.CuratorFee = *updates.CuratorFee
		out.attr("curator_fee", updates.CuratorFee.String())
	}

	if updates.SupplyCap != nil {
		params.SupplyCap = *updates.SupplyCap
		out.attr("supply_cap", optionalIntString(*updates.SupplyCap))
	}

	if updates.BorrowCap != nil {
		params.BorrowCap = *updates.BorrowCap
		out.attr("borrow_cap", optionalIntString(*updates.BorrowCap))
	}

	if updates.Enabled != nil {
		params.Enabled = *updates.Enabled
		out.attr("enabled", boolString(*updates.Enabled))
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	if err := m.Store.SaveParams(params); err != nil {
		return nil, err
	}

	// A full snapshot alongside the delta attributes lets an indexer
	// reconstruct current params from this single event without
	// replaying history, matching the original's final_* attribute set.
	out.attr("final_ltv", params.LoanToValue.String()).
		attr("final_liquidation_threshold", params.LiquidationThreshold.String()).
		attr("final_liquidation_bonus", params.LiquidationBonus.String()).
		attr("final_liquidation_protocol_fee", params.LiquidationProtocolFee.String()).
		attr("final_close_factor", params.CloseFactor.String()).
		attr("final_protocol_fee", params.ProtocolFee.String()).
		attr("final_curator_fee", params.CuratorFee.String()).
		attr("final_supply_cap", optionalIntString(params.SupplyCap)).
		attr("final_borrow_cap", optionalIntString(params.BorrowCap)).
		attr("final_enabled", boolString(params.Enabled)).
		attr("final_is_mutable", boolString(params.IsMutable))

	return out, nil
}

// AccrueInterest applies pending interest without performing any other
// market operation, for keepers/crons to call on a schedule rather than
// waiting for the next user-triggered operation to roll the indexes
// forward (original_source/.../admin.rs's execute_accrue_interest).
func (m *Market) AccrueInterest(now uint64) (*Outcome, error) {
	if err := m.ApplyAccumulatedInterest(now); err != nil {
		return nil, err
	}
	state, err := m.Store.LoadState()
	if err != nil {
		return nil, err
	}
	return newOutcome("accrue_interest").
		attr("borrow_index", state.BorrowIndex.String()).
		attr("liquidity_index", state.LiquidityIndex.String()).
		attr("borrow_rate", state.BorrowRate.String()).
		attr("liquidity_rate", state.LiquidityRate.String()).
		attr("last_update", uintString(state.LastUpdate)), nil
}

func optionalIntString(v *sdkmath.Int) string {
	if v == nil {
		return "none"
	}
	return v.String()
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func uintString(v uint64) string {
	return sdkmath.NewIntFromUint64(v).String()
}
