package market

import (
	sdkmath "cosmossdk.io/math"

	"github.com/stonefinance/stone-sub000/pkg/oracle"
)

// queryPrice fetches and validates a denom's price through the market's
// oracle querier, grounded on
// original_source/contracts/market/src/health.rs's query_price, with
// staleness/future/zero/denom/code-id/confidence validation delegated
// to the shared oracle.ValidatePrice (see DESIGN.md Open Question 3).
func (m *Market) queryPrice(now uint64, cfg Config, denom string) (sdkmath.LegacyDec, error) {
	resp, confidence, codeID, err := m.Oracle.Price(denom)
	if err != nil {
		return sdkmath.LegacyDec{}, err
	}
	if err := oracle.ValidatePrice(now, denom, cfg.OracleConfig, resp, confidence, codeID); err != nil {
		return sdkmath.LegacyDec{}, err
	}
	return resp.Price, nil
}

// HealthFactor returns (collateral_value * liquidation_threshold) /
// debt_value, or nil if the user carries no debt (always healthy).
func (m *Market) HealthFactor(now uint64, user string) (*sdkmath.LegacyDec, error) {
	cfg, err := m.Store.LoadConfig()
	if err != nil {
		return nil, err
	}
	params, err := m.Store.LoadParams()
	if err != nil {
		return nil, err
	}

	collateral, _, err := m.Store.LoadCollateral(user)
	if err != nil {
		return nil, err
	}
	debt, err := m.GetUserDebt(user)
	if err != nil {
		return nil, err
	}
	if debt.IsZero() {
		return nil, nil
	}

	collateralPrice, err := m.queryPrice(now, cfg, cfg.CollateralDenom)
	if err != nil {
		return nil, err
	}
	debtPrice, err := m.queryPrice(now, cfg, cfg.DebtDenom)
	if err != nil {
		return nil, err
	}

	collateralValue := sdkmath.LegacyNewDecFromInt(collateral).Mul(collateralPrice)
	debtValue := sdkmath.LegacyNewDecFromInt(debt).Mul(debtPrice)

	hf := collateralValue.Mul(params.LiquidationThreshold).Quo(debtValue)
	return &hf, nil
}

// IsLiquidatable reports whether a position's health factor is below
// one. A debt-free position is never liquidatable.
func (m *Market) IsLiquidatable(now uint64, user string) (bool, error) {
	hf, err := m.HealthFactor(now, user)
	if err != nil {
		return false, err
	}
	if hf == nil {
		return false, nil
	}
	return hf.LT(sdkmath.LegacyOneDec()), nil
}

// MaxBorrow returns the largest additional amount of debt_denom a user
// may borrow without exceeding loan_to_value, zero if already at or
// past it.
func (m *Market) MaxBorrow(now uint64, user string) (sdkmath.Int, error) {
	cfg, err := m.Store.LoadConfig()
	if err != nil {
		return sdkmath.Int{}, err
	}
	params, err := m.Store.LoadParams()
	if err != nil {
		return sdkmath.Int{}, err
	}

	collateral, _, err := m.Store.LoadCollateral(user)
	if err != nil {
		return sdkmath.Int{}, err
	}
	debt, err := m.GetUserDebt(user)
	if err != nil {
		return sdkmath.Int{}, err
	}

	collateralPrice, err := m.queryPrice(now, cfg, cfg.CollateralDenom)
	if err != nil {
		return sdkmath.Int{}, err
	}
	debtPrice, err := m.queryPrice(now, cfg, cfg.DebtDenom)
	if err != nil {
		return sdkmath.Int{}, err
	}

	collateralValue := sdkmath.LegacyNewDecFromInt(collateral).Mul(collateralPrice)
	debtValue := sdkmath.LegacyNewDecFromInt(debt).Mul(debtPrice)
	maxBorrowValue := collateralValue.Mul(params.LoanToValue)

	if maxBorrowValue.LTE(debtValue) {
		return sdkmath.ZeroInt(), nil
	}

	remainingValue := maxBorrowValue.Sub(debtValue)
	return remainingValue.Quo(debtPrice).TruncateInt(), nil
}

// CheckBorrowAllowed returns an error if borrowing borrowAmount more of
// debt_denom would push the position's debt value past
// collateral_value * loan_to_value.
func (m *Market) CheckBorrowAllowed(now uint64, user string, borrowAmount sdkmath.Int) error {
	cfg, err := m.Store.LoadConfig()
	if err != nil {
		return err
	}
	params, err := m.Store.LoadParams()
	if err != nil {
		return err
	}

	collateral, _, err := m.Store.LoadCollateral(user)
	if err != nil {
		return err
	}
	currentDebt, err := m.GetUserDebt(user)
	if err != nil {
		return err
	}

	collateralPrice, err := m.queryPrice(now, cfg, cfg.CollateralDenom)
	if err != nil {
		return err
	}
	debtPrice, err := m.queryPrice(now, cfg, cfg.DebtDenom)
	if err != nil {
		return err
	}

	collateralValue := sdkmath.LegacyNewDecFromInt(collateral).Mul(collateralPrice)
	newDebtValue := sdkmath.LegacyNewDecFromInt(currentDebt.Add(borrowAmount)).Mul(debtPrice)
	maxBorrowValue := collateralValue.Mul(params.LoanToValue)

	if newDebtValue.GT(maxBorrowValue) {
		return NewExceedsLtvError(maxBorrowValue.String(), newDebtValue.String())
	}
	return nil
}

// CheckWithdrawalAllowed returns an error if withdrawing withdrawAmount
// of collateral would leave the position's debt value above
// new_collateral_value * loan_to_value. Deliberately uses loan_to_value
// rather than liquidation_threshold here — stricter admission gate for
// a voluntary withdrawal than for involuntary liquidation eligibility
// (spec.md §9 design notes' Open Question, reimplemented exactly as the
// original: do not collapse the two).
//
// A debt-free position may always withdraw.
func (m *Market) CheckWithdrawalAllowed(now uint64, user string, withdrawAmount sdkmath.Int) error {
	cfg, err := m.Store.LoadConfig()
	if err != nil {
		return err
	}
	params, err := m.Store.LoadParams()
	if err != nil {
		return err
	}

	collateral, _, err := m.Store.LoadCollateral(user)
	if err != nil {
		return err
	}
	debt, err := m.GetUserDebt(user)
	if err != nil {
		return err
	}

	if debt.IsZero() {
		return nil
	}
	if withdrawAmount.GT(collateral) {
		return NewNoCollateralError()
	}

	newCollateral := collateral.Sub(withdrawAmount)

	collateralPrice, err := m.queryPrice(now, cfg, cfg.CollateralDenom)
	if err != nil {
		return err
	}
	debtPrice, err := m.queryPrice(now, cfg, cfg.DebtDenom)
	if err != nil {
		return err
	}

	newCollateralValue := sdkmath.LegacyNewDecFromInt(newCollateral).Mul(collateralPrice)
	debtValue := sdkmath.LegacyNewDecFromInt(debt).Mul(debtPrice)
	maxDebtValue := newCollateralValue.Mul(params.LoanToValue)

	if debtValue.GT(maxDebtValue) {
		hf := newCollateralValue.Mul(params.LiquidationThreshold).Quo(debtValue)
		return NewInsufficientCollateralError(hf.String())
	}
	return nil
}

// LiquidationPrice returns the collateral_denom price at which the
// position becomes liquidatable (debt_value / (collateral *
// liquidation_threshold)), or nil if there is no debt or no collateral.
func (m *Market) LiquidationPrice(now uint64, user string) (*sdkmath.LegacyDec, error) {
	cfg, err := m.Store.LoadConfig()
	if err != nil {
		return nil, err
	}
	params, err := m.Store.LoadParams()
	if err != nil {
		return nil, err
	}

	collateral, _, err := m.Store.LoadCollateral(user)
	if err != nil {
		return nil, err
	}
	debt, err := m.GetUserDebt(user)
	if err != nil {
		return nil, err
	}
	if debt.IsZero() || collateral.IsZero() {
		return nil, nil
	}

	debtPrice, err := m.queryPrice(now, cfg, cfg.DebtDenom)
	if err != nil {
		return nil, err
	}

	debtValue := sdkmath.LegacyNewDecFromInt(debt).Mul(debtPrice)
	denominator := sdkmath.LegacyNewDecFromInt(collateral).Mul(params.LiquidationThreshold)
	liquidationPrice := debtValue.Quo(denominator)
	return &liquidationPrice, nil
}
