package market

import (
	sdkmath "cosmossdk.io/math"

	"github.com/stonefinance/stone-sub000/pkg/market/fixedpoint"
	"github.com/stonefinance/stone-sub000/pkg/oracle"
)

// ConfigResponse is the read-only view of a market's immutable
// configuration, grounded on original_source/.../query.rs's config.
type ConfigResponse struct {
	Factory              string
	Curator              string
	Oracle               string
	OracleType           oracle.Type
	CollateralDenom      string
	DebtDenom            string
	ProtocolFeeCollector string
}

// ConfigQuery returns the market's instantiation-time configuration.
func (m *Market) ConfigQuery() (ConfigResponse, error) {
	cfg, err := m.Store.LoadConfig()
	if err != nil {
		return ConfigResponse{}, err
	}
	return ConfigResponse{
		Factory:              cfg.Factory,
		Curator:              cfg.Curator,
		Oracle:               cfg.OracleConfig.Address,
		OracleType:           cfg.OracleConfig.Type,
		CollateralDenom:      cfg.CollateralDenom,
		DebtDenom:            cfg.DebtDenom,
		ProtocolFeeCollector: cfg.ProtocolFeeCollector,
	}, nil
}

// ParamsQuery returns the market's current governable parameters.
func (m *Market) ParamsQuery() (Params, error) {
	return m.Store.LoadParams()
}

// StateResponse flattens a market's accounting state with its derived
// quantities, so a caller never has to recompute utilization or
// available liquidity itself.
type StateResponse struct {
	BorrowIndex        sdkmath.LegacyDec
	LiquidityIndex     sdkmath.LegacyDec
	BorrowRate         sdkmath.LegacyDec
	LiquidityRate      sdkmath.LegacyDec
	TotalSupply        sdkmath.Int
	TotalSupplyScaled  sdkmath.Int
	TotalDebt          sdkmath.Int
	TotalDebtScaled    sdkmath.Int
	TotalCollateral    sdkmath.Int
	Utilization        sdkmath.LegacyDec
	AvailableLiquidity sdkmath.Int
	LastUpdate         uint64
	CreatedAt          uint64
}

// StateQuery returns the market's current accounting state.
func (m *Market) StateQuery() (StateResponse, error) {
	state, err := m.Store.LoadState()
	if err != nil {
		return StateResponse{}, err
	}
	return StateResponse{
		BorrowIndex:        state.BorrowIndex,
		LiquidityIndex:     state.LiquidityIndex,
		BorrowRate:         state.BorrowRate,
		LiquidityRate:      state.LiquidityRate,
		TotalSupply:        state.TotalSupply(),
		TotalSupplyScaled:  state.TotalSupplyScaled,
		TotalDebt:          state.TotalDebt(),
		TotalDebtScaled:    state.TotalDebtScaled,
		TotalCollateral:    state.TotalCollateral,
		Utilization:        state.Utilization(),
		AvailableLiquidity: state.AvailableLiquidity(),
		LastUpdate:         state.LastUpdate,
		CreatedAt:          state.CreatedAt,
	}, nil
}

// UserBalanceResponse is the shared shape for a user's supply, debt, or
// collateral balance: the raw scaled value stored on disk (equal to
// amount for collateral, which is never scaled), the unscaled amount,
// and its value in debt-denom or collateral-denom terms.
type UserBalanceResponse struct {
	Scaled sdkmath.Int
	Amount sdkmath.Int
	Value  sdkmath.LegacyDec
}

// UserSupplyQuery returns a user's supply balance and its value in debt
// denom (the market only ever holds one asset as supply).
func (m *Market) UserSupplyQuery(now uint64, user string) (UserBalanceResponse, error) {
	cfg, err := m.Store.LoadConfig()
	if err != nil {
		return UserBalanceResponse{}, err
	}
	scaled, _, err := m.Store.LoadSupply(user)
	if err != nil {
		return UserBalanceResponse{}, err
	}
	state, err := m.Store.LoadState()
	if err != nil {
		return UserBalanceResponse{}, err
	}
	amount := fixedpoint.ScaledToAmountFloor(scaled, state.LiquidityIndex)
	value := priceOrZero(m, now, cfg, cfg.DebtDenom).MulInt(amount)
	return UserBalanceResponse{Scaled: scaled, Amount: amount, Value: value}, nil
}

// UserCollateralQuery returns a user's collateral balance and its value
// in collateral denom. Collateral is never scaled, so Scaled == Amount.
func (m *Market) UserCollateralQuery(now uint64, user string) (UserBalanceResponse, error) {
	cfg, err := m.Store.LoadConfig()
	if err != nil {
		return UserBalanceResponse{}, err
	}
	amount, _, err := m.Store.LoadCollateral(user)
	if err != nil {
		return UserBalanceResponse{}, err
	}
	value := priceOrZero(m, now, cfg, cfg.CollateralDenom).MulInt(amount)
	return UserBalanceResponse{Scaled: amount, Amount: amount, Value: value}, nil
}

// UserDebtQuery returns a user's debt balance (ceiled, per spec.md
// §4.1's rounding table) and its value in debt denom.
func (m *Market) UserDebtQuery(now uint64, user string) (UserBalanceResponse, error) {
	cfg, err := m.Store.LoadConfig()
	if err != nil {
		return UserBalanceResponse{}, err
	}
	scaled, _, err := m.Store.LoadDebt(user)
	if err != nil {
		return UserBalanceResponse{}, err
	}
	amount, err := m.GetUserDebt(user)
	if err != nil {
		return UserBalanceResponse{}, err
	}
	value := priceOrZero(m, now, cfg, cfg.DebtDenom).MulInt(amount)
	return UserBalanceResponse{Scaled: scaled, Amount: amount, Value: value}, nil
}

// UserPositionResponse is the aggregated, single-call view of
// everything a client needs to render a user's position: balances,
// values, health factor, borrowing headroom, and liquidation price.
type UserPositionResponse struct {
	CollateralAmount sdkmath.Int
	CollateralValue  sdkmath.LegacyDec
	SupplyAmount     sdkmath.Int
	SupplyValue      sdkmath.LegacyDec
	DebtAmount       sdkmath.Int
	DebtValue        sdkmath.LegacyDec
	HealthFactor     *sdkmath.LegacyDec
	MaxBorrowValue   sdkmath.LegacyDec
	LiquidationPrice *sdkmath.LegacyDec
}

// UserPositionQuery aggregates a user's full position in one call,
// grounded on original_source/.../query.rs's user_position. Price
// lookups fall back to zero rather than propagating an oracle error, so
// a stale or unconfigured oracle never blocks a client from at least
// seeing raw balances. When either price is unavailable, HealthFactor and
// LiquidationPrice are nil and MaxBorrowValue is zero.
func (m *Market) UserPositionQuery(now uint64, user string) (UserPositionResponse, error) {
	cfg, err := m.Store.LoadConfig()
	if err != nil {
		return UserPositionResponse{}, err
	}

	collateralAmount, _, err := m.Store.LoadCollateral(user)
	if err != nil {
		return UserPositionResponse{}, err
	}
	supplyAmount, err := m.GetUserSupply(user)
	if err != nil {
		return UserPositionResponse{}, err
	}
	debtAmount, err := m.GetUserDebt(user)
	if err != nil {
		return UserPositionResponse{}, err
	}

	collateralPrice := priceOrZero(m, now, cfg, cfg.CollateralDenom)
	debtPrice := priceOrZero(m, now, cfg, cfg.DebtDenom)

	var healthFactor, liquidationPrice *sdkmath.LegacyDec
	maxBorrow := sdkmath.ZeroInt()
	if collateralPrice.IsPositive() && debtPrice.IsPositive() {
		healthFactor, err = m.HealthFactor(now, user)
		if err != nil {
			return UserPositionResponse{}, err
		}
		maxBorrow, err = m.MaxBorrow(now, user)
		if err != nil {
			return UserPositionResponse{}, err
		}
		liquidationPrice, err = m.LiquidationPrice(now, user)
		if err != nil {
			return UserPositionResponse{}, err
		}
	}

	return UserPositionResponse{
		CollateralAmount: collateralAmount,
		CollateralValue:  collateralPrice.MulInt(collateralAmount),
		SupplyAmount:     supplyAmount,
		SupplyValue:      debtPrice.MulInt(supplyAmount),
		DebtAmount:       debtAmount,
		DebtValue:        debtPrice.MulInt(debtAmount),
		HealthFactor:     healthFactor,
		MaxBorrowValue:   debtPrice.MulInt(maxBorrow),
		LiquidationPrice: liquidationPrice,
	}, nil
}

// IsLiquidatableResponse reports whether a position can currently be
// liquidated, alongside its health factor and shortfall below 1.0.
type IsLiquidatableResponse struct {
	IsLiquidatable bool
	HealthFactor   *sdkmath.LegacyDec
	Shortfall      sdkmath.LegacyDec
}

// IsLiquidatableQuery mirrors original_source/.../query.rs's
// query_is_liquidatable.
func (m *Market) IsLiquidatableQuery(now uint64, user string) (IsLiquidatableResponse, error) {
	liquidatable, err := m.IsLiquidatable(now, user)
	if err != nil {
		return IsLiquidatableResponse{}, err
	}
	healthFactor, err := m.HealthFactor(now, user)
	if err != nil {
		return IsLiquidatableResponse{}, err
	}

	shortfall := sdkmath.LegacyZeroDec()
	if healthFactor != nil && healthFactor.LT(sdkmath.LegacyOneDec()) {
		shortfall = sdkmath.LegacyOneDec().Sub(*healthFactor)
	}

	return IsLiquidatableResponse{
		IsLiquidatable: liquidatable,
		HealthFactor:   healthFactor,
		Shortfall:      shortfall,
	}, nil
}

func priceOrZero(m *Market, now uint64, cfg Config, denom string) sdkmath.LegacyDec {
	price, err := m.queryPrice(now, cfg, denom)
	if err != nil {
		return sdkmath.LegacyZeroDec()
	}
	return price
}
