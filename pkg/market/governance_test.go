package market

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func mutableMarket(t *testing.T) (*Market, *MapStore) {
	t.Helper()
	m, store := newTestMarket(t)
	params, err := store.LoadParams()
	require.NoError(t, err)
	params.IsMutable = true
	params.LtvLastUpdate = 0
	require.NoError(t, store.SaveParams(params))
	return m, store
}

func decPtr(d sdkmath.LegacyDec) *sdkmath.LegacyDec { return &d }
func intPtrPtr(i sdkmath.Int) **sdkmath.Int          { p := &i; return &p }
func boolPtr(b bool) *bool                           { return &b }

func TestUpdateParamsUnauthorized(t *testing.T) {
	m, _ := mutableMarket(t)

	_, err := m.UpdateParams(0, "not_curator", ParamsUpdate{
		CuratorFee: decPtr(sdkmath.LegacyNewDecWithPrec(10, 2)),
	})
	require.Error(t, err)
	require.Equal(t, KindUnauthorized, err.(*Error).Kind)
}

func TestUpdateCuratorFee(t *testing.T) {
	m, store := mutableMarket(t)

	out, err := m.UpdateParams(0, "curator1", ParamsUpdate{
		CuratorFee: decPtr(sdkmath.LegacyNewDecWithPrec(20, 2)),
	})
	require.NoError(t, err)
	require.Equal(t, "0.200000000000000000", out.Attributes["curator_fee"])

	params, err := store.LoadParams()
	require.NoError(t, err)
	require.Equal(t, "0.200000000000000000", params.CuratorFee.String())
}

func TestUpdateCuratorFeeExceedsMax(t *testing.T) {
	m, _ := mutableMarket(t)

	_, err := m.UpdateParams(0, "curator1", ParamsUpdate{
		CuratorFee: decPtr(sdkmath.LegacyNewDecWithPrec(30, 2)),
	})
	require.Error(t, err)
	require.Equal(t, KindCuratorFeeExceedsMax, err.(*Error).Kind)
}

func TestUpdateLtvOnMutableMarket(t *testing.T) {
	m, store := mutableMarket(t)

	now := uint64(LtvCooldownSeconds + 1000)
	out, err := m.UpdateParams(now, "curator1", ParamsUpdate{
		LoanToValue: decPtr(sdkmath.LegacyNewDecWithPrec(75, 2)), // 70% -> 75%, a 5% step
	})
	require.NoError(t, err)
	require.Equal(t, "0.750000000000000000", out.Attributes["new_ltv"])

	params, err := store.LoadParams()
	require.NoError(t, err)
	require.Equal(t, "0.750000000000000000", params.LoanToValue.String())
	require.Equal(t, now, params.LtvLastUpdate)
}

func TestUpdateLtvOnImmutableMarketFails(t *testing.T) {
	m, store := newTestMarket(t)
	params, err := store.LoadParams()
	require.NoError(t, err)
	params.IsMutable = false
	require.NoError(t, store.SaveParams(params))

	_, err = m.UpdateParams(LtvCooldownSeconds+1000, "curator1", ParamsUpdate{
		LoanToValue: decPtr(sdkmath.LegacyNewDecWithPrec(75, 2)),
	})
	require.Error(t, err)
	require.Equal(t, KindMarketImmutable, err.(*Error).Kind)
}

func TestUpdateLtvBeforeCooldownFails(t *testing.T) {
	m, _ := mutableMarket(t)

	_, err := m.UpdateParams(100, "curator1", ParamsUpdate{
		LoanToValue: decPtr(sdkmath.LegacyNewDecWithPrec(75, 2)),
	})
	require.Error(t, err)
	require.Equal(t, KindLtvCooldownNotElapsed, err.(*Error).Kind)
}

func TestUpdateLtvExceedsMaxStepFails(t *testing.T) {
	m, _ := mutableMarket(t)

	// default LTV is 70%; a jump to 50% is a 20% change, far over the 5% cap.
	_, err := m.UpdateParams(LtvCooldownSeconds+1000, "curator1", ParamsUpdate{
		LoanToValue: decPtr(sdkmath.LegacyNewDecWithPrec(50, 2)),
	})
	require.Error(t, err)
	require.Equal(t, KindLtvChangeExceedsMax, err.(*Error).Kind)
}

func TestUpdateLtvAboveLiquidationThresholdFails(t *testing.T) {
	m, store := mutableMarket(t)
	params, err := store.LoadParams()
	require.NoError(t, err)
	params.LoanToValue = sdkmath.LegacyNewDecWithPrec(83, 2)
	require.NoError(t, store.SaveParams(params))

	// 83% -> 86% is within the 5% step cap but exceeds liquidation_threshold (80%).
	_, err = m.UpdateParams(LtvCooldownSeconds+1000, "curator1", ParamsUpdate{
		LoanToValue: decPtr(sdkmath.LegacyNewDecWithPrec(86, 2)),
	})
	require.Error(t, err)
	require.Equal(t, KindInvalidParameter, err.(*Error).Kind)
}

func TestUpdateSupplyAndBorrowCaps(t *testing.T) {
	m, store := mutableMarket(t)

	cap := sdkmath.NewInt(1_000_000)
	out, err := m.UpdateParams(0, "curator1", ParamsUpdate{
		SupplyCap: intPtrPtr(cap),
		BorrowCap: intPtrPtr(cap),
	})
	require.NoError(t, err)
	require.Equal(t, "1000000", out.Attributes["supply_cap"])
	require.Equal(t, "1000000", out.Attributes["borrow_cap"])

	params, err := store.LoadParams()
	require.NoError(t, err)
	require.Equal(t, cap, *params.SupplyCap)
	require.Equal(t, cap, *params.BorrowCap)
}

func TestUpdateEnabled(t *testing.T) {
	m, store := mutableMarket(t)

	_, err := m.UpdateParams(0, "curator1", ParamsUpdate{Enabled: boolPtr(false)})
	require.NoError(t, err)

	params, err := store.LoadParams()
	require.NoError(t, err)
	require.False(t, params.Enabled)
}

func TestAccrueInterestUpdatesState(t *testing.T) {
	m, store := marketWithDebt(t)

	out, err := m.AccrueInterest(2000)
	require.NoError(t, err)
	require.Equal(t, "accrue_interest", out.Action)
	require.NotEmpty(t, out.Attributes["borrow_index"])

	state, err := store.LoadState()
	require.NoError(t, err)
	require.Equal(t, uint64(2000), state.LastUpdate)
}
