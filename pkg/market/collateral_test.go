package market

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func TestSupplyCollateralSuccess(t *testing.T) {
	m, store := healthTestMarket(t, sdkmath.LegacyNewDec(10), sdkmath.LegacyOneDec(), baseTimestamp)

	out, err := m.SupplyCollateral("user1", sdkmath.NewInt(1000), nil)
	require.NoError(t, err)
	require.Equal(t, "supply_collateral", out.Action)

	collateral, ok, err := store.LoadCollateral("user1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, sdkmath.NewInt(1000), collateral)

	state, err := store.LoadState()
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(1000), state.TotalCollateral)
}

func TestSupplyCollateralWithRecipient(t *testing.T) {
	m, store := healthTestMarket(t, sdkmath.LegacyNewDec(10), sdkmath.LegacyOneDec(), baseTimestamp)
	recipient := "user2"

	_, err := m.SupplyCollateral("user1", sdkmath.NewInt(1000), &recipient)
	require.NoError(t, err)

	collateral, _, err := store.LoadCollateral("user2")
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(1000), collateral)
}

func TestSupplyCollateralAccumulates(t *testing.T) {
	m, store := healthTestMarket(t, sdkmath.LegacyNewDec(10), sdkmath.LegacyOneDec(), baseTimestamp)

	_, err := m.SupplyCollateral("user1", sdkmath.NewInt(1000), nil)
	require.NoError(t, err)
	_, err = m.SupplyCollateral("user1", sdkmath.NewInt(500), nil)
	require.NoError(t, err)

	collateral, _, err := store.LoadCollateral("user1")
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(1500), collateral)
}

func TestSupplyCollateralBlockedWhenDisabled(t *testing.T) {
	m, store := healthTestMarket(t, sdkmath.LegacyNewDec(10), sdkmath.LegacyOneDec(), baseTimestamp)
	params, err := store.LoadParams()
	require.NoError(t, err)
	params.Enabled = false
	require.NoError(t, store.SaveParams(params))

	_, err = m.SupplyCollateral("user1", sdkmath.NewInt(1000), nil)
	require.Error(t, err)
	require.Equal(t, KindMarketDisabled, err.(*Error).Kind)
}

func TestWithdrawCollateralNoDebt(t *testing.T) {
	m, store := healthTestMarket(t, sdkmath.LegacyNewDec(10), sdkmath.LegacyOneDec(), baseTimestamp)
	require.NoError(t, store.SaveCollateral("user1", sdkmath.NewInt(1000)))
	state, err := store.LoadState()
	require.NoError(t, err)
	state.TotalCollateral = sdkmath.NewInt(1000)
	require.NoError(t, store.SaveState(state))

	out, err := m.WithdrawCollateral(baseTimestamp, "user1", nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out.Transfers)

	_, ok, err := store.LoadCollateral("user1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestWithdrawCollateralPartial(t *testing.T) {
	m, store := healthTestMarket(t, sdkmath.LegacyNewDec(10), sdkmath.LegacyOneDec(), baseTimestamp)
	require.NoError(t, store.SaveCollateral("user1", sdkmath.NewInt(1000)))
	state, err := store.LoadState()
	require.NoError(t, err)
	state.TotalCollateral = sdkmath.NewInt(1000)
	require.NoError(t, store.SaveState(state))

	amt := sdkmath.NewInt(500)
	_, err = m.WithdrawCollateral(baseTimestamp, "user1", &amt, nil)
	require.NoError(t, err)

	remaining, _, err := store.LoadCollateral("user1")
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(500), remaining)
}

func TestWithdrawCollateralNoCollateral(t *testing.T) {
	m, _ := healthTestMarket(t, sdkmath.LegacyNewDec(10), sdkmath.LegacyOneDec(), baseTimestamp)

	_, err := m.WithdrawCollateral(baseTimestamp, "user1", nil, nil)
	require.Error(t, err)
	require.Equal(t, KindNoCollateral, err.(*Error).Kind)
}

func TestWithdrawCollateralRespectsLtv(t *testing.T) {
	m, store := healthTestMarket(t, sdkmath.LegacyNewDec(10), sdkmath.LegacyOneDec(), baseTimestamp)
	require.NoError(t, store.SaveCollateral("user1", sdkmath.NewInt(1000)))
	require.NoError(t, store.SaveDebt("user1", sdkmath.NewInt(4000)))
	state, err := store.LoadState()
	require.NoError(t, err)
	state.TotalCollateral = sdkmath.NewInt(1000)
	require.NoError(t, store.SaveState(state))

	// 500 * 10 * 0.8 = 4000, exactly covers remaining debt
	amt := sdkmath.NewInt(500)
	_, err = m.WithdrawCollateral(baseTimestamp, "user1", &amt, nil)
	require.NoError(t, err)

	amt2 := sdkmath.NewInt(1)
	_, err = m.WithdrawCollateral(baseTimestamp, "user1", &amt2, nil)
	require.Error(t, err)
	require.Equal(t, KindInsufficientCollateral, err.(*Error).Kind)
}

func TestWithdrawCollateralWorksWhenDisabled(t *testing.T) {
	m, store := healthTestMarket(t, sdkmath.LegacyNewDec(10), sdkmath.LegacyOneDec(), baseTimestamp)
	require.NoError(t, store.SaveCollateral("user1", sdkmath.NewInt(1000)))
	state, err := store.LoadState()
	require.NoError(t, err)
	state.TotalCollateral = sdkmath.NewInt(1000)
	require.NoError(t, store.SaveState(state))

	params, err := store.LoadParams()
	require.NoError(t, err)
	params.Enabled = false
	require.NoError(t, store.SaveParams(params))

	amt := sdkmath.NewInt(500)
	out, err := m.WithdrawCollateral(baseTimestamp, "user1", &amt, nil)
	require.NoError(t, err)
	require.Equal(t, "withdraw_collateral", out.Action)
}
