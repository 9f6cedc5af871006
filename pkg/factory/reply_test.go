package factory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompleteCreateMarketSuccess(t *testing.T) {
	f, store := testFactory(t)
	require.NoError(t, store.SavePendingMarketSalt(nil))

	readback := MarketConfigReadback{
		Curator:         "curator1",
		CollateralDenom: "uatom",
		DebtDenom:       "uusdc",
	}
	expectedID := ComputeMarketID("uatom", "uusdc", "curator1", nil)

	outcome, err := f.CompleteCreateMarket(baseTimestamp, "market1", readback)
	require.NoError(t, err)
	require.Equal(t, "market_instantiated", outcome.Action)
	require.Equal(t, expectedID, outcome.Attributes["market_id"])
	require.Equal(t, "market1", outcome.Attributes["market_address"])

	record, ok, err := store.LoadMarket(expectedID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "market1", record.Address)
	require.Equal(t, "curator1", record.Curator)
	require.Equal(t, baseTimestamp, int(record.CreatedAt))

	byAddr, ok, err := store.LoadMarketByAddress("market1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, expectedID, byAddr)

	require.Equal(t, []string{expectedID}, store.ListMarketIDsByCurator("curator1"))
	require.Equal(t, []string{expectedID}, store.ListMarketIDsByCollateral("uatom"))
	require.Equal(t, []string{expectedID}, store.ListMarketIDsByDebt("uusdc"))

	_, hasSalt, err := store.LoadPendingMarketSalt()
	require.NoError(t, err)
	require.False(t, hasSalt)
}

func TestCompleteCreateMarketWithSalt(t *testing.T) {
	f, store := testFactory(t)
	var salt uint64 = 42
	require.NoError(t, store.SavePendingMarketSalt(&salt))

	readback := MarketConfigReadback{Curator: "curator1", CollateralDenom: "uatom", DebtDenom: "uusdc"}
	expectedID := ComputeMarketID("uatom", "uusdc", "curator1", &salt)

	outcome, err := f.CompleteCreateMarket(baseTimestamp, "market1", readback)
	require.NoError(t, err)
	require.Equal(t, expectedID, outcome.Attributes["market_id"])
}

func TestCompleteCreateMarketNoPendingSaltFails(t *testing.T) {
	f, _ := testFactory(t)

	_, err := f.CompleteCreateMarket(baseTimestamp, "market1", MarketConfigReadback{
		Curator:         "curator1",
		CollateralDenom: "uatom",
		DebtDenom:       "uusdc",
	})
	require.Error(t, err)
	ferr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, KindNoPendingMarketSalt, ferr.Kind)
}
