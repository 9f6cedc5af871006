package factory

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func TestUpdateConfigUnauthorizedFails(t *testing.T) {
	f, _ := testFactory(t)
	newCollector := "new_collector"

	_, err := f.UpdateConfig("not_owner", ConfigUpdate{ProtocolFeeCollector: &newCollector})
	require.Error(t, err)
	ferr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, KindUnauthorized, ferr.Kind)
}

func TestUpdateConfigAuthorized(t *testing.T) {
	f, store := testFactory(t)
	newCollector := "new_collector"
	newFee := Coin{Denom: "uosmo", Amount: sdkmath.NewInt(2_000_000)}

	outcome, err := f.UpdateConfig("owner1", ConfigUpdate{
		ProtocolFeeCollector: &newCollector,
		MarketCreationFee:    &newFee,
	})
	require.NoError(t, err)
	require.Equal(t, "new_collector", outcome.Attributes["protocol_fee_collector"])

	cfg, err := store.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "new_collector", cfg.ProtocolFeeCollector)
	require.Equal(t, sdkmath.NewInt(2_000_000), cfg.MarketCreationFee.Amount)
}

func TestUpdateMarketCodeIDUnauthorizedFails(t *testing.T) {
	f, _ := testFactory(t)

	_, err := f.UpdateMarketCodeID("not_owner", 2)
	require.Error(t, err)
	ferr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, KindUnauthorized, ferr.Kind)
}

func TestUpdateMarketCodeIDAuthorized(t *testing.T) {
	f, store := testFactory(t)

	outcome, err := f.UpdateMarketCodeID("owner1", 2)
	require.NoError(t, err)
	require.Equal(t, "2", outcome.Attributes["code_id"])

	cfg, err := store.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, uint64(2), cfg.MarketCodeID)
}
