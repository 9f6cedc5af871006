package pyth

import (
	"encoding/json"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

func TestBuildUpdatePriceFeedsMsgEncodesData(t *testing.T) {
	msg, err := BuildUpdatePriceFeedsMsg(
		"osmo1oraclecontractaddress",
		"osmo1senderaddress",
		"deadbeef",
		sdk.NewCoins(sdk.NewInt64Coin("uosmo", 1)),
	)
	require.NoError(t, err)
	require.Equal(t, "osmo1oraclecontractaddress", msg.Contract)
	require.Equal(t, "osmo1senderaddress", msg.Sender)

	var decoded UpdatePriceFeedsMsg
	require.NoError(t, json.Unmarshal(msg.Msg, &decoded))
	require.Equal(t, []string{"deadbeef"}, decoded.UpdatePriceFeeds.Data)
}

func TestBuildUpdatePriceFeedsMsgInvalidSenderFails(t *testing.T) {
	_, err := BuildUpdatePriceFeedsMsg("osmo1oraclecontractaddress", "", "deadbeef", nil)
	require.Error(t, err)
}
