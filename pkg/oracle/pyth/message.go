package pyth

import (
	"encoding/json"

	wasmdtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BuildUpdatePriceFeedsMsg constructs the MsgExecuteContract that pushes
// a Hermes VAA update into the on-chain oracle contract, adapted from
// pkg/contracts/pyth/message.go's CreateUpdatePriceFeedsMsg.
func BuildUpdatePriceFeedsMsg(contractAddress, senderAddress, base64Data string, funds sdk.Coins) (*wasmdtypes.MsgExecuteContract, error) {
	execMsg := UpdatePriceFeedsMsg{UpdatePriceFeeds: UpdatePriceFeeds{Data: []string{base64Data}}}

	msgBytes, err := json.Marshal(execMsg)
	if err != nil {
		return nil, err
	}

	msg := wasmdtypes.MsgExecuteContract{
		Sender:   senderAddress,
		Contract: contractAddress,
		Msg:      msgBytes,
		Funds:    funds,
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return &msg, nil
}
