package pyth

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmath "cosmossdk.io/math"

	wasmdtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"github.com/cenkalti/backoff/v4"

	locustbackoff "github.com/stonefinance/stone-sub000/pkg/backoff"
	"github.com/stonefinance/stone-sub000/pkg/oracle"
)

// Adapter is the concrete oracle.Querier this repo dispatches Pyth price
// reads through: a wasmd smart-query against the oracle contract a
// market was configured with, adapted from
// pkg/contracts/pyth/queryclient.go's QueryGetUpdatedFee (same
// QuerySmartContractStateRequest/backoff.Retry shape, different query
// payload and response).
type Adapter struct {
	QueryClient   wasmdtypes.QueryClient
	OracleAddress string
}

var _ oracle.Querier = (*Adapter)(nil)

// NewAdapter binds a wasmd gRPC query client to the oracle contract
// address a market's OracleConfig names.
func NewAdapter(qc wasmdtypes.QueryClient, oracleAddress string) *Adapter {
	return &Adapter{QueryClient: qc, OracleAddress: oracleAddress}
}

// Price queries the oracle contract for denom's current price, retrying
// with the shared exponential backoff policy. The returned Confidence is
// nil when the contract didn't report one (non-Pyth oracle contracts
// never do); the returned code id always reflects the contract's actual
// deployed code id, as reported by the chain rather than the query
// response, so a misconfigured contract can never claim a code id it
// doesn't run.
func (a *Adapter) Price(denom string) (oracle.PriceResponse, *oracle.Confidence, *uint64, error) {
	ctx := context.Background()

	queryMsg, err := json.Marshal(priceQueryMsg{Price: priceQuery{Denom: denom}})
	if err != nil {
		return oracle.PriceResponse{}, nil, nil, err
	}

	var res *wasmdtypes.QuerySmartContractStateResponse
	retry := func() error {
		var queryErr error
		res, queryErr = a.QueryClient.SmartContractState(ctx, &wasmdtypes.QuerySmartContractStateRequest{
			Address:   a.OracleAddress,
			QueryData: queryMsg,
		})
		return queryErr
	}
	if err := backoff.Retry(retry, locustbackoff.NewBackoff(ctx)); err != nil {
		return oracle.PriceResponse{}, nil, nil, err
	}

	var parsed onChainPriceResponse
	if err := json.Unmarshal(res.Data, &parsed); err != nil {
		return oracle.PriceResponse{}, nil, nil, err
	}

	price, err := sdkmath.LegacyNewDecFromStr(parsed.Price)
	if err != nil {
		return oracle.PriceResponse{}, nil, nil, fmt.Errorf("pyth: invalid price %q for %s: %w", parsed.Price, denom, err)
	}

	resp := oracle.PriceResponse{Denom: parsed.Denom, Price: price, UpdatedAt: parsed.UpdatedAt}

	var confidence *oracle.Confidence
	if parsed.Confidence != "" {
		confValue, err := sdkmath.LegacyNewDecFromStr(parsed.Confidence)
		if err != nil {
			return oracle.PriceResponse{}, nil, nil, fmt.Errorf("pyth: invalid confidence %q for %s: %w", parsed.Confidence, denom, err)
		}
		confidence = &oracle.Confidence{Value: confValue}
	}

	codeID, err := a.reportedCodeID(ctx)
	if err != nil {
		return oracle.PriceResponse{}, nil, nil, err
	}

	return resp, confidence, codeID, nil
}

// reportedCodeID looks up the wasm code id the oracle contract is
// actually instantiated from, so oracle.ValidatePrice's pinned-code-id
// check can't be satisfied by a response field the contract controls.
func (a *Adapter) reportedCodeID(ctx context.Context) (*uint64, error) {
	var res *wasmdtypes.QueryContractInfoResponse
	retry := func() error {
		var queryErr error
		res, queryErr = a.QueryClient.ContractInfo(ctx, &wasmdtypes.QueryContractInfoRequest{Address: a.OracleAddress})
		return queryErr
	}
	if err := backoff.Retry(retry, locustbackoff.NewBackoff(ctx)); err != nil {
		return nil, err
	}
	codeID := res.ContractInfo.CodeID
	return &codeID, nil
}
