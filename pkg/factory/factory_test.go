package factory

import (
	"testing"

	sdkmath "cosmossdk.io/math"

	"github.com/stonefinance/stone-sub000/pkg/market"
	"github.com/stonefinance/stone-sub000/pkg/oracle"
)

const baseTimestamp = 1_700_000_000

// stubQuerier returns a fixed price per denom at a fixed updated_at,
// mirroring pkg/market's test double of the same shape.
type stubQuerier struct {
	prices    map[string]sdkmath.LegacyDec
	updatedAt uint64
}

func (q stubQuerier) Price(denom string) (oracle.PriceResponse, *oracle.Confidence, *uint64, error) {
	price, ok := q.prices[denom]
	if !ok {
		return oracle.PriceResponse{}, nil, nil, errUnknownDenom
	}
	return oracle.PriceResponse{Denom: denom, Price: price, UpdatedAt: q.updatedAt}, nil, nil, nil
}

type stubErr string

func (e stubErr) Error() string { return string(e) }

const errUnknownDenom = stubErr("unknown denom")

func testOracleConfig() oracle.Config {
	return oracle.Config{Address: "oracle1", Type: oracle.DefaultGeneric()}
}

func validCreateParams() CreateMarketParams {
	return CreateMarketParams{
		LoanToValue:            sdkmath.LegacyNewDecWithPrec(80, 2),
		LiquidationThreshold:   sdkmath.LegacyNewDecWithPrec(85, 2),
		LiquidationBonus:       sdkmath.LegacyNewDecWithPrec(5, 2),
		LiquidationProtocolFee: sdkmath.LegacyNewDecWithPrec(2, 2),
		CloseFactor:            sdkmath.LegacyNewDecWithPrec(50, 2),
		DustDebtThreshold:      sdkmath.NewInt(100),
		InterestRateModel:      market.DefaultInterestRateModel(),
		ProtocolFee:            sdkmath.LegacyNewDecWithPrec(10, 2),
		CuratorFee:             sdkmath.LegacyNewDecWithPrec(5, 2),
		IsMutable:              false,
	}
}

func testConfig() Config {
	return Config{
		Owner:                "owner1",
		ProtocolFeeCollector: "collector1",
		MarketCreationFee:    Coin{Denom: "uosmo", Amount: sdkmath.NewInt(1_000_000)},
		MarketCodeID:         1,
	}
}

func testFactory(t *testing.T) (*Factory, *MapStore) {
	t.Helper()
	store := NewMapStore(testConfig())
	querier := stubQuerier{
		prices: map[string]sdkmath.LegacyDec{
			"uatom": sdkmath.LegacyNewDec(10),
			"uusdc": sdkmath.LegacyOneDec(),
		},
		updatedAt: baseTimestamp,
	}
	return New(store, querier, nil), store
}
