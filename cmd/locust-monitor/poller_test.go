package main

import (
	"context"
	"errors"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stonefinance/stone-sub000/pkg/config"
	"github.com/stonefinance/stone-sub000/pkg/oracle"
)

type stubQuerier struct {
	prices map[string]sdkmath.LegacyDec
}

func (s *stubQuerier) Price(denom string) (oracle.PriceResponse, *oracle.Confidence, *uint64, error) {
	price, ok := s.prices[denom]
	if !ok {
		return oracle.PriceResponse{}, nil, nil, errors.New("unknown denom")
	}
	return oracle.PriceResponse{Denom: denom, Price: price, UpdatedAt: 100}, nil, nil, nil
}

func TestPollerLogsEachConfiguredMarket(t *testing.T) {
	querier := &stubQuerier{prices: map[string]sdkmath.LegacyDec{
		"uatom": sdkmath.LegacyNewDec(10),
		"uusdc": sdkmath.LegacyNewDec(1),
		"uosmo": sdkmath.LegacyNewDec(2),
	}}
	markets := []config.MarketWatch{
		{MarketID: "market1", CollateralDenom: "uatom", DebtDenom: "uusdc"},
		{MarketID: "market2", CollateralDenom: "uosmo", DebtDenom: "uusdc"},
	}

	poller := newPricePoller(zap.NewNop(), querier, markets)
	require.NoError(t, poller.Poll(context.Background()))
}

func TestPollerReturnsErrorForUnknownDenom(t *testing.T) {
	querier := &stubQuerier{prices: map[string]sdkmath.LegacyDec{"uatom": sdkmath.LegacyNewDec(10)}}
	markets := []config.MarketWatch{
		{MarketID: "market1", CollateralDenom: "uatom", DebtDenom: "unknown"},
	}

	poller := newPricePoller(zap.NewNop(), querier, markets)
	require.Error(t, poller.Poll(context.Background()))
}

func TestDistinctDenomsDeduplicates(t *testing.T) {
	markets := []config.MarketWatch{
		{MarketID: "market1", CollateralDenom: "uatom", DebtDenom: "uusdc"},
		{MarketID: "market2", CollateralDenom: "uatom", DebtDenom: "uosmo"},
	}
	poller := newPricePoller(zap.NewNop(), &stubQuerier{}, markets)
	require.ElementsMatch(t, []string{"uatom", "uusdc", "uosmo"}, poller.distinctDenoms())
}
