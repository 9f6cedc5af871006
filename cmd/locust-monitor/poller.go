// Command locust-monitor periodically samples the oracle prices backing a
// configured set of markets and logs them, adapted from
// pkg/base.Strategy.GetPrices's concurrent fan-out-then-join pattern.
package main

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/stonefinance/stone-sub000/pkg/config"
	"github.com/stonefinance/stone-sub000/pkg/oracle"
)

// pricePoller samples every denom referenced by the configured markets
// on each tick and logs the result.
type pricePoller struct {
	logger  *zap.Logger
	querier oracle.Querier
	markets []config.MarketWatch
}

func newPricePoller(logger *zap.Logger, querier oracle.Querier, markets []config.MarketWatch) *pricePoller {
	return &pricePoller{logger: logger, querier: querier, markets: markets}
}

type denomSample struct {
	price      oracle.PriceResponse
	confidence *oracle.Confidence
	codeID     *uint64
	err        error
}

// Poll fetches every distinct denom referenced across the configured
// markets concurrently, mirroring GetPrices's per-provider goroutine
// fan-out, and logs one line per market once both of its denoms resolve.
func (p *pricePoller) Poll(ctx context.Context) error {
	denoms := p.distinctDenoms()

	samples := make(map[string]denomSample, len(denoms))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, denom := range denoms {
		wg.Add(1)
		go func(denom string) {
			defer wg.Done()
			price, confidence, codeID, err := p.querier.Price(denom)

			mu.Lock()
			samples[denom] = denomSample{price: price, confidence: confidence, codeID: codeID, err: err}
			mu.Unlock()
		}(denom)
	}
	wg.Wait()

	var fetchErr error
	for _, market := range p.markets {
		collateral, debt := samples[market.CollateralDenom], samples[market.DebtDenom]

		if collateral.err != nil {
			p.logger.Error("failed to fetch collateral price",
				zap.String("market_id", market.MarketID),
				zap.String("denom", market.CollateralDenom),
				zap.Error(collateral.err))
			fetchErr = fmt.Errorf("market %s: %w", market.MarketID, collateral.err)
			continue
		}
		if debt.err != nil {
			p.logger.Error("failed to fetch debt price",
				zap.String("market_id", market.MarketID),
				zap.String("denom", market.DebtDenom),
				zap.Error(debt.err))
			fetchErr = fmt.Errorf("market %s: %w", market.MarketID, debt.err)
			continue
		}

		p.logger.Info("market prices",
			zap.String("market_id", market.MarketID),
			zap.String("collateral_denom", market.CollateralDenom),
			zap.String("collateral_price", collateral.price.Price.String()),
			zap.Uint64("collateral_updated_at", collateral.price.UpdatedAt),
			zap.String("debt_denom", market.DebtDenom),
			zap.String("debt_price", debt.price.Price.String()),
			zap.Uint64("debt_updated_at", debt.price.UpdatedAt),
		)
	}

	return fetchErr
}

func (p *pricePoller) distinctDenoms() []string {
	seen := make(map[string]struct{})
	var denoms []string
	for _, market := range p.markets {
		for _, denom := range []string{market.CollateralDenom, market.DebtDenom} {
			if _, ok := seen[denom]; ok {
				continue
			}
			seen[denom] = struct{}{}
			denoms = append(denoms, denom)
		}
	}
	return denoms
}
