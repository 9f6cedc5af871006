package factory

import "sort"

const (
	defaultPageLimit = 10
	maxPageLimit     = 30
)

// MarketsResponse wraps a page of MarketRecord results, mirroring
// original_source/.../query.rs's MarketsResponse.
type MarketsResponse struct {
	Markets []MarketRecord
}

// ConfigQuery returns the factory's current configuration.
func (f *Factory) ConfigQuery() (Config, error) {
	return f.Store.LoadConfig()
}

// MarketQuery looks up a single market by its id.
func (f *Factory) MarketQuery(marketID string) (MarketRecord, error) {
	record, ok, err := f.Store.LoadMarket(marketID)
	if err != nil {
		return MarketRecord{}, err
	}
	if !ok {
		return MarketRecord{}, NewMarketNotFoundError(marketID)
	}
	return record, nil
}

// MarketByAddressQuery resolves a market's id from its contract address
// before loading the full record.
func (f *Factory) MarketByAddressQuery(address string) (MarketRecord, error) {
	marketID, ok, err := f.Store.LoadMarketByAddress(address)
	if err != nil {
		return MarketRecord{}, err
	}
	if !ok {
		return MarketRecord{}, NewMarketNotFoundError(address)
	}
	return f.MarketQuery(marketID)
}

// MarketsQuery paginates every registered market in ascending market_id
// order, mirroring original_source/.../query.rs's markets.
func (f *Factory) MarketsQuery(startAfter *string, limit *uint32) (MarketsResponse, error) {
	return f.paginate(f.Store.ListMarketIDs(), startAfter, limit)
}

// MarketsByCuratorQuery paginates a single curator's markets.
func (f *Factory) MarketsByCuratorQuery(curator string, startAfter *string, limit *uint32) (MarketsResponse, error) {
	return f.paginate(f.Store.ListMarketIDsByCurator(curator), startAfter, limit)
}

// MarketsByCollateralQuery paginates every market using collateralDenom
// as its collateral asset.
func (f *Factory) MarketsByCollateralQuery(collateralDenom string, startAfter *string, limit *uint32) (MarketsResponse, error) {
	return f.paginate(f.Store.ListMarketIDsByCollateral(collateralDenom), startAfter, limit)
}

// MarketsByDebtQuery paginates every market using debtDenom as its debt
// asset.
func (f *Factory) MarketsByDebtQuery(debtDenom string, startAfter *string, limit *uint32) (MarketsResponse, error) {
	return f.paginate(f.Store.ListMarketIDsByDebt(debtDenom), startAfter, limit)
}

// MarketCountQuery returns the total number of markets ever created
// (never decremented, matching the original's MARKET_COUNT semantics).
func (f *Factory) MarketCountQuery() (uint64, error) {
	return f.Store.LoadMarketCount()
}

// ComputeMarketIDQuery exposes ComputeMarketID as a read-only query, so
// a curator can preview the id a creation call would produce.
func ComputeMarketIDQuery(collateralDenom, debtDenom, curator string, salt *uint64) string {
	return ComputeMarketID(collateralDenom, debtDenom, curator, salt)
}

// paginate applies the exclusive-after start_after / capped-limit
// pagination semantics every factory list query shares: sortedIDs is
// assumed already in ascending order (ListMarketIDs* guarantees this).
func (f *Factory) paginate(sortedIDs []string, startAfter *string, limit *uint32) (MarketsResponse, error) {
	n := defaultPageLimit
	if limit != nil {
		n = int(*limit)
		if n > maxPageLimit {
			n = maxPageLimit
		}
	}

	start := 0
	if startAfter != nil {
		start = sort.SearchStrings(sortedIDs, *startAfter)
		if start < len(sortedIDs) && sortedIDs[start] == *startAfter {
			start++
		}
	}

	end := start + n
	if end > len(sortedIDs) {
		end = len(sortedIDs)
	}
	if start > end {
		start = end
	}

	records := make([]MarketRecord, 0, end-start)
	for _, id := range sortedIDs[start:end] {
		record, ok, err := f.Store.LoadMarket(id)
		if err != nil {
			return MarketsResponse{}, err
		}
		if ok {
			records = append(records, record)
		}
	}
	return MarketsResponse{Markets: records}, nil
}
