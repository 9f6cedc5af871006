package factory

// MarketConfigReadback is the authoritative config the host reads back
// from the newly instantiated market contract/process before calling
// CompleteCreateMarket, standing in for
// original_source/.../execute.rs's handle_instantiate_reply querying
// MarketQueryMsg::Config against the freshly created market.
type MarketConfigReadback struct {
	Curator         string
	CollateralDenom string
	DebtDenom       string
}

// CompleteCreateMarket is the reply-frame continuation of
// BeginCreateMarket: given the host-reported market address and an
// authoritative config readback from that market, it re-derives
// market_id from the SAME salt stashed by BeginCreateMarket (so the id
// matches the one checked for collision at creation), writes the
// MarketRecord to every lookup index, and clears the pending salt.
//
func (f *Factory) CompleteCreateMarket(now uint64, marketAddress string, readback MarketConfigReadback) (*Outcome, error) {
	salt, hasSalt, err := f.Store.LoadPendingMarketSalt()
	if err != nil {
		return nil, err
	}
	if !hasSalt {
		return nil, NewNoPendingMarketSaltError()
	}

	marketID := ComputeMarketID(readback.CollateralDenom, readback.DebtDenom, readback.Curator, salt)

	record := MarketRecord{
		MarketID:        marketID,
		Address:         marketAddress,
		Curator:         readback.Curator,
		CollateralDenom: readback.CollateralDenom,
		DebtDenom:       readback.DebtDenom,
		CreatedAt:       now,
	}
	if err := f.Store.SaveMarket(record); err != nil {
		return nil, err
	}
	if err := f.Store.RemovePendingMarketSalt(); err != nil {
		return nil, err
	}

	return newOutcome("market_instantiated").
		attr("market_id", marketID).
		attr("market_address", marketAddress), nil
}
