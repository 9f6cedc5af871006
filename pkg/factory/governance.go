package factory

import "fmt"

// ConfigUpdate carries the optional fields UpdateConfig may change,
// mirroring original_source/.../execute.rs's update_config arguments.
type ConfigUpdate struct {
	ProtocolFeeCollector *string
	MarketCreationFee    *Coin
}

// UpdateConfig applies an owner-only config change.
func (f *Factory) UpdateConfig(sender string, update ConfigUpdate) (*Outcome, error) {
	cfg, err := f.Store.LoadConfig()
	if err != nil {
		return nil, err
	}
	if sender != cfg.Owner {
		return nil, NewUnauthorizedError()
	}

	outcome := newOutcome("update_config")
	if update.ProtocolFeeCollector != nil {
		cfg.ProtocolFeeCollector = *update.ProtocolFeeCollector
		outcome.attr("protocol_fee_collector", cfg.ProtocolFeeCollector)
	}
	if update.MarketCreationFee != nil {
		cfg.MarketCreationFee = *update.MarketCreationFee
		outcome.attr("market_creation_fee", fmt.Sprintf("%s%s", cfg.MarketCreationFee.Amount, cfg.MarketCreationFee.Denom))
	}

	if err := f.Store.SaveConfig(cfg); err != nil {
		return nil, err
	}
	return outcome, nil
}

// UpdateMarketCodeID changes the code id used to instantiate future
// markets, mirroring original_source/.../execute.rs's
// update_market_code_id. Markets already created keep whatever code id
// they were instantiated with.
func (f *Factory) UpdateMarketCodeID(sender string, codeID uint64) (*Outcome, error) {
	cfg, err := f.Store.LoadConfig()
	if err != nil {
		return nil, err
	}
	if sender != cfg.Owner {
		return nil, NewUnauthorizedError()
	}

	cfg.MarketCodeID = codeID
	if err := f.Store.SaveConfig(cfg); err != nil {
		return nil, err
	}

	return newOutcome("update_market_code_id").attr("code_id", fmt.Sprintf("%d", codeID)), nil
}
