package factory

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/stonefinance/stone-sub000/pkg/oracle"
)

// BeginCreateMarket runs every check original_source/.../execute.rs's
// create_market performs before dispatching WasmMsg::Instantiate, and
// returns the would-be instantiate request instead of dispatching it:
// same-denom, creation fee, parameter validation, oracle pre-validation
// for both denoms, market-id derivation and collision detection. feeSent
// stands in for the MessageInfo.funds entry matching the configured fee
// denom (zero Coin if none was attached).
//
// On success it also records MarketCount+1 and the pending salt, since
// the original increments/saves these unconditionally alongside the
// submessage dispatch — both must happen before CompleteCreateMarket can
// run, so there is no later point to defer them to.
func (f *Factory) BeginCreateMarket(now uint64, sender string, feeSent Coin, req CreateMarketRequest) (*Outcome, MarketInstantiateRequest, error) {
	cfg, err := f.Store.LoadConfig()
	if err != nil {
		return nil, MarketInstantiateRequest{}, err
	}

	if req.CollateralDenom == req.DebtDenom {
		return nil, MarketInstantiateRequest{}, NewSameDenomError()
	}

	feeRequired := cfg.MarketCreationFee
	sentAmount := feeSent.Amount
	if feeSent.Denom != feeRequired.Denom {
		sentAmount = sdkmath.ZeroInt()
	}
	if sentAmount.LT(feeRequired.Amount) {
		return nil, MarketInstantiateRequest{}, NewInsufficientCreationFeeError(
			fmt.Sprintf("%s%s", feeRequired.Amount, feeRequired.Denom),
			fmt.Sprintf("%s%s", sentAmount, feeRequired.Denom),
		)
	}

	if err := req.Params.Validate(); err != nil {
		return nil, MarketInstantiateRequest{}, err
	}

	if err := f.validateOracle(now, req.OracleConfig, req.CollateralDenom, req.DebtDenom); err != nil {
		return nil, MarketInstantiateRequest{}, err
	}

	marketID := ComputeMarketID(req.CollateralDenom, req.DebtDenom, sender, req.Salt)
	if _, exists, err := f.Store.LoadMarket(marketID); err != nil {
		return nil, MarketInstantiateRequest{}, err
	} else if exists {
		return nil, MarketInstantiateRequest{}, NewMarketAlreadyExistsError(marketID)
	}

	instantiate := MarketInstantiateRequest{
		CodeID:               cfg.MarketCodeID,
		Label:                fmt.Sprintf("stone-market-%s", marketID[:8]),
		Curator:              sender,
		OracleConfig:         req.OracleConfig,
		CollateralDenom:      req.CollateralDenom,
		DebtDenom:            req.DebtDenom,
		ProtocolFeeCollector: cfg.ProtocolFeeCollector,
		Params:              req.Params.ToMarketParams(),
	}

	outcome := newOutcome("create_market").
		attr("market_id", marketID).
		attr("curator", sender).
		attr("collateral_denom", req.CollateralDenom).
		attr("debt_denom", req.DebtDenom)
	if feeRequired.Amount.IsPositive() {
		outcome.transfer(cfg.ProtocolFeeCollector, feeRequired.Denom, feeRequired.Amount.String())
	}

	count, err := f.Store.LoadMarketCount()
	if err != nil {
		return nil, MarketInstantiateRequest{}, err
	}
	if err := f.Store.SaveMarketCount(count + 1); err != nil {
		return nil, MarketInstantiateRequest{}, err
	}
	if err := f.Store.SavePendingMarketSalt(req.Salt); err != nil {
		return nil, MarketInstantiateRequest{}, err
	}

	return outcome, instantiate, nil
}

// validateOracle mirrors original_source/.../execute.rs's validate_oracle:
// an optional pinned code-id check (delegated to the caller via the
// reporting code id oracle.Querier.Price returns) followed by a full
// price-validity check for both denoms.
func (f *Factory) validateOracle(now uint64, cfg oracle.Config, collateralDenom, debtDenom string) error {
	for _, denom := range []string{collateralDenom, debtDenom} {
		resp, confidence, codeID, err := f.Oracle.Price(denom)
		if err != nil {
			return NewInvalidOracleError(denom)
		}
		if err := oracle.ValidatePrice(now, denom, cfg, resp, confidence, codeID); err != nil {
			return err
		}
	}
	return nil
}
