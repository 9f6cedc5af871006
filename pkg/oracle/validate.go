package oracle

import (
	"fmt"
)

// ValidatePrice runs the full six-check gauntlet from spec.md §4.3
// against a price response, in order: future timestamp (clock-skew)
// before staleness before zero-price before denom mismatch before
// code-id mismatch before confidence.
//
// The original implementation splits this into two call sites with two
// different orders: health.rs's query_price checks
// future -> staleness -> zero, while factory/execute.rs's
// validate_price_query checks denom -> zero -> staleness with no future
// check at all. spec.md §4.3 presents oracle validation as one shared
// contract every price-dependent operation consumes, so this repo
// harmonizes the two into a single function implementing the superset
// of both (every check either call site previously had), in the order
// the stricter of the two (health.rs) uses, with denom and code-id
// folded in at the positions the factory's check needs them.
func ValidatePrice(
	now uint64,
	queriedDenom string,
	cfg Config,
	resp PriceResponse,
	confidence *Confidence,
	reportingCodeID *uint64,
) error {
	if resp.UpdatedAt > now {
		return newError(ErrPriceFuture, map[string]string{
			"updated_at": fmt.Sprintf("%d", resp.UpdatedAt),
			"now":        fmt.Sprintf("%d", now),
		})
	}

	age := now - resp.UpdatedAt
	if age > cfg.Type.MaxStalenessSeconds() {
		return newError(ErrPriceStale, map[string]string{
			"age_seconds":   fmt.Sprintf("%d", age),
			"max_staleness": fmt.Sprintf("%d", cfg.Type.MaxStalenessSeconds()),
		})
	}

	if !resp.Price.IsPositive() {
		return newError(ErrZeroPrice, map[string]string{"denom": queriedDenom})
	}

	if resp.Denom != queriedDenom {
		return newError(ErrDenomMismatch, map[string]string{
			"expected": queriedDenom,
			"got":      resp.Denom,
		})
	}

	if expected := cfg.Type.ExpectedCodeIDValue(); expected != nil {
		if reportingCodeID == nil || *reportingCodeID != *expected {
			got := uint64(0)
			if reportingCodeID != nil {
				got = *reportingCodeID
			}
			return newError(ErrCodeIDMismatch, map[string]string{
				"expected": fmt.Sprintf("%d", *expected),
				"got":      fmt.Sprintf("%d", got),
			})
		}
	}

	if cfg.Type.Kind == KindPyth {
		if confidence == nil {
			return nil
		}
		if resp.Price.IsZero() {
			return newError(ErrZeroPrice, map[string]string{"denom": queriedDenom})
		}
		ratio := confidence.Value.Quo(resp.Price)
		if ratio.GT(cfg.Type.MaxConfidenceRatio) {
			return newError(ErrConfidenceTooWide, map[string]string{
				"ratio": ratio.String(),
				"max":   cfg.Type.MaxConfidenceRatio.String(),
			})
		}
	}

	return nil
}
