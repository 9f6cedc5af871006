package pyth

import (
	"fmt"
	"math"

	sdkmath "cosmossdk.io/math"
)

// convertPrice turns a Hermes mantissa+exponent pair into a LegacyDec,
// adapted from pkg/contracts/pyth/helpers.go's ConvertPythPrice: that
// version scales into a plain Int since the original oracle contract's
// PriceResponse carries an already-scaled Uint128; this port's
// oracle.PriceResponse.Price is itself a Decimal, so a negative exponent
// becomes exact fractional precision instead of integer division.
func convertPrice(rawPrice string, exponent int) (sdkmath.LegacyDec, error) {
	mantissa, ok := sdkmath.NewIntFromString(rawPrice)
	if !ok {
		return sdkmath.LegacyDec{}, fmt.Errorf("invalid price value: %s", rawPrice)
	}

	if exponent < 0 {
		return sdkmath.LegacyNewDecFromIntWithPrec(mantissa, int64(-exponent)), nil
	}
	scale := sdkmath.NewInt(int64(math.Pow10(exponent)))
	return sdkmath.LegacyNewDecFromInt(mantissa.Mul(scale)), nil
}

// ParsedPrice decodes a HermesResponse's first parsed feed into a
// LegacyDec, for callers that only need a human-readable off-chain price
// rather than the raw update blob.
func ParsedPrice(resp *HermesResponse) (sdkmath.LegacyDec, error) {
	if len(resp.Parsed) == 0 {
		return sdkmath.LegacyDec{}, fmt.Errorf("pyth: response has no parsed feeds")
	}
	p := resp.Parsed[0].Price
	return convertPrice(p.Price, p.Exponent)
}
