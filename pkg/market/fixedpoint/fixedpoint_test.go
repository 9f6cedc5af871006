package fixedpoint_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stonefinance/stone-sub000/pkg/market/fixedpoint"
)

func dec(s string) sdkmath.LegacyDec {
	d, err := sdkmath.LegacyNewDecFromStr(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAmountToScaledCeil(t *testing.T) {
	// original_source/packages/types/src/math.rs: amount_to_scaled_ceil(1000, 1.1) == 910
	got, err := fixedpoint.AmountToScaledCeil(sdkmath.NewInt(1000), dec("1.1"))
	require.NoError(t, err)
	assert.Equal(t, "910", got.String())
}

func TestScaledToAmountCeil(t *testing.T) {
	// scaled_to_amount_ceil(910, 1.1) == 1001
	got := fixedpoint.ScaledToAmountCeil(sdkmath.NewInt(910), dec("1.1"))
	assert.Equal(t, "1001", got.String())
}

func TestBorrowRecordsAtLeastAmountBorrowed(t *testing.T) {
	idx := dec("1.1")
	borrowed := sdkmath.NewInt(1000)
	scaled, err := fixedpoint.AmountToScaledCeil(borrowed, idx)
	require.NoError(t, err)
	recorded := fixedpoint.ScaledToAmountCeil(scaled, idx)
	assert.True(t, recorded.GTE(borrowed))
}

func TestAmountToScaledFloorExact(t *testing.T) {
	got, err := fixedpoint.AmountToScaledFloor(sdkmath.NewInt(1000), dec("1.1"))
	require.NoError(t, err)
	assert.Equal(t, "909", got.String())
}

func TestRoundTripFloorNeverExceedsOriginal(t *testing.T) {
	idx := dec("1.1")
	amount := sdkmath.NewInt(1000)
	scaled, err := fixedpoint.AmountToScaledFloor(amount, idx)
	require.NoError(t, err)
	back := fixedpoint.ScaledToAmountFloor(scaled, idx)
	assert.True(t, back.LTE(amount))
}

func TestRoundTripCeilNeverUndershootsOriginal(t *testing.T) {
	idx := dec("1.1")
	amount := sdkmath.NewInt(1000)
	scaled, err := fixedpoint.AmountToScaledCeil(amount, idx)
	require.NoError(t, err)
	back := fixedpoint.ScaledToAmountCeil(scaled, idx)
	assert.True(t, back.GTE(amount))
}

func TestDivideByZero(t *testing.T) {
	_, err := fixedpoint.AmountToScaledFloor(sdkmath.NewInt(100), sdkmath.LegacyZeroDec())
	assert.ErrorIs(t, err, fixedpoint.ErrDivideByZero)

	_, err = fixedpoint.AmountToScaledCeil(sdkmath.NewInt(100), sdkmath.LegacyZeroDec())
	assert.ErrorIs(t, err, fixedpoint.ErrDivideByZero)
}

func TestSaturatingSub(t *testing.T) {
	assert.Equal(t, "0", fixedpoint.SaturatingSub(sdkmath.NewInt(5), sdkmath.NewInt(10)).String())
	assert.Equal(t, "5", fixedpoint.SaturatingSub(sdkmath.NewInt(10), sdkmath.NewInt(5)).String())
}

func TestNarrowToU128(t *testing.T) {
	ok, err := fixedpoint.NarrowToU128(fixedpoint.MaxU128)
	require.NoError(t, err)
	assert.Equal(t, fixedpoint.MaxU128, ok)

	overflow := fixedpoint.MaxU128.Add(sdkmath.OneInt())
	_, err = fixedpoint.NarrowToU128(overflow)
	assert.ErrorIs(t, err, fixedpoint.ErrMathOverflow)

	_, err = fixedpoint.NarrowToU128(sdkmath.NewInt(-1))
	assert.ErrorIs(t, err, fixedpoint.ErrMathOverflow)
}
