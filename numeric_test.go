package finetime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Quinten-van-Woerkom/finetime"
)

func TestCheckedAddOverflow(t *testing.T) {
	_, err := finetime.CheckedAdd[int8](120, 10)
	assert.ErrorIs(t, err, finetime.ErrArithmeticOverflow)

	sum, err := finetime.CheckedAdd[int8](100, 20)
	require.NoError(t, err)
	assert.Equal(t, int8(120), sum)
}

func TestCheckedSubOverflow(t *testing.T) {
	_, err := finetime.CheckedSub[uint8](1, 2)
	assert.ErrorIs(t, err, finetime.ErrArithmeticOverflow)
}

func TestCheckedMulOverflow(t *testing.T) {
	_, err := finetime.CheckedMul[int16](1000, 1000)
	assert.ErrorIs(t, err, finetime.ErrArithmeticOverflow)

	product, err := finetime.CheckedMul[int32](1000, 1000)
	require.NoError(t, err)
	assert.Equal(t, int32(1_000_000), product)
}

func TestCheckedArithmeticNeverOverflowsForFloats(t *testing.T) {
	sum, err := finetime.CheckedAdd(1e300, 1e300)
	require.NoError(t, err)
	assert.InDelta(t, 2e300, sum, 1e290)
}

func TestScaleRatioExactRejectsInexactDivision(t *testing.T) {
	_, err := finetime.ScaleRatioExact[int64](1, 1, 3)
	assert.ErrorIs(t, err, finetime.ErrArithmeticOverflow)

	v, err := finetime.ScaleRatioExact[int64](6, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)
}

func TestScaleRatioRoundsHalfToEven(t *testing.T) {
	v, err := finetime.ScaleRatio[int64](1, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v) // 0.5 rounds to even (0)

	v, err = finetime.ScaleRatio[int64](3, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v) // 1.5 rounds to even (2)
}

func TestScaleRatioFloatIsDirectMultiplication(t *testing.T) {
	v, err := finetime.ScaleRatio[float64](7, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)
}
