package finetime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Quinten-van-Woerkom/finetime"
)

func TestRatioMillisecondToSecond(t *testing.T) {
	num, den := finetime.Ratio[finetime.Millisecond, finetime.Second]()
	assert.Equal(t, int64(1), num)
	assert.Equal(t, int64(1000), den)
}

func TestRatioHourToSecond(t *testing.T) {
	num, den := finetime.Ratio[finetime.Hour, finetime.Second]()
	assert.Equal(t, int64(3600), num)
	assert.Equal(t, int64(1), den)
}

func TestRatioIsReducedToLowestTerms(t *testing.T) {
	num, den := finetime.Ratio[finetime.Decisecond, finetime.Centisecond]()
	assert.Equal(t, int64(10), num)
	assert.Equal(t, int64(1), den)
}

func TestRatioSameUnitIsIdentity(t *testing.T) {
	num, den := finetime.Ratio[finetime.Nanosecond, finetime.Nanosecond]()
	assert.Equal(t, int64(1), num)
	assert.Equal(t, int64(1), den)
}

func TestUnitNames(t *testing.T) {
	var ms finetime.Millisecond
	assert.Equal(t, "ms", ms.Name())
	var h finetime.Hour
	assert.Equal(t, "h", h.Name())
}
