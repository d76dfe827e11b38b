package leapsource_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Quinten-van-Woerkom/finetime"
	"github.com/Quinten-van-Woerkom/finetime/internal/leapsource"
)

func TestParseBulletinSkipsCommentsAndBlankLines(t *testing.T) {
	const data = `# leap-seconds.list excerpt
# comment line

2272060800	10	# 1 Jan 1972
2287785600	11	# 1 Jul 1972
2303683200	12	# 1 Jan 1973
`
	records, err := leapsource.ParseBulletin(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, int64(10), records[0].TAIMinusUTC)
	assert.Equal(t, int64(11), records[1].TAIMinusUTC)
	assert.Equal(t, int64(12), records[2].TAIMinusUTC)
	assert.True(t, records[0].UTCStart < records[1].UTCStart)
	assert.True(t, records[1].UTCStart < records[2].UTCStart)
}

func TestParseBulletinRejectsMalformedLine(t *testing.T) {
	_, err := leapsource.ParseBulletin(strings.NewReader("not-a-number 10\n"))
	assert.Error(t, err)
}

func TestParseTableFileRoundTripsKnownOffset(t *testing.T) {
	const data = `# hand-maintained leap table
1972-01-01,10
1972-07-01,11
2017-01-01,37
`
	records, err := leapsource.ParseTableFile(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, int64(37), records[2].TAIMinusUTC)
	require.NoError(t, leapsource.Validate(records))
}

func TestParseTableFileRejectsBadOffset(t *testing.T) {
	_, err := leapsource.ParseTableFile(strings.NewReader("1972-01-01,not-a-number\n"))
	assert.Error(t, err)
}

func TestValidateRejectsNonMonotoneDates(t *testing.T) {
	records := []finetime.LeapSecondRecord{
		{UTCStart: 100, TAIMinusUTC: 10},
		{UTCStart: 100, TAIMinusUTC: 11},
	}
	assert.Error(t, leapsource.Validate(records))
}

func TestValidateRejectsDecreasingOffset(t *testing.T) {
	records := []finetime.LeapSecondRecord{
		{UTCStart: 100, TAIMinusUTC: 10},
		{UTCStart: 200, TAIMinusUTC: 9},
	}
	assert.Error(t, leapsource.Validate(records))
}
