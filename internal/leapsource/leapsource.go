// Package leapsource parses leap-second source files into the
// []finetime.LeapSecondRecord values from which the library's built-in
// table is transcribed. It is a build-time-only tool and is never imported
// by finetime's runtime code. No go:generate directive invokes it; its
// output is copied into builtinLeapSeconds by hand, or passed to
// finetime.Initialize at run time.
package leapsource

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Quinten-van-Woerkom/finetime"
)

// ntpEpoch is the epoch the NIST/IERS leap-seconds.list file counts from.
var ntpEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// taiEpoch is the epoch finetime.LeapSecondRecord.UTCStart counts from.
var taiEpoch = time.Date(1958, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseBulletin parses the IERS/NIST "leap-seconds.list" bulletin format: one
// data line per entry, "<NTP seconds since 1900-01-01> <TAI-UTC offset>",
// followed by an optional "#" comment; blank lines and lines starting with
// "#" are ignored. Entries are returned in file order; callers that need a
// sorted, validated table should pass the result through Validate.
func ParseBulletin(r io.Reader) ([]finetime.LeapSecondRecord, error) {
	scanner := bufio.NewScanner(r)
	var records []finetime.LeapSecondRecord
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("leapsource: line %d: expected \"<ntp-seconds> <offset>\", got %q", lineNo, line)
		}
		ntpSeconds, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("leapsource: line %d: invalid NTP seconds %q: %w", lineNo, fields[0], err)
		}
		offset, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("leapsource: line %d: invalid TAI-UTC offset %q: %w", lineNo, fields[1], err)
		}
		effective := ntpEpoch.Add(time.Duration(ntpSeconds) * time.Second)
		utcStart := int64(effective.Sub(taiEpoch) / time.Second)
		records = append(records, finetime.LeapSecondRecord{UTCStart: utcStart, TAIMinusUTC: offset})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("leapsource: %w", err)
	}
	return records, nil
}

// ParseTableFile parses a pre-parsed table: one "YYYY-MM-DD,<offset>" entry
// per line, with "#"-prefixed comment lines and blank lines ignored. This is
// the format a maintainer would hand-edit directly, as opposed to the raw
// bulletin ParseBulletin consumes.
func ParseTableFile(r io.Reader) ([]finetime.LeapSecondRecord, error) {
	scanner := bufio.NewScanner(r)
	var records []finetime.LeapSecondRecord
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			return nil, fmt.Errorf("leapsource: line %d: expected \"YYYY-MM-DD,<offset>\", got %q", lineNo, line)
		}
		date, err := time.Parse("2006-01-02", strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("leapsource: line %d: invalid date %q: %w", lineNo, fields[0], err)
		}
		offset, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("leapsource: line %d: invalid TAI-UTC offset %q: %w", lineNo, fields[1], err)
		}
		utcStart := int64(date.Sub(taiEpoch) / time.Second)
		records = append(records, finetime.LeapSecondRecord{UTCStart: utcStart, TAIMinusUTC: offset})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("leapsource: %w", err)
	}
	return records, nil
}

// Validate checks that records is sorted by UTCStart and that TAIMinusUTC is
// non-decreasing, the invariant finetime.Initialize requires of its input.
func Validate(records []finetime.LeapSecondRecord) error {
	for i := 1; i < len(records); i++ {
		prev, cur := records[i-1], records[i]
		if cur.UTCStart <= prev.UTCStart {
			return fmt.Errorf("leapsource: record %d (UTCStart=%d) does not strictly follow record %d (UTCStart=%d)", i, cur.UTCStart, i-1, prev.UTCStart)
		}
		if cur.TAIMinusUTC < prev.TAIMinusUTC {
			return fmt.Errorf("leapsource: record %d (TAIMinusUTC=%d) decreases from record %d (TAIMinusUTC=%d)", i, cur.TAIMinusUTC, i-1, prev.TAIMinusUTC)
		}
	}
	return nil
}
