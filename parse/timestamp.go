package parse

import (
	"regexp"
	"strconv"

	"github.com/musicionary/organice/model"
	"github.com/musicionary/organice/render"
)

// timestampPattern matches one canonical Org timestamp: bracketed date,
// optional day name, optional start and end time, optional repeater and
// delay. Hours and minutes are zero-padded to two digits; anything less
// strict would not survive re-rendering.
const timestampPattern = `([<\[])` +
	`(\d{4})-(\d{2})-(\d{2})` +
	`( ([A-Za-z]+))?` +
	`( (\d{2}):(\d{2})(-(\d{2}):(\d{2}))?)?` +
	`( (\+\+|\.\+|\+)(\d+)([hdwmy]))?` +
	`( (--|-)(\d+)([hdwmy]))?` +
	`([>\]])`

var (
	timestampRe     = regexp.MustCompile(`^` + timestampPattern + `$`)
	timestampScanRe = regexp.MustCompile(timestampPattern)
)

// ParseTimestamp parses one canonical timestamp such as
// "<2024-03-15 Fri 09:00 +1w>". It reports false for anything that
// would not re-render to exactly s, including mismatched brackets and
// unpadded hours.
func ParseTimestamp(s string) (*model.Timestamp, bool) {
	m := timestampRe.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	ts := timestampFromMatch(m)
	if render.FormatTimestamp(ts) != s {
		return nil, false
	}
	return ts, true
}

// timestampFromMatch builds a timestamp from a timestampPattern match.
// The result still needs a re-render check before it can be trusted.
func timestampFromMatch(m []string) *model.Timestamp {
	ts := &model.Timestamp{IsActive: m[1] == "<"}
	ts.Year = atoi(m[2])
	ts.Month = atoi(m[3])
	ts.Day = atoi(m[4])
	ts.DayName = m[6]
	if m[7] != "" {
		ts.HasTime = true
		ts.Hour = atoi(m[8])
		ts.Minute = atoi(m[9])
		if m[10] != "" {
			ts.HasEndTime = true
			ts.EndHour = atoi(m[11])
			ts.EndMinute = atoi(m[12])
		}
	}
	if m[13] != "" {
		ts.RepeaterMark = m[14]
		ts.RepeaterValue = atoi(m[15])
		ts.RepeaterUnit = m[16]
	}
	if m[17] != "" {
		ts.DelayMark = m[18]
		ts.DelayValue = atoi(m[19])
		ts.DelayUnit = m[20]
	}
	return ts
}

// parseTimestampRange parses "first" or "first--second", where both
// halves are canonical timestamps.
func parseTimestampRange(s string) (first, second *model.Timestamp, ok bool) {
	if ts, ok := ParseTimestamp(s); ok {
		return ts, nil, true
	}
	for i := 0; i+2 <= len(s); i++ {
		if s[i] != '-' || i+1 >= len(s) || s[i+1] != '-' {
			continue
		}
		left, okLeft := ParseTimestamp(s[:i])
		if !okLeft {
			continue
		}
		right, okRight := ParseTimestamp(s[i+2:])
		if !okRight {
			continue
		}
		return left, right, true
	}
	return nil, nil, false
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
