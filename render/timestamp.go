package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/musicionary/organice/model"
)

// FormatTimestamp renders a timestamp in Org syntax, for example
// "<2024-03-15 Fri 09:00-10:30 +1w>". Active timestamps use angle
// brackets, inactive ones square brackets. The day name is emitted
// verbatim when present and never derived from the date. A nil
// timestamp renders as empty text.
func FormatTimestamp(ts *model.Timestamp) string {
	if ts == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%04d-%02d-%02d", ts.Year, ts.Month, ts.Day)
	if ts.DayName != "" {
		sb.WriteByte(' ')
		sb.WriteString(ts.DayName)
	}
	if ts.HasTime {
		fmt.Fprintf(&sb, " %02d:%02d", ts.Hour, ts.Minute)
		if ts.HasEndTime {
			fmt.Fprintf(&sb, "-%02d:%02d", ts.EndHour, ts.EndMinute)
		}
	}
	if ts.HasRepeater() {
		fmt.Fprintf(&sb, " %s%d%s", ts.RepeaterMark, ts.RepeaterValue, ts.RepeaterUnit)
	}
	if ts.HasDelay() {
		fmt.Fprintf(&sb, " %s%d%s", ts.DelayMark, ts.DelayValue, ts.DelayUnit)
	}

	if ts.IsActive {
		return "<" + sb.String() + ">"
	}
	return "[" + sb.String() + "]"
}

// FormatTimestampRange renders first, or "first--second" when second is
// present.
func FormatTimestampRange(first, second *model.Timestamp) string {
	if second == nil {
		return FormatTimestamp(first)
	}
	return FormatTimestamp(first) + "--" + FormatTimestamp(second)
}

// FormatClockDuration renders a duration in minutes as "H:MM", the form
// clock lines carry after "=>". Negative durations get a leading minus.
func FormatClockDuration(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%d:%02d", sign, minutes/60, minutes%60)
}

// ClockDurationMinutes returns the span in whole minutes between a clock
// entry's start and end timestamps. Timestamps carry no zone, so both
// are interpreted on the same wall clock.
func ClockDurationMinutes(start, end *model.Timestamp) int {
	return int(timestampTime(end).Sub(timestampTime(start)) / time.Minute)
}

func timestampTime(ts *model.Timestamp) time.Time {
	return time.Date(ts.Year, time.Month(ts.Month), ts.Day, ts.Hour, ts.Minute, 0, 0, time.UTC)
}
