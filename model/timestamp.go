package model

// Timestamp represents a single Org timestamp such as
// <2024-01-15 Mon 10:00-11:30 +1w -2d> or its inactive square-bracket
// form. Optional pieces are flagged or left zero-valued.
type Timestamp struct {
	// IsActive distinguishes <...> (active) from [...] (inactive).
	IsActive bool

	Year  int
	Month int
	Day   int

	// DayName is the abbreviated weekday as written in the source
	// ("Mon", "Di", ...). Empty when the source omitted it. It is stored
	// verbatim and never derived from the date.
	DayName string

	HasTime bool
	Hour    int
	Minute  int

	// HasEndTime marks a same-stamp time range, 10:00-11:30.
	HasEndTime bool
	EndHour    int
	EndMinute  int

	// RepeaterMark is "+", "++" or ".+"; empty when no repeater.
	RepeaterMark  string
	RepeaterValue int
	RepeaterUnit  string // "h", "d", "w", "m" or "y"

	// DelayMark is "-" or "--"; empty when no delay.
	DelayMark  string
	DelayValue int
	DelayUnit  string
}

// HasRepeater reports whether the timestamp carries a repeater interval.
func (ts *Timestamp) HasRepeater() bool { return ts.RepeaterMark != "" }

// HasDelay reports whether the timestamp carries a warning delay.
func (ts *Timestamp) HasDelay() bool { return ts.DelayMark != "" }
