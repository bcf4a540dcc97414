package organice

import (
	"github.com/musicionary/organice/render"
)

// serializeOptions holds configuration shared by the parse and render
// sides of a Serializer.
type serializeOptions struct {
	// dontIndent renders property and logbook drawers flush left. The
	// parser mirrors the setting so flush drawers still lift.
	dontIndent bool

	// planning filters rendered planning items. Nil means
	// render.DefaultPlanningFilter.
	planning render.PlanningFilter
}

// defaultSerializeOptions returns the default serialization options.
func defaultSerializeOptions() serializeOptions {
	return serializeOptions{
		dontIndent: false,
		planning:   nil,
	}
}

// clone creates a copy of serializeOptions.
func (o serializeOptions) clone() serializeOptions {
	return serializeOptions{
		dontIndent: o.dontIndent,
		planning:   o.planning,
	}
}
