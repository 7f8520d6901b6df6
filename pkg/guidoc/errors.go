package guidoc

import "fmt"

// WidgetError reports a widget line that does not match the widget grammar.
// The whole compile aborts; there is no partial output.
type WidgetError struct {
	Context string // class or file the layout belongs to
	Line    string // offending line, layout clause already stripped
}

// Error implements the error interface.
func (e *WidgetError) Error() string {
	return fmt.Sprintf("invalid syntax in layout for %s:\n\t%s", e.Context, e.Line)
}

// ParameterError reports a layout-parameter clause that does not parse as
// comma-separated key=value pairs.
type ParameterError struct {
	Context string
	Params  string // raw parameter clause
}

// Error implements the error interface.
func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameters in %s:\n\t%s", e.Context, e.Params)
}

// GridError reports an unresolvable cell placement, a failed or absent
// table parse, or a missing table parser when the caller declared one
// required.
type GridError struct {
	Context string
	Row     int    // implicated table row, -1 when not applicable
	message string // fully formatted
}

// Error implements the error interface.
func (e *GridError) Error() string { return e.message }

// newGridRowError reports a placement failure at a specific table row.
func newGridRowError(context string, row int) *GridError {
	return &GridError{
		Context: context,
		Row:     row,
		message: fmt.Sprintf("cannot find unoccupied cell in row %d in %s", row, context),
	}
}

// newGridParserError reports a grid section that cannot be parsed because
// no table parser is available.
func newGridParserError(context string) *GridError {
	return &GridError{
		Context: context,
		Row:     -1,
		message: fmt.Sprintf("missing table parser needed to parse grid sections in %s", context),
	}
}

// LayoutError reports a structural problem: no viable sections, duplicate
// widget sections, duplicate widget names, mismatched layout managers
// within a container, or no row anchor for automatic grid placement.
type LayoutError struct {
	Context string
	message string // fully formatted
}

// Error implements the error interface.
func (e *LayoutError) Error() string { return e.message }

// newLayoutErrorf creates a LayoutError; format receives args and the
// context is appended by the individual call sites' formats.
func newLayoutErrorf(context, format string, args ...any) *LayoutError {
	return &LayoutError{Context: context, message: fmt.Sprintf(format, args...)}
}
