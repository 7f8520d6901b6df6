package guidoc

import (
	"regexp"
	"strings"
)

// widgetRe matches a widget spec line: name(kind[| constructor args]).
// The kind may be dotted for module-qualified widget classes.
var widgetRe = regexp.MustCompile(`^(\w+)\s*\(\s*([\w.]+)\s*(?:\|\s*(.*))?\)$`)

// layoutRe matches the optional trailing layout clause: <manager[| params]>.
var layoutRe = regexp.MustCompile(`<\s*(\w+)\s*(?:\|\s*([^>]*))?>$`)

// WidgetNode is one widget in the parsed widget tree.
type WidgetNode struct {
	Name         string  // instance name, globally unique across the tree
	Kind         string  // widget type, optionally dotted
	Args         string  // raw constructor arguments, passed through verbatim
	LayoutMgr    string  // layout manager, empty until defaulted
	LayoutParams *Params // layout manager parameters
	Children     []*WidgetNode
}

// widgetChildren exposes the child list for the indent tree builder.
func widgetChildren(w *WidgetNode) *[]*WidgetNode { return &w.Children }

// parseWidgetLine parses one widget spec line. The layout clause, if
// present, is stripped before the main pattern is applied.
func parseWidgetLine(line, context string) (*WidgetNode, error) {
	var layoutMgr, layoutClause string

	if loc := layoutRe.FindStringSubmatchIndex(line); loc != nil {
		layoutMgr = line[loc[2]:loc[3]]
		if loc[4] >= 0 {
			layoutClause = line[loc[4]:loc[5]]
		}
		line = strings.TrimRight(line[:loc[0]], " \t")
	}

	m := widgetRe.FindStringSubmatch(line)
	if m == nil {
		return nil, &WidgetError{Context: context, Line: line}
	}

	layoutParams := NewParams()
	if layoutClause != "" {
		var err error
		layoutParams, err = parseParams(layoutClause, context)
		if err != nil {
			return nil, err
		}
	}

	return &WidgetNode{
		Name:         m[1],
		Kind:         m[2],
		Args:         m[3],
		LayoutMgr:    layoutMgr,
		LayoutParams: layoutParams,
	}, nil
}

// parseWidgetSection parses the raw lines of a widgets section into a
// forest of widget nodes.
func parseWidgetSection(sec *Section, context string) ([]*WidgetNode, error) {
	return buildIndentTree(sec.Lines, context, parseWidgetLine, widgetChildren)
}
