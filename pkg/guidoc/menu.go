package guidoc

import (
	"regexp"
	"strings"
)

// MenuKind identifies the kind of a menu item.
type MenuKind int

const (
	MenuNormal MenuKind = iota
	MenuSeparator
	MenuCheck
	MenuRadio
)

// String returns the menu kind name.
func (k MenuKind) String() string {
	switch k {
	case MenuSeparator:
		return "separator"
	case MenuCheck:
		return "check"
	case MenuRadio:
		return "radio"
	default:
		return "normal"
	}
}

// menuRe matches a menu item line: an optional kind marker, a label that
// may be quoted to allow internal whitespace, and trailing arguments.
var menuRe = regexp.MustCompile(`^(\*|\[\])?\s*([^\s'"]+|"[^"]+"|'[^']+')\s*(.*)`)

// menuSepRe matches a separator line.
var menuSepRe = regexp.MustCompile(`^----`)

// nonWordRe matches characters that cannot appear in an identifier.
var nonWordRe = regexp.MustCompile(`\W`)

// MenuNode is one item in a parsed menu tree. Separator items carry no
// label, arguments, or children.
type MenuNode struct {
	Label     string   // display text, accelerator marker removed
	Kind      MenuKind // normal, separator, check, or radio
	Args      string   // raw arguments, passed through verbatim
	Underline int      // zero-based accelerator offset, -1 when none
	Children  []*MenuNode
}

// menuChildren exposes the child list for the indent tree builder.
func menuChildren(n *MenuNode) *[]*MenuNode { return &n.Children }

// newMenuNode builds a menu node from a raw label, stripping surrounding
// quotes and extracting the first '&' accelerator marker.
func newMenuNode(label string, kind MenuKind, args string) *MenuNode {
	if len(label) > 2 && label[0] == label[len(label)-1] && (label[0] == '"' || label[0] == '\'') {
		label = label[1 : len(label)-1]
	}

	underline := strings.IndexByte(label, '&')
	if underline >= 0 && len(label) > 1 {
		label = label[:underline] + label[underline+1:]
	}

	return &MenuNode{Label: label, Kind: kind, Args: args, Underline: underline}
}

// Identifier converts the label to a valid name token: non-word characters
// become underscores and a leading digit gets an underscore prepended.
func (n *MenuNode) Identifier() string {
	id := nonWordRe.ReplaceAllString(n.Label, "_")
	if id != "" && id[0] >= '0' && id[0] <= '9' {
		id = "_" + id
	}
	return id
}

// parseMenuLine parses one menu item line. A line that matches neither the
// separator nor the item grammar degrades to a normal item whose label is
// the whole line; menu parsing never fails.
func parseMenuLine(line, context string) (*MenuNode, error) {
	if menuSepRe.MatchString(line) {
		return &MenuNode{Kind: MenuSeparator, Underline: -1}, nil
	}

	m := menuRe.FindStringSubmatch(line)
	if m == nil {
		return newMenuNode(line, MenuNormal, ""), nil
	}

	kind := MenuNormal
	switch m[1] {
	case "*":
		kind = MenuRadio
	case "[]":
		kind = MenuCheck
	}

	return newMenuNode(m[2], kind, m[3]), nil
}

// parseMenuSection parses the raw lines of a menu section into a tree of
// menu items.
func parseMenuSection(sec *Section, context string) ([]*MenuNode, error) {
	return buildIndentTree(sec.Lines, context, parseMenuLine, menuChildren)
}
