package guidoc

import (
	"regexp"
	"strings"
)

// SectionKind tags the variants of a spec section.
type SectionKind int

const (
	SectionUnknown SectionKind = iota
	SectionWidgets
	SectionGrid
	SectionMenu
)

// String returns the section kind name.
func (k SectionKind) String() string {
	switch k {
	case SectionWidgets:
		return "widgets"
	case SectionGrid:
		return "grid"
	case SectionMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// sectionKinds maps a header keyword to its section kind. Names not in
// the table produce untyped sections whose lines are kept but ignored.
var sectionKinds = map[string]SectionKind{
	"widgets": SectionWidgets,
	"grid":    SectionGrid,
	"menu":    SectionMenu,
}

// Section is one named, delimited block of the spec text.
type Section struct {
	Kind  SectionKind
	Name  string   // header keyword, lowercased
	Param string   // optional single header parameter
	Lines []string // raw content lines, comments stripped
}

// headerRe matches a section heading: [ name [param] ].
var headerRe = regexp.MustCompile(`^\s*\[\s*([^\]]+)\s*\]`)

// stripComment removes an end-of-line comment. The search is naive: it has
// no awareness of quoting, so a '#' inside a quoted argument truncates the
// line, and the comment is taken from the last '#' (a known limitation).
func stripComment(l string) string {
	if i := strings.LastIndexByte(l, '#'); i >= 0 {
		return l[:i]
	}
	return l
}

// splitSections breaks a full layout spec into sections. An implicit
// widgets section is open before the first header so the common case needs
// no header at all. Sections with no content lines are dropped.
func splitSections(spec string) []*Section {
	var sections []*Section
	cur := &Section{Kind: SectionWidgets, Name: "widgets"}

	for _, l := range strings.Split(spec, "\n") {
		l = strings.TrimRight(stripComment(l), " \t\r")

		if m := headerRe.FindStringSubmatch(l); m != nil {
			fields := strings.Fields(m[1])
			var name, param string
			if len(fields) > 0 {
				name = strings.ToLower(fields[0])
			}
			if len(fields) > 1 {
				param = fields[1]
			}

			sections = append(sections, cur)
			cur = &Section{Kind: sectionKinds[name], Name: name, Param: param}
			continue
		}

		if l != "" {
			cur.Lines = append(cur.Lines, l)
		}
	}
	sections = append(sections, cur)

	kept := sections[:0]
	for _, s := range sections {
		if len(s.Lines) > 0 {
			kept = append(kept, s)
		}
	}
	return kept
}
