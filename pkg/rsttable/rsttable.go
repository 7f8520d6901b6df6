// Package rsttable parses reStructuredText tables into the cell grid
// consumed by the guidoc grid extractor. Both table markups are
// supported: boxed grid tables drawn with '+', '-', and '|', and simple
// tables delimited by '=' rules. Input that does not form a recognizable
// table yields no table rather than an error, so a grid section whose
// content is not tabular contributes no coordinates.
package rsttable

import (
	"regexp"
	"strings"

	"github.com/guidoc/guidoc/pkg/guidoc"
)

// Parser implements guidoc.TableParser for reStructuredText tables.
type Parser struct{}

// New creates a table parser.
func New() *Parser { return &Parser{} }

// gridBorderRe matches the top border of a grid table.
var gridBorderRe = regexp.MustCompile(`^\+(-+\+)+$`)

// simpleBorderRe matches a column rule of a simple table.
var simpleBorderRe = regexp.MustCompile(`^=+( +=+)*$`)

// ParseTable locates the first table in the given lines and parses it.
// A nil table with a nil error means no table was found.
func (p *Parser) ParseTable(lines []string) (*guidoc.Table, error) {
	lines = dedent(lines)
	for i, l := range lines {
		l = strings.TrimRight(l, " \t")
		switch {
		case gridBorderRe.MatchString(l):
			return parseGridTable(lines[i:])
		case simpleBorderRe.MatchString(l):
			return parseSimpleTable(lines[i:])
		}
	}
	return nil, nil
}

// dedent strips the common leading-space prefix so cell coordinates are
// relative to the table, not the surrounding indentation.
func dedent(lines []string) []string {
	margin := -1
	for _, l := range lines {
		trimmed := strings.TrimLeft(l, " ")
		if trimmed == "" {
			continue
		}
		indent := len(l) - len(trimmed)
		if margin < 0 || indent < margin {
			margin = indent
		}
	}
	if margin <= 0 {
		return lines
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		if len(l) >= margin {
			out[i] = l[margin:]
		} else {
			out[i] = strings.TrimLeft(l, " ")
		}
	}
	return out
}
