package rsttable

import (
	"strings"

	"github.com/guidoc/guidoc/pkg/guidoc"
)

// colBound is a column's byte range within a simple table line. The last
// column is open-ended so trailing text is not clipped.
type colBound struct {
	start, end int
	last       bool
}

// parseSimpleTable parses a simple table starting at its top '=' rule.
// Column boundaries come from the '=' runs of that rule. With three or
// more rules the rows between the first two are header rows and are
// excluded; with exactly two, every row between them is a body row. Each
// body line is one row; simple tables carry no spans.
func parseSimpleTable(lines []string) (*guidoc.Table, error) {
	var block []string
	for _, l := range lines {
		l = strings.TrimRight(l, " \t")
		if l == "" {
			break
		}
		block = append(block, l)
	}

	var borders []int
	for i, l := range block {
		if simpleBorderRe.MatchString(l) {
			borders = append(borders, i)
		}
	}
	if len(borders) < 2 {
		return nil, nil
	}

	bounds := columnBounds(block[borders[0]])
	if len(bounds) == 0 {
		return nil, nil
	}

	bodyFrom, bodyTo := borders[0]+1, borders[len(borders)-1]
	if len(borders) >= 3 {
		bodyFrom = borders[1] + 1
	}

	table := &guidoc.Table{Cols: len(bounds)}
	for _, l := range block[bodyFrom:bodyTo] {
		if simpleBorderRe.MatchString(l) {
			continue
		}
		row := make([]guidoc.TableCell, 0, len(bounds))
		for _, b := range bounds {
			text := sliceColumn(l, b)
			row = append(row, guidoc.TableCell{Text: text, Empty: text == ""})
		}
		table.Rows = append(table.Rows, row)
	}
	if len(table.Rows) == 0 {
		return nil, nil
	}
	return table, nil
}

// columnBounds derives the column byte ranges from a '=' rule.
func columnBounds(rule string) []colBound {
	var bounds []colBound
	start := -1
	for i := 0; i <= len(rule); i++ {
		if i < len(rule) && rule[i] == '=' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			bounds = append(bounds, colBound{start: start, end: i})
			start = -1
		}
	}
	if n := len(bounds); n > 0 {
		bounds[n-1].last = true
	}
	return bounds
}

// sliceColumn extracts and trims one column's text from a row line.
func sliceColumn(line string, b colBound) string {
	if b.start >= len(line) {
		return ""
	}
	end := b.end
	if b.last || end > len(line) {
		end = len(line)
	}
	return strings.TrimSpace(line[b.start:end])
}
