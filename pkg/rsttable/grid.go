package rsttable

import (
	"regexp"
	"sort"
	"strings"

	"github.com/guidoc/guidoc/pkg/guidoc"
)

// headSepRe matches the '=' border that separates header rows from body
// rows in a grid table.
var headSepRe = regexp.MustCompile(`^\+(=+\+)+$`)

// gridBlock is a grid table's text, space-padded to a uniform width so
// every coordinate is addressable.
type gridBlock struct {
	lines  []string
	bottom int // row index of the bottom border
	right  int // column index of the right border
}

func (b *gridBlock) at(row, col int) byte { return b.lines[row][col] }

// cellSpan is a cell located by its border coordinates.
type cellSpan struct {
	top, left, bottom, right int
}

// scanResult carries the far edges of a scanned cell plus every border
// intersection seen along its edges. Intersections inside a spanning
// cell's edge are the row/column boundaries the span crosses.
type scanResult struct {
	bottom, right    int
	rowseps, colseps map[int]bool
}

// parseGridTable parses a boxed grid table starting at its top border.
// The algorithm walks cell corners: from each known top-left corner it
// scans right, down, left, and up to verify a complete cell boundary,
// then queues the cell's other corners for further scanning.
func parseGridTable(lines []string) (*guidoc.Table, error) {
	block := collectGridLines(lines)
	if len(block) < 3 {
		return nil, nil
	}

	// Convert a head/body separator to a plain border, remembering where
	// it was so header rows can be excluded from the body.
	headSep := -1
	for i, l := range block {
		if headSepRe.MatchString(strings.TrimRight(l, " ")) {
			headSep = i
			block[i] = strings.ReplaceAll(l, "=", "-")
			break
		}
	}

	width := 0
	for _, l := range block {
		if len(l) > width {
			width = len(l)
		}
	}
	for i, l := range block {
		block[i] = l + strings.Repeat(" ", width-len(l))
	}

	b := &gridBlock{lines: block, bottom: len(block) - 1, right: width - 1}

	var cells []cellSpan
	rowseps := map[int]bool{0: true}
	colseps := map[int]bool{0: true}
	corners := [][2]int{{0, 0}}
	visited := make(map[[2]int]bool)

	for len(corners) > 0 {
		sort.Slice(corners, func(i, j int) bool {
			if corners[i][0] != corners[j][0] {
				return corners[i][0] < corners[j][0]
			}
			return corners[i][1] < corners[j][1]
		})
		corner := corners[0]
		corners = corners[1:]

		top, left := corner[0], corner[1]
		if visited[corner] || top >= b.bottom || left >= b.right {
			continue
		}
		visited[corner] = true

		res, ok := b.scanCell(top, left)
		if !ok {
			continue
		}
		for k := range res.rowseps {
			rowseps[k] = true
		}
		for k := range res.colseps {
			colseps[k] = true
		}
		cells = append(cells, cellSpan{top, left, res.bottom, res.right})
		corners = append(corners, [2]int{top, res.right}, [2]int{res.bottom, left})
	}

	if len(cells) == 0 {
		return nil, nil
	}

	rowIndex := indexSeps(rowseps)
	colIndex := indexSeps(colseps)
	numRows := len(rowIndex) - 1
	numCols := len(colIndex) - 1
	if numRows < 1 || numCols < 1 {
		return nil, nil
	}

	bodyFrom := 0
	if headSep >= 0 {
		if idx, ok := rowIndex[headSep]; ok {
			bodyFrom = idx
		}
	}
	if bodyFrom >= numRows {
		return nil, nil
	}

	type entry struct {
		col  int
		cell guidoc.TableCell
	}
	rows := make([][]entry, numRows-bodyFrom)
	for _, c := range cells {
		r, ok1 := rowIndex[c.top]
		col, ok2 := colIndex[c.left]
		rb, ok3 := rowIndex[c.bottom]
		cr, ok4 := colIndex[c.right]
		if !ok1 || !ok2 || !ok3 || !ok4 || r < bodyFrom {
			continue
		}

		text, empty := b.cellText(c)
		rows[r-bodyFrom] = append(rows[r-bodyFrom], entry{col, guidoc.TableCell{
			Text:     text,
			MoreCols: cr - col - 1,
			MoreRows: rb - r - 1,
			Empty:    empty,
		}})
	}

	table := &guidoc.Table{Cols: numCols, Rows: make([][]guidoc.TableCell, len(rows))}
	for i, row := range rows {
		sort.Slice(row, func(a, b int) bool { return row[a].col < row[b].col })
		for _, e := range row {
			table.Rows[i] = append(table.Rows[i], e.cell)
		}
	}
	return table, nil
}

// collectGridLines takes the contiguous run of table lines and trims any
// trailing lines that cannot close the table.
func collectGridLines(lines []string) []string {
	var block []string
	for _, l := range lines {
		l = strings.TrimRight(l, " \t")
		if l == "" || (l[0] != '+' && l[0] != '|') {
			break
		}
		block = append(block, l)
	}
	for len(block) > 0 {
		last := block[len(block)-1]
		if gridBorderRe.MatchString(last) || headSepRe.MatchString(last) {
			break
		}
		block = block[:len(block)-1]
	}
	return block
}

// indexSeps maps each sorted separator offset to its row/column index.
func indexSeps(seps map[int]bool) map[int]int {
	sorted := make([]int, 0, len(seps))
	for k := range seps {
		sorted = append(sorted, k)
	}
	sort.Ints(sorted)

	index := make(map[int]int, len(sorted))
	for i, k := range sorted {
		index[k] = i
	}
	return index
}

// scanCell verifies a complete cell with its top-left corner at
// (top, left).
func (b *gridBlock) scanCell(top, left int) (scanResult, bool) {
	if b.at(top, left) != '+' {
		return scanResult{}, false
	}
	return b.scanRight(top, left)
}

// scanRight walks the cell's top edge. Each '+' is a candidate top-right
// corner; a candidate fails quietly when no full boundary hangs off it,
// which happens at the internal column boundaries of a column-spanning
// cell.
func (b *gridBlock) scanRight(top, left int) (scanResult, bool) {
	colseps := map[int]bool{}
	line := b.lines[top]
	for i := left + 1; i <= b.right; i++ {
		switch line[i] {
		case '+':
			colseps[i] = true
			if res, ok := b.scanDown(top, left, i); ok {
				res.right = i
				for k := range colseps {
					res.colseps[k] = true
				}
				return res, true
			}
		case '-':
		default:
			return scanResult{}, false
		}
	}
	return scanResult{}, false
}

// scanDown walks the cell's right edge from the top-right corner.
func (b *gridBlock) scanDown(top, left, right int) (scanResult, bool) {
	rowseps := map[int]bool{}
	for j := top + 1; j <= b.bottom; j++ {
		switch b.at(j, right) {
		case '+':
			rowseps[j] = true
			if res, ok := b.scanLeft(top, left, j, right); ok {
				res.bottom = j
				for k := range rowseps {
					res.rowseps[k] = true
				}
				return res, true
			}
		case '|':
		default:
			return scanResult{}, false
		}
	}
	return scanResult{}, false
}

// scanLeft walks the cell's bottom edge back to the left column, then
// scanUp-style verifies the left edge up to the starting corner.
func (b *gridBlock) scanLeft(top, left, bottom, right int) (scanResult, bool) {
	colseps := map[int]bool{}
	line := b.lines[bottom]
	for i := right - 1; i > left; i-- {
		switch line[i] {
		case '+':
			colseps[i] = true
		case '-':
		default:
			return scanResult{}, false
		}
	}
	if line[left] != '+' {
		return scanResult{}, false
	}

	rowseps := map[int]bool{}
	for j := bottom - 1; j > top; j-- {
		switch b.at(j, left) {
		case '+':
			rowseps[j] = true
		case '|':
		default:
			return scanResult{}, false
		}
	}

	return scanResult{rowseps: rowseps, colseps: colseps}, true
}

// cellText extracts the cell interior as a single paragraph. A cell whose
// interior holds zero or more than one blank-separated chunk has no
// usable content.
func (b *gridBlock) cellText(c cellSpan) (string, bool) {
	var chunks [][]string
	var cur []string
	for j := c.top + 1; j < c.bottom; j++ {
		s := strings.TrimSpace(b.lines[j][c.left+1 : c.right])
		if s == "" {
			if len(cur) > 0 {
				chunks = append(chunks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, s)
	}
	if len(cur) > 0 {
		chunks = append(chunks, cur)
	}

	if len(chunks) != 1 {
		return "", true
	}
	return strings.Join(chunks[0], "\n"), false
}
