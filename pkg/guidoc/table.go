package guidoc

// TableCell is one cell of a parsed table body. Spans are expressed as
// extra columns/rows beyond the cell's origin.
type TableCell struct {
	Text     string // single-paragraph cell content
	MoreCols int    // extra columns spanned beyond the first
	MoreRows int    // extra rows spanned beyond the first
	Empty    bool   // cell has no usable single-paragraph content
}

// Table is the structured result of parsing a table-markup block. Rows
// hold only the cells that originate in each row, in left-to-right order;
// positions covered by an earlier span carry no entry.
type Table struct {
	Cols int
	Rows [][]TableCell
}

// TableParser converts the raw lines of a grid section into a Table.
// Returning a nil Table with a nil error means the lines did not form a
// recognizable table, which is distinct from the parser being unavailable
// (a nil TableParser on the compile options).
type TableParser interface {
	ParseTable(lines []string) (*Table, error)
}
