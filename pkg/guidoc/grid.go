package guidoc

// gridCell is the resolved placement of one widget named in a grid table.
type gridCell struct {
	row, column         int
	columnSpan, rowSpan int // 0 when the cell spans a single row/column
}

// gridResult holds the coordinates extracted from one grid section.
type gridResult struct {
	container string // container widget name, "" for the top level
	cells     map[string]gridCell
}

// extractGrid maps each named cell of a parsed table onto row/column/span
// coordinates. An occupancy grid tracks cells consumed by earlier spans so
// a cell whose origin is covered slides right to the first free column.
func extractGrid(sec *Section, table *Table, context string) (*gridResult, error) {
	res := &gridResult{container: sec.Param, cells: make(map[string]gridCell)}
	if table == nil || len(table.Rows) == 0 {
		return res, nil
	}

	numCols := table.Cols
	if numCols < 1 {
		numCols = 1
	}

	occupied := make([][]bool, len(table.Rows))
	for i := range occupied {
		occupied[i] = make([]bool, numCols)
	}

	for j, row := range table.Rows {
		colOffset := 0
		for i, cell := range row {
			if cell.Empty {
				continue
			}

			cellRow := j
			cellCol := i + colOffset
			width, height := 1, 1

			// Slide past cells consumed by a row span from an earlier row.
			for cellCol < numCols && occupied[cellRow][cellCol] {
				cellCol++
				colOffset++
			}
			if cellCol >= numCols {
				return nil, newGridRowError(context, cellRow)
			}

			gc := gridCell{row: cellRow, column: cellCol}
			if cell.MoreCols > 0 {
				width = cell.MoreCols + 1
				gc.columnSpan = width
				colOffset += width - 1
			}
			if cell.MoreRows > 0 {
				height = cell.MoreRows + 1
				gc.rowSpan = height
			}
			res.cells[cell.Text] = gc

			for n := cellRow; n < cellRow+height && n < len(occupied); n++ {
				for m := cellCol; m < cellCol+width && m < numCols; m++ {
					occupied[n][m] = true
				}
			}
		}
	}

	return res, nil
}
