package labels

// CellPosition locates one label slot on the paginated sheet. Page is
// 1-based; Row and Col are 0-based within the page; X and Y are the cell's
// origin in page units.
type CellPosition struct {
	Page int
	Row  int
	Col  int
	X    float64
	Y    float64
}

// Locate maps a zero-based record index onto its page, grid slot and cell
// origin for the given template. Geometry that overflows the page is not
// clamped; a template is trusted as configured.
func Locate(index int, t Template) CellPosition {
	perPage := t.LabelsPerPage()
	onPage := index % perPage
	row := onPage / t.Cols
	col := onPage % t.Cols
	return CellPosition{
		Page: index/perPage + 1,
		Row:  row,
		Col:  col,
		X:    t.MarginLeft + float64(col)*(t.LabelWidth+t.HorizontalGap),
		Y:    t.MarginTop + float64(row)*(t.LabelHeight+t.VerticalGap),
	}
}
