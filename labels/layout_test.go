package labels

import (
	"math"
	"testing"
)

func TestLocateThirtyUp(t *testing.T) {
	tpl, _ := TemplateByID("30-up")

	tests := []struct {
		name  string
		index int
		page  int
		row   int
		col   int
		x     float64
		y     float64
	}{
		{"first slot", 0, 1, 0, 0, 0.1875, 0.5},
		{"second column", 1, 1, 0, 1, 0.1875 + 2.75, 0.5},
		{"last slot on page one", 29, 1, 9, 2, 0.1875 + 2*2.75, 9.5},
		{"first slot on page two", 30, 2, 0, 0, 0.1875, 0.5},
		{"deep pagination", 65, 3, 1, 2, 0.1875 + 2*2.75, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := Locate(tt.index, tpl)
			if pos.Page != tt.page || pos.Row != tt.row || pos.Col != tt.col {
				t.Fatalf("Locate(%d) = page %d row %d col %d, want %d/%d/%d",
					tt.index, pos.Page, pos.Row, pos.Col, tt.page, tt.row, tt.col)
			}
			if math.Abs(pos.X-tt.x) > 1e-9 || math.Abs(pos.Y-tt.y) > 1e-9 {
				t.Errorf("Locate(%d) origin = (%g, %g), want (%g, %g)", tt.index, pos.X, pos.Y, tt.x, tt.y)
			}
		})
	}
}

func TestLocateUsesVerticalGap(t *testing.T) {
	tpl := Template{
		Rows: 5, Cols: 2,
		MarginTop: 0.5, MarginLeft: 0.25,
		LabelWidth: 4, LabelHeight: 2,
		HorizontalGap: 0.1, VerticalGap: 0.05,
	}
	pos := Locate(3, tpl)
	if pos.Row != 1 || pos.Col != 1 {
		t.Fatalf("Locate(3) = row %d col %d, want 1/1", pos.Row, pos.Col)
	}
	if math.Abs(pos.Y-(0.5+2.05)) > 1e-9 {
		t.Errorf("Y = %g, want %g", pos.Y, 0.5+2.05)
	}
	if math.Abs(pos.X-(0.25+4.1)) > 1e-9 {
		t.Errorf("X = %g, want %g", pos.X, 0.25+4.1)
	}
}
