package labels

import "fmt"

// Measurer reports the rendered width of text in page units at a font size
// in points. The PDF backend supplies one backed by its font metrics; tests
// can substitute deterministic fakes.
type Measurer interface {
	TextWidth(text string, fontSize float64) float64
}

// TextOp is one positioned, sized draw instruction handed to the rendering
// backend. X is the left end of the baseline; Y is the baseline itself.
type TextOp struct {
	Text     string
	FontSize float64
	X        float64
	Y        float64
}

const (
	pointsPerInch = 72.0

	// lineSpacing governs the vertical rhythm at the BASE font size; lines
	// that were shrunk to fit keep the base advance, so they pick up a
	// little extra leading. Intentional trade-off, not a bug.
	lineSpacing = 1.2

	// safeMargin is the total horizontal inset per cell (0.125" each side).
	safeMargin = 0.25

	// Below minFontSize text is allowed to overflow rather than become
	// unreadable.
	minFontSize = 5.0

	// baselineFactor positions the first baseline within its line slot.
	baselineFactor = 0.8
)

// RecordLines returns the text lines for one label: name, address lines and
// the combined city/state/zip line. Blank lines are dropped entirely and
// reserve no vertical space.
func RecordLines(rec LabelRecord) []string {
	candidates := []string{
		rec.Name,
		rec.Address1,
		rec.Address2,
		fmt.Sprintf("%s, %s %s", rec.City, rec.State, rec.Zip),
	}
	lines := make([]string, 0, len(candidates))
	for _, line := range candidates {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// LayoutCell lays one record's lines into its cell on the template grid.
func LayoutCell(m Measurer, t Template, pos CellPosition, rec LabelRecord) []TextOp {
	return LayoutLines(m, RecordLines(rec), pos.X, pos.Y, t.LabelWidth, t.LabelHeight, t.FontSize)
}

// LayoutLines centers the text block vertically in the cell and each line
// horizontally on the cell midline. A line wider than the printable width is
// shrunk proportionally to just fit, floored at minFontSize; wrapping is
// never performed.
func LayoutLines(m Measurer, lines []string, cellX, cellY, cellW, cellH, baseFontSize float64) []TextOp {
	if len(lines) == 0 {
		return nil
	}
	centerX := cellX + cellW/2
	centerY := cellY + cellH/2

	lineHeight := baseFontSize / pointsPerInch
	blockHeight := float64(len(lines)) * lineHeight * lineSpacing
	baseline := centerY - blockHeight/2 + lineHeight*baselineFactor

	maxLineWidth := cellW - safeMargin

	ops := make([]TextOp, 0, len(lines))
	for _, line := range lines {
		size := baseFontSize
		width := m.TextWidth(line, size)
		if width > maxLineWidth {
			size = baseFontSize * maxLineWidth / width
			if size < minFontSize {
				size = minFontSize
			}
			width = m.TextWidth(line, size)
		}
		ops = append(ops, TextOp{
			Text:     line,
			FontSize: size,
			X:        centerX - width/2,
			Y:        baseline,
		})
		// Vertical rhythm follows the base size even for shrunk lines.
		baseline += lineHeight * lineSpacing
	}
	return ops
}
