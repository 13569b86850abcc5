package labels

// Template is one immutable printable label-sheet geometry. All lengths are
// in inches on a fixed US Letter portrait page; FontSize is in points.
type Template struct {
	ID          string
	Name        string
	Description string

	Rows int
	Cols int

	PageWidth  float64
	PageHeight float64

	MarginTop  float64
	MarginLeft float64

	LabelWidth  float64
	LabelHeight float64

	HorizontalGap float64
	VerticalGap   float64

	FontSize float64
}

// LabelsPerPage is the nominal page capacity used for pagination math.
func (t Template) LabelsPerPage() int {
	return t.Rows * t.Cols
}

// DefaultTemplateID is the catalog entry selected when nothing is configured.
const DefaultTemplateID = "30-up"

const (
	letterWidth  = 8.5
	letterHeight = 11
)

// The catalog is fixed at process start and never mutates. Geometry follows
// the Avery datasheets for each stock number.
var builtinTemplates = []Template{
	{
		ID:            "30-up",
		Name:          "30 Labels (Avery 5160)",
		Description:   `Standard address labels, 1" x 2.625"`,
		Rows:          10,
		Cols:          3,
		PageWidth:     letterWidth,
		PageHeight:    letterHeight,
		MarginTop:     0.5,
		MarginLeft:    0.1875,
		LabelWidth:    2.625,
		LabelHeight:   1,
		HorizontalGap: 0.125,
		VerticalGap:   0,
		FontSize:      11,
	},
	{
		ID:            "20-up",
		Name:          "20 Labels (Avery 5161)",
		Description:   `Wide address labels, 1" x 4"`,
		Rows:          10,
		Cols:          2,
		PageWidth:     letterWidth,
		PageHeight:    letterHeight,
		MarginTop:     0.5,
		MarginLeft:    0.156,
		LabelWidth:    4,
		LabelHeight:   1,
		HorizontalGap: 0.188,
		VerticalGap:   0,
		FontSize:      12,
	},
	{
		ID:            "10-up",
		Name:          "10 Labels (Avery 5163)",
		Description:   `Shipping labels, 2" x 4"`,
		Rows:          5,
		Cols:          2,
		PageWidth:     letterWidth,
		PageHeight:    letterHeight,
		MarginTop:     0.5,
		MarginLeft:    0.156,
		LabelWidth:    4,
		LabelHeight:   2,
		HorizontalGap: 0.188,
		VerticalGap:   0,
		FontSize:      16,
	},
}

// Templates returns the catalog in its stable display order.
func Templates() []Template {
	out := make([]Template, len(builtinTemplates))
	copy(out, builtinTemplates)
	return out
}

// TemplateByID looks a template up by its catalog identifier.
func TemplateByID(id string) (Template, bool) {
	for _, t := range builtinTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// TemplateIDs returns the catalog identifiers in display order.
func TemplateIDs() []string {
	out := make([]string, len(builtinTemplates))
	for i, t := range builtinTemplates {
		out[i] = t.ID
	}
	return out
}
