package surgereport

// Style names one of the fixed paragraph styles the engine defines.
type Style string

const (
	StyleTitle      Style = "title"
	StyleHeading    Style = "heading"
	StyleSubHeading Style = "subheading"
	StyleNormal     Style = "normal"
	StyleSmall      Style = "small"
)

// TableStyle selects one of the fixed table style rule sets.
type TableStyle string

const (
	TableKPI         TableStyle = "kpi"
	TablePerformance TableStyle = "performance"
)

// Block is one unit of document content. Blocks are produced in order by the
// section builders and consumed in order by the formatting engine; no block
// is mutated after creation.
type Block interface {
	isBlock()
}

// Paragraph is styled flowing text. Text may contain the minimal markup the
// engine understands: <b>...</b> for bold runs and <br/> for line breaks.
type Paragraph struct {
	Style Style
	Text  string
}

// Table is a grid with a header row. ColWidths are in millimeters; a
// TablePerformance table additionally tints its last column by achievement
// rate.
type Table struct {
	Header    []string
	Rows      [][]string
	ColWidths []float64
	Style     TableStyle
}

// Image embeds a rasterized PNG at the given size in millimeters, centered
// horizontally.
type Image struct {
	PNG    []byte
	Width  float64
	Height float64
}

// Spacer inserts vertical whitespace, in millimeters.
type Spacer struct {
	Height float64
}

// PageBreak starts a new page.
type PageBreak struct{}

func (Paragraph) isBlock() {}
func (Table) isBlock()     {}
func (Image) isBlock()     {}
func (Spacer) isBlock()    {}
func (PageBreak) isBlock() {}
