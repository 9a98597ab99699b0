package surgereport

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/mkodera/go-surgereport/internal/fontkit"
)

// Engine lays out an ordered block list into a paginated document and
// returns it as bytes. Implementations must be safe for concurrent Build
// calls; the default engine allocates a fresh document per call.
type Engine interface {
	Build(blocks []Block) ([]byte, error)
}

// Page geometry in millimeters.
const (
	pageMarginLeft  = 20.0
	pageMarginTop   = 20.0
	pageMarginRight = 20.0
	pageBreakMargin = 25.0
	tableRowHeight  = 7.0
	tableFontSize   = 8.0
)

// Fixed color palette.
var (
	colorHeadingText = [3]int{0, 0, 139}     // dark blue
	colorBodyText    = [3]int{0, 0, 0}
	colorHeaderLight = [3]int{245, 245, 245} // whitesmoke header text

	colorKPIHeaderFill  = [3]int{128, 128, 128} // grey
	colorKPIBodyFill    = [3]int{245, 245, 220} // beige
	colorPerfHeaderFill = [3]int{0, 0, 139}     // dark blue
	colorPerfBodyFill   = [3]int{173, 216, 230} // light blue

	// Achievement-rate tints, 20% alpha composited over white.
	tintAchieved = [3]int{219, 240, 219} // >= 100%
	tintNear     = [3]int{255, 250, 214} // >= 90%
	tintBehind   = [3]int{255, 224, 204} // >= 80%
	tintWatch    = [3]int{255, 214, 214} // below 80%
)

// fontRole selects one of the three resolved font handles.
type fontRole int

const (
	roleRegular fontRole = iota
	roleBold
	roleLight
)

// styleDef is one fixed paragraph style.
type styleDef struct {
	role        fontRole
	size        float64 // points
	color       [3]int
	align       string // "L" or "C"
	spaceBefore float64 // mm
	spaceAfter  float64 // mm
}

var paragraphStyles = map[Style]styleDef{
	StyleTitle:      {role: roleBold, size: 18, color: colorHeadingText, align: "C", spaceAfter: 7},
	StyleHeading:    {role: roleBold, size: 14, color: colorHeadingText, align: "L", spaceBefore: 5.5, spaceAfter: 3.5},
	StyleSubHeading: {role: roleBold, size: 12, color: colorHeadingText, align: "L", spaceBefore: 3.5, spaceAfter: 2},
	StyleNormal:     {role: roleRegular, size: 10, color: colorBodyText, align: "L", spaceAfter: 2},
	StyleSmall:      {role: roleRegular, size: 8, color: colorBodyText, align: "L", spaceAfter: 0.7},
}

// tableRuleSet is the style rule block applied to one table kind.
type tableRuleSet struct {
	headerFill [3]int
	headerText [3]int
	bodyFill   [3]int
	tintLast   bool // tint the last column by achievement rate
}

var tableStyles = map[TableStyle]tableRuleSet{
	TableKPI:         {headerFill: colorKPIHeaderFill, headerText: colorHeaderLight, bodyFill: colorKPIBodyFill},
	TablePerformance: {headerFill: colorPerfHeaderFill, headerText: colorHeaderLight, bodyFill: colorPerfBodyFill, tintLast: true},
}

// fpdfEngine renders blocks with go-pdf/fpdf. The resolved font set is
// registered into every fresh document, so the engine holds no mutable
// state and concurrent Build calls are safe.
type fpdfEngine struct {
	fonts fontkit.Set
}

func newFpdfEngine(fonts fontkit.Set) *fpdfEngine {
	return &fpdfEngine{fonts: fonts}
}

func (e *fpdfEngine) Build(blocks []Block) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMarginLeft, pageMarginTop, pageMarginRight)
	doc.SetAutoPageBreak(true, pageBreakMargin)
	e.registerFonts(doc)
	doc.AddPage()

	for i, b := range blocks {
		switch blk := b.(type) {
		case Paragraph:
			e.paragraph(doc, blk)
		case Table:
			e.table(doc, blk)
		case Image:
			e.image(doc, blk, i)
		case Spacer:
			doc.Ln(blk.Height)
		case PageBreak:
			doc.AddPage()
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentBuild, err)
	}
	return buf.Bytes(), nil
}

// registerFonts adds every non-builtin resolved face to the document.
// Core engine fonts need no registration.
func (e *fpdfEngine) registerFonts(doc *fpdf.Fpdf) {
	seen := map[string]bool{}
	for _, ref := range []fontkit.Ref{e.fonts.Regular, e.fonts.Bold, e.fonts.Light} {
		if ref.Builtin {
			continue
		}
		key := ref.Family + "/" + ref.Style
		if seen[key] {
			continue
		}
		seen[key] = true
		doc.AddUTF8Font(ref.Family, ref.Style, ref.Path)
	}
}

func (e *fpdfEngine) ref(role fontRole) fontkit.Ref {
	switch role {
	case roleBold:
		return e.fonts.Bold
	case roleLight:
		return e.fonts.Light
	default:
		return e.fonts.Regular
	}
}

func (e *fpdfEngine) setFont(doc *fpdf.Fpdf, role fontRole, size float64) {
	ref := e.ref(role)
	doc.SetFont(ref.Family, ref.Style, size)
}

// paragraph renders styled text with the minimal markup the builders emit:
// <br/> line breaks and <b>...</b> bold runs. Centered styles collapse bold
// runs into the style's own face.
func (e *fpdfEngine) paragraph(doc *fpdf.Fpdf, p Paragraph) {
	st, ok := paragraphStyles[p.Style]
	if !ok {
		st = paragraphStyles[StyleNormal]
	}
	if st.spaceBefore > 0 {
		doc.Ln(st.spaceBefore)
	}
	doc.SetTextColor(st.color[0], st.color[1], st.color[2])
	lineHt := st.size * 0.5

	for _, line := range strings.Split(p.Text, "<br/>") {
		line = strings.TrimSpace(line)
		if st.align == "C" {
			e.setFont(doc, st.role, st.size)
			doc.CellFormat(0, lineHt, plainText(line), "", 1, "C", false, 0, "")
			continue
		}
		for _, r := range parseMarkup(line) {
			role := st.role
			if r.bold && role == roleRegular {
				role = roleBold
			}
			e.setFont(doc, role, st.size)
			doc.Write(lineHt, r.text)
		}
		doc.Ln(lineHt)
	}
	if st.spaceAfter > 0 {
		doc.Ln(st.spaceAfter)
	}
}

func (e *fpdfEngine) table(doc *fpdf.Fpdf, t Table) {
	rules, ok := tableStyles[t.Style]
	if !ok {
		rules = tableStyles[TableKPI]
	}
	widths := t.ColWidths
	if len(widths) < len(t.Header) {
		pageW, _ := doc.GetPageSize()
		usable := pageW - pageMarginLeft - pageMarginRight
		widths = make([]float64, len(t.Header))
		for i := range widths {
			widths[i] = usable / float64(len(t.Header))
		}
	}

	e.setFont(doc, roleBold, tableFontSize)
	doc.SetFillColor(rules.headerFill[0], rules.headerFill[1], rules.headerFill[2])
	doc.SetTextColor(rules.headerText[0], rules.headerText[1], rules.headerText[2])
	for i, h := range t.Header {
		doc.CellFormat(widths[i], tableRowHeight, h, "1", 0, "CM", true, 0, "")
	}
	doc.Ln(tableRowHeight)

	e.setFont(doc, roleRegular, tableFontSize)
	doc.SetTextColor(colorBodyText[0], colorBodyText[1], colorBodyText[2])
	for _, row := range t.Rows {
		for i, cell := range row {
			fill := rules.bodyFill
			if rules.tintLast && i == len(row)-1 {
				if tint, ok := achievementTint(cell); ok {
					fill = tint
				}
			}
			doc.SetFillColor(fill[0], fill[1], fill[2])
			doc.CellFormat(widths[i], tableRowHeight, cell, "1", 0, "CM", true, 0, "")
		}
		doc.Ln(tableRowHeight)
	}
}

func (e *fpdfEngine) image(doc *fpdf.Fpdf, img Image, idx int) {
	if len(img.PNG) == 0 {
		return
	}
	name := fmt.Sprintf("img-%d", idx)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.PNG))
	pageW, _ := doc.GetPageSize()
	x := (pageW - img.Width) / 2
	doc.ImageOptions(name, x, doc.GetY(), img.Width, img.Height, true, opts, 0, "")
}

// achievementTint maps an achievement-rate cell ("103.5" or "103.5%") to its
// background tint. Non-numeric cells keep the default fill.
func achievementTint(cell string) ([3]int, bool) {
	rate, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(cell, "%")), 64)
	if err != nil {
		return [3]int{}, false
	}
	switch {
	case rate >= 100:
		return tintAchieved, true
	case rate >= 90:
		return tintNear, true
	case rate >= 80:
		return tintBehind, true
	default:
		return tintWatch, true
	}
}

// markupRun is one uniformly-styled run within a paragraph line.
type markupRun struct {
	text string
	bold bool
}

// parseMarkup splits a line on <b> and </b> tags. Unbalanced tags simply
// toggle the state; no tag survives into the output text.
func parseMarkup(line string) []markupRun {
	var runs []markupRun
	bold := false
	for len(line) > 0 {
		if strings.HasPrefix(line, "<b>") {
			bold = true
			line = line[len("<b>"):]
			continue
		}
		if strings.HasPrefix(line, "</b>") {
			bold = false
			line = line[len("</b>"):]
			continue
		}
		next := len(line)
		if i := strings.Index(line, "<b>"); i >= 0 && i < next {
			next = i
		}
		if i := strings.Index(line, "</b>"); i >= 0 && i < next {
			next = i
		}
		runs = append(runs, markupRun{text: line[:next], bold: bold})
		line = line[next:]
	}
	return runs
}

func plainText(line string) string {
	var b strings.Builder
	for _, r := range parseMarkup(line) {
		b.WriteString(r.text)
	}
	return b.String()
}
