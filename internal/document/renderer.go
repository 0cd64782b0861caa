package document

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry in millimetres, A4 portrait.
const (
	marginLeft   = 10.0
	marginTop    = 10.0
	marginRight  = 10.0
	marginBottom = 15.0
)

// documentEpoch is stamped as the creation date of documents that carry no
// generation date, so identical input gives identical bytes.
var documentEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Color is an RGB triple.
type Color [3]int

var (
	colorBlack      = Color{0, 0, 0}
	colorWhite      = Color{255, 255, 255}
	colorHeaderFill = Color{255, 153, 51}
	colorChapter    = Color{36, 74, 104}
	colorCodeFill   = Color{245, 245, 245}
	colorCodeText   = Color{33, 37, 41}
	colorTipFill    = Color{255, 255, 204}
	colorTipText    = Color{102, 51, 0}
	colorRunning    = Color{100, 100, 100}
	colorFooter     = Color{150, 150, 150}
)

// TextStyle describes how a run of text is painted.
type TextStyle struct {
	Family     string
	Style      string
	Size       float64
	LineHeight float64
	Color      Color
	Prefix     string
	After      float64
	Align      string
}

// DefaultBodyStyle is used for paragraphs unless the options override it.
var DefaultBodyStyle = TextStyle{
	Family:     "Helvetica",
	Size:       11,
	LineHeight: 6,
	Color:      colorBlack,
	After:      2,
}

// RendererOptions configures a Renderer.
type RendererOptions struct {
	Title   string
	Author  string
	Created time.Time
	Body    TextStyle
	// RunningHeader is printed at the top of every page when set.
	RunningHeader string
	PageNumbers   bool
}

// Renderer is a cursor-based page layout engine. Every row is checked
// against the bottom margin before it is painted; a row that does not fit
// starts a new page.
type Renderer struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	title  string
	body   TextStyle
	pages  []Page
	open   bool
	width  float64
	height float64
}

// NewRenderer creates a renderer with its first page already started.
func NewRenderer(opts RendererOptions) *Renderer {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetCatalogSort(true)
	pdf.SetCreator("exam-prep", true)

	created := opts.Created
	if created.IsZero() {
		created = documentEpoch
	}
	pdf.SetCreationDate(created)
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	if opts.Author != "" {
		pdf.SetAuthor(opts.Author, true)
	}

	body := opts.Body
	if body.Family == "" {
		body = DefaultBodyStyle
	}

	pageW, pageH := pdf.GetPageSize()
	r := &Renderer{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		title:  opts.Title,
		body:   body,
		width:  pageW - marginLeft - marginRight,
		height: pageH,
	}

	if opts.RunningHeader != "" {
		running := r.tr(opts.RunningHeader)
		pdf.SetHeaderFunc(func() {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetTextColor(colorRunning[0], colorRunning[1], colorRunning[2])
			pdf.CellFormat(0, 10, running, "", 1, "C", false, 0, "")
			pdf.Ln(5)
		})
	}
	if opts.PageNumbers {
		pdf.SetFooterFunc(func() {
			pdf.SetY(-marginBottom)
			pdf.SetFont("Helvetica", "I", 8)
			pdf.SetTextColor(colorFooter[0], colorFooter[1], colorFooter[2])
			pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
		})
	}

	r.addPage()
	return r
}

// NewPage starts a fresh page.
func (r *Renderer) NewPage() {
	r.closeElement()
	r.addPage()
}

// Title paints a centred document title.
func (r *Renderer) Title(text string, style TextStyle) {
	style.Align = "C"
	r.begin(ElementTitle, text, nil)
	r.text(text, style, "", false)
	r.finish(style.After)
}

// Metadata paints a bold single-line metadata row.
func (r *Renderer) Metadata(text string) {
	style := TextStyle{Family: "Helvetica", Style: "B", Size: 12, LineHeight: 10, Color: colorBlack}
	r.begin(ElementMetadata, text, nil)
	r.text(text, style, "", false)
	r.finish(5)
}

// Heading paints a bold section heading such as the answer key title.
func (r *Renderer) Heading(text string) {
	style := TextStyle{Family: "Helvetica", Style: "B", Size: 14, LineHeight: 10, Color: colorBlack}
	r.begin(ElementHeading, text, nil)
	r.text(text, style, "", false)
	r.finish(5)
}

// HeaderBox paints a filled banner with the upper-cased title.
func (r *Renderer) HeaderBox(title string) {
	upper := strings.ToUpper(title)
	style := TextStyle{Family: "Helvetica", Style: "B", Size: 12, LineHeight: 10, Color: colorWhite}
	r.pdf.SetFillColor(colorHeaderFill[0], colorHeaderFill[1], colorHeaderFill[2])
	r.begin(ElementHeaderBox, upper, nil)
	r.text(upper, style, "", true)
	r.finish(2)
}

// ChapterTitle paints the large banner used for top-level tutorial sections.
func (r *Renderer) ChapterTitle(text string) {
	title := titleCase(strings.TrimSpace(stripBold(text)))
	style := TextStyle{Family: "Helvetica", Style: "B", Size: 14, LineHeight: 10, Color: colorWhite, Prefix: " "}
	r.pdf.SetFillColor(colorChapter[0], colorChapter[1], colorChapter[2])
	r.begin(ElementChapter, title, nil)
	r.text(title, style, "", true)
	r.finish(3)
}

// Paragraph paints wrapped body text.
func (r *Renderer) Paragraph(text string) {
	r.begin(ElementParagraph, text, nil)
	r.text(text, r.body, "", false)
	r.finish(r.body.After)
}

// CodeBlock paints a shaded monospaced block, one row per line; lines wider
// than the page wrap onto extra rows.
func (r *Renderer) CodeBlock(lines []string) {
	style := TextStyle{Family: "Courier", Size: 10, LineHeight: 5, Color: colorCodeText, Prefix: " "}
	r.pdf.SetFillColor(colorCodeFill[0], colorCodeFill[1], colorCodeFill[2])
	r.begin(ElementCodeBlock, strings.Join(lines, "\n"), lines)
	for _, line := range lines {
		r.text(line, style, "", true)
	}
	r.finish(2)
}

// TipCallout paints a bordered, highlighted box prefixed with "TIP:".
func (r *Renderer) TipCallout(text string) {
	body := "TIP: " + strings.TrimSpace(stripBold(text))
	style := TextStyle{Family: "Helvetica", Style: "I", Size: 10, LineHeight: 6, Color: colorTipText}
	r.pdf.SetFillColor(colorTipFill[0], colorTipFill[1], colorTipFill[2])
	r.pdf.SetDrawColor(colorTipText[0], colorTipText[1], colorTipText[2])
	r.begin(ElementTip, body, nil)
	r.text(body, style, "1", true)
	r.finish(2)
}

// Question paints one multiple-choice block, each line wrapped on its own.
func (r *Renderer) Question(lines []string) {
	style := TextStyle{Family: "Helvetica", Size: 12, LineHeight: 8, Color: colorBlack}
	r.begin(ElementQuestion, strings.Join(lines, "\n"), lines)
	for _, line := range lines {
		r.text(line, style, "", false)
	}
	r.finish(5)
}

// ListItem paints a single row of plain text, such as an answer key entry.
func (r *Renderer) ListItem(text string) {
	style := TextStyle{Family: "Helvetica", Size: 12, LineHeight: 8, Color: colorBlack}
	r.begin(ElementListItem, text, nil)
	r.text(text, style, "", false)
	r.finish(0)
}

// Finish serializes the pages into an in-memory PDF.
func (r *Renderer) Finish() (*Document, error) {
	r.closeElement()
	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return &Document{
		Title:       r.title,
		Pages:       r.pages,
		PageHeight:  r.height,
		BottomLimit: r.bottomLimit(),
		Data:        buf.Bytes(),
	}, nil
}

func (r *Renderer) bottomLimit() float64 {
	return r.height - marginBottom
}

func (r *Renderer) addPage() {
	r.pdf.AddPage()
	r.pages = append(r.pages, Page{Number: r.pdf.PageNo()})
}

// text wraps s in the given style and paints one row per wrapped line.
// border follows gofpdf's cell border letters; "1" boxes the whole run.
func (r *Renderer) text(s string, style TextStyle, border string, fill bool) {
	r.pdf.SetFont(style.Family, style.Style, style.Size)
	rows := r.wrap(style.Prefix + s)
	for i, row := range rows {
		r.ensureSpace(style.LineHeight)
		// Fonts and colours may have been reset by a page header.
		r.pdf.SetFont(style.Family, style.Style, style.Size)
		r.pdf.SetTextColor(style.Color[0], style.Color[1], style.Color[2])
		r.pdf.CellFormat(0, style.LineHeight, row, rowBorder(border, i, len(rows)), 1, style.Align, fill, 0, "")
		r.grow()
	}
}

// wrap translates s to the core font code page and splits it to the usable
// width using the current font. It always yields at least one row.
func (r *Renderer) wrap(s string) []string {
	split := r.pdf.SplitLines([]byte(r.tr(s)), r.width)
	if len(split) == 0 {
		return []string{""}
	}
	rows := make([]string, 0, len(split))
	for _, line := range split {
		rows = append(rows, string(line))
	}
	return rows
}

func rowBorder(border string, i, n int) string {
	if border != "1" || n == 1 {
		return border
	}
	switch i {
	case 0:
		return "LTR"
	case n - 1:
		return "LRB"
	default:
		return "LR"
	}
}

func (r *Renderer) ensureSpace(h float64) {
	if r.pdf.GetY()+h <= r.bottomLimit() {
		return
	}
	var pending *Element
	if r.open {
		last := *r.current()
		pending = &last
		if last.Height == 0 {
			// Nothing painted yet: move the element instead of splitting it.
			page := &r.pages[len(r.pages)-1]
			page.Elements = page.Elements[:len(page.Elements)-1]
		}
	}

	// Fill colour survives AddPage but the header may change it.
	fr, fg, fb := r.pdf.GetFillColor()
	r.addPage()
	r.pdf.SetFillColor(fr, fg, fb)

	if pending == nil {
		return
	}
	if pending.Height == 0 {
		pending.Y = r.pdf.GetY()
		r.appendElement(*pending)
		return
	}
	r.appendElement(Element{Kind: pending.Kind, Text: pending.Text, Y: r.pdf.GetY(), Continued: true})
}

func (r *Renderer) begin(kind ElementKind, text string, lines []string) {
	r.closeElement()
	r.appendElement(Element{Kind: kind, Text: text, Lines: lines, Y: r.pdf.GetY()})
	r.open = true
}

func (r *Renderer) finish(after float64) {
	r.closeElement()
	if after > 0 {
		r.pdf.Ln(after)
	}
}

func (r *Renderer) closeElement() {
	r.open = false
}

func (r *Renderer) appendElement(el Element) {
	page := &r.pages[len(r.pages)-1]
	page.Elements = append(page.Elements, el)
}

// current returns the last element on the current page. Only valid while an
// element is open.
func (r *Renderer) current() *Element {
	page := &r.pages[len(r.pages)-1]
	return &page.Elements[len(page.Elements)-1]
}

func (r *Renderer) grow() {
	el := r.current()
	el.Height = r.pdf.GetY() - el.Y
}
