package document

// ElementKind names a painted primitive.
type ElementKind string

const (
	ElementTitle     ElementKind = "title"
	ElementMetadata  ElementKind = "metadata"
	ElementHeaderBox ElementKind = "header_box"
	ElementParagraph ElementKind = "paragraph"
	ElementCodeBlock ElementKind = "code_block"
	ElementTip       ElementKind = "tip"
	ElementChapter   ElementKind = "chapter_title"
	ElementHeading   ElementKind = "heading"
	ElementQuestion  ElementKind = "question"
	ElementListItem  ElementKind = "list_item"
)

// Element is one primitive painted on a page. An element that does not fit
// on the page it started on continues on the next one as a separate
// fragment with Continued set.
type Element struct {
	Kind      ElementKind
	Text      string
	Lines     []string
	Y         float64
	Height    float64
	Continued bool
}

// Bottom is the y coordinate of the element's last painted row.
func (e Element) Bottom() float64 {
	return e.Y + e.Height
}

// Page holds the elements painted on one page, in paint order.
type Page struct {
	Number   int
	Elements []Element
}

// Document is a rendered study aid: the page layout plus the serialized PDF.
type Document struct {
	Title       string
	Pages       []Page
	PageHeight  float64
	BottomLimit float64
	Data        []byte
}

// Elements returns every element of the given kind in paint order,
// continuation fragments excluded.
func (d *Document) Elements(kind ElementKind) []Element {
	var out []Element
	for _, page := range d.Pages {
		for _, el := range page.Elements {
			if el.Kind == kind && !el.Continued {
				out = append(out, el)
			}
		}
	}
	return out
}

// Texts returns the Text of every element of the given kind.
func (d *Document) Texts(kind ElementKind) []string {
	els := d.Elements(kind)
	out := make([]string, 0, len(els))
	for _, el := range els {
		out = append(out, el.Text)
	}
	return out
}
