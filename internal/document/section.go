package document

// DefaultSectionTitle is the title of content seen before the first header.
const DefaultSectionTitle = "SUMMARY"

// FlushFunc renders one finished section. lines may be empty.
type FlushFunc func(title string, lines []string)

// SectionAccumulator groups consecutive paragraph lines under the most recent
// header. Each section is handed to the flush callback exactly once.
type SectionAccumulator struct {
	title   string
	buffer  []string
	flush   FlushFunc
	flushes int
	closed  bool
}

// NewSectionAccumulator starts with defaultTitle as the current section.
func NewSectionAccumulator(defaultTitle string, flush FlushFunc) *SectionAccumulator {
	return &SectionAccumulator{
		title: defaultTitle,
		flush: flush,
	}
}

// Header flushes the current section and opens a new one named title.
func (a *SectionAccumulator) Header(title string) {
	a.emit()
	a.title = title
	a.buffer = nil
}

// Add appends a content line to the current section.
func (a *SectionAccumulator) Add(line string) {
	a.buffer = append(a.buffer, line)
}

// Close flushes the last section. Calling it again is a no-op.
func (a *SectionAccumulator) Close() {
	if a.closed {
		return
	}
	a.emit()
	a.buffer = nil
	a.closed = true
}

// Flushes reports how many times the flush callback ran.
func (a *SectionAccumulator) Flushes() int {
	return a.flushes
}

func (a *SectionAccumulator) emit() {
	a.flushes++
	if a.flush != nil {
		a.flush(a.title, a.buffer)
	}
}
