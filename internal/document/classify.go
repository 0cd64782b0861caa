package document

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	fenceMarker     = "```"
	tipPrefix       = "tip:"
	boldMarker      = "**"
	maxHeaderLength = 80
)

// Role is the part a single line of generated text plays in the document.
type Role int

const (
	RoleBlank Role = iota
	RoleFenceToggle
	RoleCodeLine
	RoleTip
	RoleHeader
	RoleParagraph
)

func (r Role) String() string {
	switch r {
	case RoleFenceToggle:
		return "fence"
	case RoleCodeLine:
		return "code"
	case RoleTip:
		return "tip"
	case RoleHeader:
		return "header"
	case RoleParagraph:
		return "paragraph"
	default:
		return "blank"
	}
}

// Classified is a classified line. Text carries the payload for the role:
// the tip body, the cleaned header title, the code or paragraph line.
type Classified struct {
	Role Role
	Text string
}

// Classify decides the role of one line of generated text. inFence reports
// whether the caller is currently inside a fenced code region; the caller
// flips it on RoleFenceToggle.
func Classify(line string, inFence bool) Classified {
	trimmed := strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(trimmed, fenceMarker):
		return Classified{Role: RoleFenceToggle, Text: trimmed}
	case inFence:
		return Classified{Role: RoleCodeLine, Text: trimmed}
	case strings.HasPrefix(strings.ToLower(trimmed), tipPrefix):
		body := strings.TrimSpace(trimmed[len(tipPrefix):])
		return Classified{Role: RoleTip, Text: stripBold(body)}
	case strings.HasSuffix(trimmed, ":") && utf8.RuneCountInString(trimmed) < maxHeaderLength:
		return Classified{Role: RoleHeader, Text: HeaderTitle(trimmed)}
	case trimmed != "":
		return Classified{Role: RoleParagraph, Text: trimmed}
	default:
		return Classified{Role: RoleBlank}
	}
}

// IsSummaryHeader is the stricter header rule used by summaries: the line
// must end with a colon and everything before it must be upper case.
func IsSummaryHeader(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasSuffix(trimmed, ":") {
		return false
	}
	return isUpper(strings.TrimSuffix(trimmed, ":"))
}

// HeaderTitle cleans a header line: trailing colon and bold markers removed,
// then title-cased.
func HeaderTitle(line string) string {
	title := strings.TrimSpace(line)
	title = strings.TrimSuffix(title, ":")
	title = strings.TrimSpace(stripBold(title))
	return titleCase(title)
}

// CleanLine strips a leading dash bullet and bold markers from a content line.
func CleanLine(line string) string {
	clean := strings.TrimSpace(line)
	clean = strings.TrimLeft(clean, "-")
	clean = strings.TrimSpace(clean)
	return stripBold(clean)
}

func stripBold(s string) string {
	return strings.ReplaceAll(s, boldMarker, "")
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// isUpper reports whether s has at least one cased letter and no lower-case
// ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}
