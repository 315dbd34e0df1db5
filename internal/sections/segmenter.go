package sections

import (
	"fmt"
	"strings"
)

// Section is one labeled region of a resume. Header is empty for the
// implicit section that collects text appearing before any detected header.
type Section struct {
	Header string
	Body   string
}

// sectionKeywords mark a line as a section header when present as a
// substring of the lowercased text.
var sectionKeywords = []string{
	"work experience", "experience", "employment", "professional experience",
	"education", "academic background", "qualifications",
	"skills", "technical skills", "core competencies", "expertise",
	"projects", "key projects", "notable projects",
	"certifications", "certificates", "achievements",
	"summary", "profile", "objective", "about",
	"contact", "personal information",
}

// paragraphCap is the maximum number of buffered lines before a paragraph
// is flushed regardless of punctuation.
const paragraphCap = 3

// Segment reorganizes raw extracted lines into labeled sections. It is a
// pure function and never fails: input with no detected headers degrades to
// a single implicit section holding the whole text.
func Segment(lines []string) []Section {
	var out []Section

	current := Section{}
	headerSeen := false
	var paragraph []string

	flush := func(newline bool) {
		if len(paragraph) == 0 {
			return
		}
		if current.Body != "" {
			current.Body += " "
		}
		current.Body += strings.Join(paragraph, " ")
		if newline {
			current.Body += "\n"
		}
		paragraph = nil
	}

	push := func() {
		if current.Header != "" || current.Body != "" {
			out = append(out, current)
		}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		if line == "" {
			flush(false)
			continue
		}

		if header, decorated := stripDecoration(line); decorated || IsHeader(line) {
			flush(false)
			push()
			current = Section{Header: strings.ToUpper(header)}
			headerSeen = true
			continue
		}

		paragraph = append(paragraph, line)

		if strings.HasSuffix(line, ".") || strings.HasSuffix(line, ":") || len(paragraph) > paragraphCap {
			flush(true)
		}
	}

	flush(false)
	push()

	if !headerSeen {
		return []Section{{Body: strings.TrimSpace(strings.Join(lines, "\n"))}}
	}

	return out
}

// IsHeader reports whether a line should open a new section. A keyword match
// and the shape heuristic are independent triggers. The shape heuristic
// (at most 4 words, no trailing period, no leading bullet) also matches short
// factual lines like "New York, NY"; that imprecision is intentional and
// kept in sync with how the upstream prompt was tuned.
func IsHeader(line string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range sectionKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	return len(strings.Fields(line)) <= 4 &&
		!strings.HasSuffix(line, ".") &&
		!strings.HasPrefix(line, "•") &&
		!strings.HasPrefix(line, "-")
}

// stripDecoration undoes the Render header marker so re-segmenting rendered
// text yields the same sections instead of stacking decoration.
func stripDecoration(line string) (string, bool) {
	if !strings.HasPrefix(line, "=== ") || !strings.HasSuffix(line, " ===") {
		return line, false
	}

	inner := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, "==="), "==="))
	if inner == "" {
		return line, false
	}

	return inner, true
}

// HasExplicit reports whether segmentation found at least one real header.
// When it did not, callers should prefer the original unsegmented text.
func HasExplicit(sections []Section) bool {
	for _, s := range sections {
		if s.Header != "" {
			return true
		}
	}
	return false
}

// Render flattens sections back into the decorated text layout fed to the
// inference prompt.
func Render(sections []Section) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		if s.Header == "" {
			parts = append(parts, strings.TrimRight(s.Body, "\n"))
			continue
		}

		part := fmt.Sprintf("\n\n=== %s ===\n", s.Header)
		if s.Body != "" {
			part += " " + strings.TrimRight(s.Body, "\n")
		}
		parts = append(parts, part)
	}

	return strings.Join(parts, "\n")
}
