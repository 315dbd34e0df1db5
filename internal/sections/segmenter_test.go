package sections

import (
	"strings"
	"testing"
)

func TestSegmentNoHeadersReturnsSingleSection(t *testing.T) {
	t.Parallel()

	lines := []string{
		"responsible for building large distributed billing systems.",
		"- worked with many teams across several regions",
		"delivered multiple releases under a tight quarterly schedule.",
	}

	got := Segment(lines)
	if len(got) != 1 {
		t.Fatalf("expected exactly one section, got %d", len(got))
	}
	if got[0].Header != "" {
		t.Fatalf("expected implicit header, got %q", got[0].Header)
	}
	if got[0].Body != strings.TrimSpace(strings.Join(lines, "\n")) {
		t.Fatalf("expected whole text body, got %q", got[0].Body)
	}
	if HasExplicit(got) {
		t.Fatal("expected no explicit sections")
	}
}

func TestSegmentKeywordHeaders(t *testing.T) {
	t.Parallel()

	lines := []string{
		"Professional Experience",
		"Built resilient ingestion pipelines for enterprise clients.",
		"",
		"Education",
		"Graduated with honors from a small liberal arts college.",
	}

	got := Segment(lines)
	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %d: %+v", len(got), got)
	}

	if got[0].Header != "PROFESSIONAL EXPERIENCE" {
		t.Fatalf("unexpected first header: %q", got[0].Header)
	}
	if !strings.Contains(got[0].Body, "ingestion pipelines") {
		t.Fatalf("unexpected first body: %q", got[0].Body)
	}

	if got[1].Header != "EDUCATION" {
		t.Fatalf("unexpected second header: %q", got[1].Header)
	}
	if !HasExplicit(got) {
		t.Fatal("expected explicit sections")
	}
}

func TestSegmentShapeHeuristicHeader(t *testing.T) {
	t.Parallel()

	lines := []string{
		"John Smith",
		"worked on a variety of initiatives across many industries",
	}

	got := Segment(lines)
	if len(got) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got))
	}
	if got[0].Header != "JOHN SMITH" {
		t.Fatalf("expected shape-detected header, got %q", got[0].Header)
	}
	if got[0].Body != "worked on a variety of initiatives across many industries" {
		t.Fatalf("unexpected body: %q", got[0].Body)
	}
}

func TestSegmentKeepsPreambleBeforeFirstHeader(t *testing.T) {
	t.Parallel()

	lines := []string{
		"some preamble text line that is long enough to avoid header detection",
		"Skills",
		"strong communicator with deep systems background over many years",
	}

	got := Segment(lines)
	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %d: %+v", len(got), got)
	}
	if got[0].Header != "" {
		t.Fatalf("expected implicit preamble section, got header %q", got[0].Header)
	}
	if !strings.Contains(got[0].Body, "some preamble text line") {
		t.Fatalf("preamble dropped: %q", got[0].Body)
	}
	if got[1].Header != "SKILLS" {
		t.Fatalf("unexpected header: %q", got[1].Header)
	}
}

func TestSegmentParagraphCap(t *testing.T) {
	t.Parallel()

	lines := []string{
		"Professional Experience",
		"first long line without any terminal punctuation",
		"second long line without any terminal punctuation",
		"third long line without any terminal punctuation",
		"fourth long line without any terminal punctuation",
		"fifth long line without any terminal punctuation",
	}

	got := Segment(lines)
	if len(got) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got))
	}

	body := got[0].Body
	idx := strings.Index(body, "\n")
	if idx == -1 {
		t.Fatalf("expected capped paragraph flush with newline, body: %q", body)
	}
	if !strings.HasSuffix(body[:idx], "fourth long line without any terminal punctuation") {
		t.Fatalf("expected flush after the fourth buffered line, got %q", body[:idx])
	}
	if !strings.Contains(body[idx:], "fifth long line") {
		t.Fatalf("expected remainder after flush, got %q", body[idx:])
	}
}

func TestSegmentBlankLineFlushesWithoutNewline(t *testing.T) {
	t.Parallel()

	lines := []string{
		"Summary",
		"a candidate with broad platform engineering depth",
		"",
		"seasoned in guiding distributed teams through complex deliveries",
	}

	got := Segment(lines)
	if len(got) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got))
	}
	if strings.Contains(got[0].Body, "\n") {
		t.Fatalf("blank-line flush must not add a newline: %q", got[0].Body)
	}
	if !strings.Contains(got[0].Body, "depth seasoned") {
		t.Fatalf("paragraphs not space-joined: %q", got[0].Body)
	}
}

func TestSegmentNeverDropsNonBlankLines(t *testing.T) {
	t.Parallel()

	lines := []string{
		"unlabeled preamble line that should survive the segmentation intact",
		"Work Experience",
		"shipped a large payments platform used by millions of users.",
		"",
		"Education",
		"completed graduate coursework while holding a full time position",
		"• mentored several new hires during their first production rotations",
	}

	squash := func(s string) string {
		return strings.ToLower(strings.Join(strings.Fields(s), ""))
	}

	var in strings.Builder
	for _, line := range lines {
		in.WriteString(squash(line))
	}

	var out strings.Builder
	for _, s := range Segment(lines) {
		out.WriteString(squash(s.Header))
		out.WriteString(squash(s.Body))
	}

	if in.String() != out.String() {
		t.Fatalf("segmentation lost content:\n in: %s\nout: %s", in.String(), out.String())
	}
}

func TestSegmentIdempotentOnSegmentedText(t *testing.T) {
	t.Parallel()

	lines := []string{
		"Work Experience",
		"shipped a large payments platform used by millions of users.",
		"",
		"Education",
		"completed an advanced degree while working full time in industry.",
	}

	first := Segment(lines)

	var plain []string
	for _, s := range first {
		plain = append(plain, s.Header)
		plain = append(plain, strings.Split(strings.TrimRight(s.Body, "\n"), "\n")...)
	}

	for name, wrapped := range map[string][]string{
		"plain lines":   plain,
		"rendered text": strings.Split(Render(first), "\n"),
	} {
		second := Segment(wrapped)
		if len(second) != len(first) {
			t.Fatalf("%s: expected %d sections, got %d: %+v", name, len(first), len(second), second)
		}
		for i := range first {
			if second[i].Header != first[i].Header {
				t.Fatalf("%s: header %d changed: %q -> %q", name, i, first[i].Header, second[i].Header)
			}
			if second[i].Body != first[i].Body {
				t.Fatalf("%s: body %d changed: %q -> %q", name, i, first[i].Body, second[i].Body)
			}
		}
	}
}

func TestRenderDecoratesHeaders(t *testing.T) {
	t.Parallel()

	rendered := Render([]Section{
		{Body: "preamble text"},
		{Header: "SKILLS", Body: "go and distributed systems"},
	})

	if !strings.Contains(rendered, "preamble text") {
		t.Fatalf("implicit body missing: %q", rendered)
	}
	if !strings.Contains(rendered, "=== SKILLS ===") {
		t.Fatalf("decorated header missing: %q", rendered)
	}
}

func TestIsHeaderTriggers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want bool
	}{
		{"Technical Skills", true},
		{"PROFESSIONAL EXPERIENCE AND OTHER LONG THINGS I DID", true}, // keyword wins over length
		{"New York, NY", true}, // known shape-heuristic imprecision
		{"Short line.", false},
		{"- bullet item", false},
		{"• another bullet", false},
		{"a sentence with clearly more than four words", false},
	}

	for _, tc := range tests {
		if got := IsHeader(tc.line); got != tc.want {
			t.Fatalf("IsHeader(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}
