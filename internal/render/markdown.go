package render

import (
	"strconv"
	"strings"

	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/markdown"
)

// Markdown renders the restricted markdown subset as styled terminal lines.
func (t Theme) Markdown(text string) string {
	if text == "" {
		return ""
	}

	var lines []string
	for block := range markdown.Blocks(text) {
		switch block.Kind {
		case markdown.KindHeading:
			lines = append(lines, t.Heading.Render(spanText(block.Spans)))
		case markdown.KindBullet:
			lines = append(lines, "  " + t.Marker.Render("-") + " " + t.spans(block.Spans))
		case markdown.KindNumbered:
			lines = append(lines, "  " + t.Marker.Render(strconv.Itoa(block.Index) + ".") + " " + t.spans(block.Spans))
		case markdown.KindSpacer:
			lines = append(lines, "")
		case markdown.KindParagraph:
			lines = append(lines, t.spans(block.Spans))
		}
	}
	return strings.Join(lines, "\n")
}

func (t Theme) spans(spans []markdown.Span) string {
	var b strings.Builder
	for _, span := range spans {
		if span.Bold {
			b.WriteString(t.Bold.Render(span.Text))
		} else {
			b.WriteString(t.Body.Render(span.Text))
		}
	}
	return b.String()
}

func spanText(spans []markdown.Span) string {
	var b strings.Builder
	for _, span := range spans {
		b.WriteString(span.Text)
	}
	return b.String()
}
