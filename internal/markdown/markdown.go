// Package markdown turns the restricted markdown subset used by agent
// responses into a flat block sequence suitable for terminal rendering.
package markdown

import (
	"iter"
	"regexp"
	"strings"
)

// BlockKind classifies a parsed line.
type BlockKind int

const (
	KindHeading BlockKind = iota
	KindBullet
	KindNumbered
	KindSpacer
	KindParagraph
)

// Span is a run of text with uniform inline styling.
type Span struct {
	Text string
	Bold bool
}

// Block is one parsed line. Level is set for headings (1-3) and Index holds
// the printed ordinal for numbered items.
type Block struct {
	Kind  BlockKind
	Level int
	Index int
	Spans []Span
}

var numberedPattern = regexp.MustCompile(`^(\d+)\.\s`)

// Blocks lazily yields the block sequence for a multi-line text. The
// sequence is finite and recomputed on every call; callers may stop early.
// Line classification is first-match: heading prefixes, bullet prefixes,
// numbered prefixes, blank spacer, then plain paragraph.
func Blocks(text string) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		for _, line := range strings.Split(text, "\n") {
			if !yield(classifyLine(line)) {
				return
			}
		}
	}
}

// Parse collects the full block sequence.
func Parse(text string) []Block {
	var out []Block
	for block := range Blocks(text) {
		out = append(out, block)
	}
	return out
}

func classifyLine(line string) Block {
	switch {
	case strings.HasPrefix(line, "### "):
		return Block{Kind: KindHeading, Level: 3, Spans: []Span{{Text: line[4:]}}}
	case strings.HasPrefix(line, "## "):
		return Block{Kind: KindHeading, Level: 2, Spans: []Span{{Text: line[3:]}}}
	case strings.HasPrefix(line, "# "):
		return Block{Kind: KindHeading, Level: 1, Spans: []Span{{Text: line[2:]}}}
	case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
		return Block{Kind: KindBullet, Spans: Inline(line[2:])}
	}

	if match := numberedPattern.FindStringSubmatch(line); match != nil {
		index := 0
		for _, ch := range match[1] {
			index = index*10 + int(ch-'0')
		}
		return Block{Kind: KindNumbered, Index: index, Spans: Inline(line[len(match[0]):])}
	}

	if strings.TrimSpace(line) == "" {
		return Block{Kind: KindSpacer}
	}
	return Block{Kind: KindParagraph, Spans: Inline(line)}
}

// Inline splits a line on **bold** delimiters. An unterminated delimiter is
// kept as literal text instead of starting a span.
func Inline(text string) []Span {
	var spans []Span
	rest := text
	for {
		open := strings.Index(rest, "**")
		if open < 0 {
			break
		}
		end := strings.Index(rest[open+2:], "**")
		if end < 0 {
			break
		}

		if open > 0 {
			spans = append(spans, Span{Text: rest[:open]})
		}
		spans = append(spans, Span{Text: rest[open+2 : open+2+end], Bold: true})
		rest = rest[open+2+end+2:]
	}

	if rest != "" || len(spans) == 0 {
		spans = append(spans, Span{Text: rest})
	}
	return spans
}
