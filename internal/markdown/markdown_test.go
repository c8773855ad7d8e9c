package markdown

import "testing"

func TestParseMixedDocument(t *testing.T) {
	blocks := Parse("## Title\n- item one\n**bold** plain")

	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}

	if blocks[0].Kind != KindHeading || blocks[0].Level != 2 {
		t.Fatalf("expected level-2 heading, got kind=%d level=%d", blocks[0].Kind, blocks[0].Level)
	}
	if blocks[0].Spans[0].Text != "Title" {
		t.Fatalf("unexpected heading text: %q", blocks[0].Spans[0].Text)
	}

	if blocks[1].Kind != KindBullet {
		t.Fatalf("expected bullet, got kind=%d", blocks[1].Kind)
	}
	if blocks[1].Spans[0].Text != "item one" {
		t.Fatalf("unexpected bullet text: %q", blocks[1].Spans[0].Text)
	}

	if blocks[2].Kind != KindParagraph {
		t.Fatalf("expected paragraph, got kind=%d", blocks[2].Kind)
	}
	if !blocks[2].Spans[0].Bold || blocks[2].Spans[0].Text != "bold" {
		t.Fatalf("expected leading bold span, got %+v", blocks[2].Spans[0])
	}
	if blocks[2].Spans[1].Bold || blocks[2].Spans[1].Text != " plain" {
		t.Fatalf("expected trailing plain span, got %+v", blocks[2].Spans[1])
	}
}

func TestParseNumberedAndSpacer(t *testing.T) {
	blocks := Parse("1. first\n\n12. twelfth")

	if blocks[0].Kind != KindNumbered || blocks[0].Index != 1 {
		t.Fatalf("expected numbered item 1, got kind=%d index=%d", blocks[0].Kind, blocks[0].Index)
	}
	if blocks[1].Kind != KindSpacer {
		t.Fatalf("expected spacer, got kind=%d", blocks[1].Kind)
	}
	if blocks[2].Index != 12 {
		t.Fatalf("expected printed ordinal 12, got %d", blocks[2].Index)
	}
}

func TestParseAsteriskBullet(t *testing.T) {
	blocks := Parse("* item")
	if blocks[0].Kind != KindBullet {
		t.Fatalf("expected bullet for asterisk prefix, got kind=%d", blocks[0].Kind)
	}
}

func TestHeadingLevelsFirstMatch(t *testing.T) {
	blocks := Parse("### deep\n# top")
	if blocks[0].Level != 3 {
		t.Fatalf("expected level 3, got %d", blocks[0].Level)
	}
	if blocks[1].Level != 1 {
		t.Fatalf("expected level 1, got %d", blocks[1].Level)
	}
}

func TestInlineUnterminatedBoldIsLiteral(t *testing.T) {
	spans := Inline("before **after")
	if len(spans) != 1 {
		t.Fatalf("expected single literal span, got %d", len(spans))
	}
	if spans[0].Bold || spans[0].Text != "before **after" {
		t.Fatalf("expected literal text kept, got %+v", spans[0])
	}
}

func TestInlineMultipleBoldRuns(t *testing.T) {
	spans := Inline("**a** and **b**")
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}
	if !spans[0].Bold || spans[0].Text != "a" {
		t.Fatalf("unexpected first span: %+v", spans[0])
	}
	if spans[1].Bold || spans[1].Text != " and " {
		t.Fatalf("unexpected middle span: %+v", spans[1])
	}
	if !spans[2].Bold || spans[2].Text != "b" {
		t.Fatalf("unexpected last span: %+v", spans[2])
	}
}

func TestBlocksLazyStop(t *testing.T) {
	count := 0
	for range Blocks("a\nb\nc") {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Fatalf("expected early stop after 2 blocks, got %d", count)
	}
}
