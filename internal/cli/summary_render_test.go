package cli

import (
	"bytes"
	"strings"
	"testing"

	"quizgen/internal/quiz"
)

func sampleSummary() quiz.Summary {
	return quiz.Summary{
		RunID:     "run-1",
		Output:    "out.xlsx",
		Seed:      9,
		QuizCount: 2,
		Sheets: []quiz.SheetSummary{
			{Name: "Quiz_1", Label: "1/2", Questions: []quiz.PlacedQuestion{{SourceRow: 2, Text: "Second"}, {SourceRow: 1, Text: "First"}}},
			{Name: "Quiz_2", Label: "2/2", Questions: []quiz.PlacedQuestion{{SourceRow: 1, Text: "First"}, {SourceRow: 2, Text: "Second"}}},
		},
	}
}

// TestRenderSummaryPlain verifies plain output carries no table.
func TestRenderSummaryPlain(t *testing.T) {
	var out bytes.Buffer
	renderSummary(&out, sampleSummary(), false)
	want := "Created out.xlsx with 2 randomized quiz sheets\nSeed 9 | Run run-1\n"
	if out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}

// TestRenderSummaryStyled verifies the styled table lists every sheet.
func TestRenderSummaryStyled(t *testing.T) {
	var out bytes.Buffer
	renderSummary(&out, sampleSummary(), true)
	output := out.String()
	for _, want := range []string{"Quiz_1", "Quiz_2", "2 1", "Question order"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output, got %q", want, output)
		}
	}
}

// TestTruncate verifies long text is shortened on rune boundaries.
func TestTruncate(t *testing.T) {
	if got := truncate("  short\ntext ", 20); got != "short text" {
		t.Fatalf("expected collapsed text, got %q", got)
	}
	if got := truncate("àèìòùàèìòù", 8); got != "àèìòù..." {
		t.Fatalf("expected truncated text, got %q", got)
	}
}
