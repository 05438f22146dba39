package quiz

import (
	"encoding/json"
	"fmt"
	"os"
)

// Summary records what a run generated.
type Summary struct {
	RunID     string         `json:"run_id"`
	Input     string         `json:"input"`
	Output    string         `json:"output"`
	Seed      uint64         `json:"seed"`
	QuizCount int            `json:"quiz_count"`
	Sheets    []SheetSummary `json:"sheets"`
}

// SheetSummary records the arrangement written on one generated sheet.
type SheetSummary struct {
	Name      string           `json:"name"`
	Label     string           `json:"label"`
	Questions []PlacedQuestion `json:"questions"`
}

// PlacedQuestion ties a question slot back to its source row. AnswerOrder
// lists the 1-based source answer positions in the order they were written.
type PlacedQuestion struct {
	Cell        string   `json:"cell"`
	SourceRow   int      `json:"source_row"`
	Text        string   `json:"text"`
	AnswerOrder []int    `json:"answer_order"`
	Answers     []string `json:"answers"`
}

// QuestionOrder returns the source rows of a sheet in slot order.
func (s SheetSummary) QuestionOrder() []int {
	order := make([]int, 0, len(s.Questions))
	for _, placed := range s.Questions {
		order = append(order, placed.SourceRow)
	}
	return order
}

// WriteJSON writes the summary as indented JSON.
func (s Summary) WriteJSON(path string) error {
	payload, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
