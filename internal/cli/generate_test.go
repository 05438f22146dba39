package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"quizgen/internal/quiz"
	"quizgen/internal/testutil"
	"quizgen/internal/workbook"
)

// TestGenerateWritesOutput verifies the default run produces twenty quiz sheets.
func TestGenerateWritesOutput(t *testing.T) {
	p := newProject(t, testutil.Fixture{})
	var out, errOut bytes.Buffer
	code := Run([]string{"generate", "--config", p.config, "--seed", "7"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), "with 20 randomized quiz sheets") {
		t.Fatalf("expected summary line, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Seed 7") {
		t.Fatalf("expected seed in output, got %q", out.String())
	}

	book, err := workbook.Open(p.output)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer book.Close()
	for _, name := range []string{"Quiz_1", "Quiz_20"} {
		if !book.HasSheet(name) {
			t.Fatalf("expected sheet %s in %v", name, book.Sheets())
		}
	}
	label, err := book.Cell("Quiz_20", "A47")
	if err != nil {
		t.Fatalf("read label: %v", err)
	}
	if label != "20/20" {
		t.Fatalf("expected label 20/20, got %q", label)
	}
}

// TestGenerateFlagsOverrideConfig verifies flags take precedence over config values.
func TestGenerateFlagsOverrideConfig(t *testing.T) {
	p := newProject(t, testutil.Fixture{Questions: 6, Answers: 3})
	output := filepath.Join(t.TempDir(), "custom.xlsx")

	var captured quiz.Params
	original := generate
	t.Cleanup(func() { generate = original })
	generate = func(params quiz.Params, opts ...quiz.Option) (quiz.Summary, error) {
		captured = params
		return original(params, opts...)
	}

	var out, errOut bytes.Buffer
	code := Run([]string{"generate", "--config", p.config, "--output", output,
		"--quizzes", "3", "--questions", "6", "--answers", "3"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	if captured.OutputPath != output || captured.QuizCount != 3 ||
		captured.QuestionsPerQuiz != 6 || captured.AnswersPerQuestion != 3 {
		t.Fatalf("unexpected params %+v", captured)
	}
	if captured.InputPath != p.input {
		t.Fatalf("expected input resolved to %s, got %s", p.input, captured.InputPath)
	}
	if _, err := os.Stat(p.output); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected configured output to be untouched, stat returned %v", err)
	}
}

// TestGenerateSummaryJSON verifies --summary writes the run record.
func TestGenerateSummaryJSON(t *testing.T) {
	p := newProject(t, testutil.Fixture{})
	summaryPath := filepath.Join(p.root, "summary.json")
	var out, errOut bytes.Buffer
	code := Run([]string{"generate", "--config", p.config, "--quizzes", "2", "--summary", summaryPath}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	data, err := os.ReadFile(summaryPath)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	var summary quiz.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.QuizCount != 2 || len(summary.Sheets) != 2 {
		t.Fatalf("expected 2 sheets, got %+v", summary)
	}
	if summary.RunID == "" {
		t.Fatalf("expected run id")
	}
	if !strings.Contains(out.String(), "Summary: "+summaryPath) {
		t.Fatalf("expected summary path in output, got %q", out.String())
	}
}

// TestGenerateSameSeedSameOrder verifies --seed reproduces a run.
func TestGenerateSameSeedSameOrder(t *testing.T) {
	p := newProject(t, testutil.Fixture{})
	first := filepath.Join(p.root, "first.json")
	second := filepath.Join(p.root, "second.json")
	for _, path := range []string{first, second} {
		var out, errOut bytes.Buffer
		code := Run([]string{"generate", "--config", p.config, "--seed", "42", "--summary", path}, &out, &errOut)
		if code != ExitOK {
			t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
		}
	}
	a := readSummary(t, first)
	b := readSummary(t, second)
	for i := range a.Sheets {
		if !slices.Equal(a.Sheets[i].QuestionOrder(), b.Sheets[i].QuestionOrder()) {
			t.Fatalf("sheet %s order differs: %v vs %v", a.Sheets[i].Name,
				a.Sheets[i].QuestionOrder(), b.Sheets[i].QuestionOrder())
		}
	}
}

// TestGenerateExitCodes verifies each failure kind maps to its exit code.
func TestGenerateExitCodes(t *testing.T) {
	cases := map[string]struct {
		fixture testutil.Fixture
		args    []string
		code    int
		message string
		removed bool
	}{
		"missing input": {
			args:    []string{"--input", "nowhere.xlsx"},
			code:    ExitInputNotFound,
			message: "input file not found",
			removed: true,
		},
		"missing data sheet": {
			fixture: testutil.Fixture{OmitData: true},
			code:    ExitMissingSheet,
			message: `sheet "domande_risposte" was not found`,
			removed: true,
		},
		"missing template": {
			fixture: testutil.Fixture{OmitTemplate: true},
			code:    ExitMissingSheet,
			message: `sheet "template" was not found`,
			removed: true,
		},
		"short bank": {
			fixture: testutil.Fixture{Questions: 9},
			code:    ExitMalformed,
			removed: true,
		},
		"bad count": {
			args:    []string{"--quizzes", "0"},
			code:    ExitUsage,
			message: "quiz_count",
			removed: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p := newProject(t, tc.fixture)
			args := append([]string{"generate", "--config", p.config}, tc.args...)
			var out, errOut bytes.Buffer
			code := Run(args, &out, &errOut)
			if code != tc.code {
				t.Fatalf("expected exit %d, got %d: %s", tc.code, code, errOut.String())
			}
			if tc.message != "" && !strings.Contains(errOut.String(), tc.message) {
				t.Fatalf("expected %q in stderr, got %q", tc.message, errOut.String())
			}
			if _, err := os.Stat(p.output); tc.removed && !errors.Is(err, fs.ErrNotExist) {
				t.Fatalf("expected no output file, stat returned %v", err)
			}
		})
	}
}

// TestGenerateInvalidUIMode verifies an unknown --ui value is a usage error.
func TestGenerateInvalidUIMode(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"generate", "--ui", "fancy"}, &out, &errOut)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut.String(), "invalid ui mode") {
		t.Fatalf("expected ui mode error, got %q", errOut.String())
	}
}

// TestGenerateVerboseLogs verifies --verbose logs each generated sheet.
func TestGenerateVerboseLogs(t *testing.T) {
	p := newProject(t, testutil.Fixture{})
	var out, errOut bytes.Buffer
	code := Run([]string{"generate", "--config", p.config, "--quizzes", "2", "--verbose"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	logs := errOut.String()
	for _, sheet := range []string{"sheet=Quiz_1", "sheet=Quiz_2"} {
		if !strings.Contains(logs, sheet) {
			t.Fatalf("expected %q in logs, got %q", sheet, logs)
		}
	}
}

func readSummary(t *testing.T, path string) quiz.Summary {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	var summary quiz.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	return summary
}
