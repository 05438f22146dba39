//go:build cucumber
// +build cucumber

package cucumber

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/cucumber/godog"

	"quizgen/internal/testutil"
)

const (
	inputName  = "domande_risposte.xlsx"
	outputName = "quiz_randomizzati.xlsx"
)

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	workDir    string
	previousWD string
	fixture    testutil.Fixture
	noInput    bool
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^an input workbook with (\d+) questions of (\d+) answers$`, state.anInputWorkbook)
	ctx.Step(`^the input workbook has no template sheet$`, state.theInputHasNoTemplate)
	ctx.Step(`^the input workbook is not present$`, state.theInputIsNotPresent)
	ctx.Step(`^the config is invalid$`, state.theConfigIsInvalid)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^stdout mentions "([^"]+)"$`, state.stdoutMentions)
	ctx.Step(`^stderr mentions "([^"]+)"$`, state.stderrMentions)
	ctx.Step(`^no output workbook exists$`, state.noOutputWorkbookExists)
	ctx.Step(`^the output workbook has (\d+) quiz sheets after the original sheets$`, state.theOutputHasQuizSheets)
	ctx.Step(`^sheet "([^"]+)" cell "([^"]+)" is "([^"]*)"$`, state.sheetCellIs)
	ctx.Step(`^every quiz sheet holds each question exactly once$`, state.everySheetHoldsEachQuestion)
	ctx.Step(`^every answer row holds the answers of the question above it$`, state.everyAnswerRowMatches)
}

// reset clears buffers and enters a fresh working directory.
func (s *featureState) reset() error {
	s.cleanup()
	*s = featureState{}
	return s.enterWorkDir()
}

func (s *featureState) inputPath() string {
	return filepath.Join(s.workDir, inputName)
}

func (s *featureState) outputPath() string {
	return filepath.Join(s.workDir, outputName)
}
