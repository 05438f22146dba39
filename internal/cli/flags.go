package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"quizgen/internal/spec"
)

// workbookFlags holds the flags shared by generate and validate.
type workbookFlags struct {
	configPath *string
	input      *string
	output     *string
	quizzes    *int
	questions  *int
	answers    *int
	seed       *uint64
}

// registerWorkbookFlags adds the config override flags. Output, quiz count
// and seed only matter to generate.
func registerWorkbookFlags(flags *flag.FlagSet, forGenerate bool) *workbookFlags {
	wf := &workbookFlags{
		configPath: flags.String("config", "", "Path to config file (default: search for .quizgen/config.yml)"),
		input:      flags.String("input", "", "Input workbook with the question and template sheets"),
		questions:  flags.Int("questions", 0, "Questions per quiz (rows read from the question sheet)"),
		answers:    flags.Int("answers", 0, "Answers per question (columns after the question column)"),
	}
	if forGenerate {
		wf.output = flags.String("output", "", "Output workbook (overwritten)")
		wf.quizzes = flags.Int("quizzes", 0, "Number of quiz sheets to generate")
		wf.seed = flags.Uint64("seed", 0, "Shuffle seed for a reproducible run")
	}
	return wf
}

// apply overlays explicitly set flags onto cfg.
func (wf *workbookFlags) apply(flags *flag.FlagSet, cfg *spec.Config) {
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = strings.TrimSpace(*wf.input)
		case "output":
			cfg.Output = strings.TrimSpace(*wf.output)
		case "quizzes":
			cfg.QuizCount = *wf.quizzes
		case "questions":
			cfg.QuestionsPerQuiz = *wf.questions
		case "answers":
			cfg.AnswersPerQuestion = *wf.answers
		case "seed":
			seed := *wf.seed
			cfg.Seed = &seed
		}
	})
}

// parseFlags parses args and reports the exit code to return when parsing
// did not succeed.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}
