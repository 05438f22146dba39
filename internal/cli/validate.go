package cli

import (
	"flag"
	"fmt"
	"io"

	"quizgen/internal/config"
	"quizgen/internal/quiz"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		wf := registerWorkbookFlags(flags, false)
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		cfg, err := loadConfig(*wf.configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		wf.apply(flags, &cfg)
		if err := config.Validate(&cfg); err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitUsage
		}

		inspection, err := quiz.Check(paramsFromConfig(cfg))
		if err != nil {
			return reportGenerationError(stderr, err)
		}
		fmt.Fprintf(stdout, "Input OK: %s has %d questions with %d answers each\n",
			inspection.Input, len(inspection.Bank), cfg.AnswersPerQuestion)
		return ExitOK
	}
}
