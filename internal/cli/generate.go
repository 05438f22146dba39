package cli

import (
	"flag"
	"fmt"
	"io"

	"quizgen/internal/config"
	"quizgen/internal/logging"
	"quizgen/internal/quiz"
)

// generate is swapped in tests that need to observe parameters.
var generate = quiz.Generate

// runGenerate builds the handler for the generate command.
func runGenerate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		wf := registerWorkbookFlags(flags, true)
		summaryPath := flags.String("summary", "", "Write a JSON summary of the generated sheets to this path")
		uiMode := flags.String("ui", "auto", "Output style: auto|styled|plain")
		verbose := flags.Bool("verbose", false, "Log each generated sheet to stderr")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		decision, err := resolveUIMode(*uiMode, *verbose, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		cfg, err := loadConfig(*wf.configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		wf.apply(flags, &cfg)
		if err := config.Validate(&cfg); err != nil {
			fmt.Fprintf(stderr, "Invalid settings:\n%v\n", err)
			return ExitUsage
		}

		opts := []quiz.Option{quiz.WithLogger(logging.New(stderr, *verbose))}
		if cfg.Seed != nil {
			opts = append(opts, quiz.WithSeed(*cfg.Seed))
		}
		summary, err := generate(paramsFromConfig(cfg), opts...)
		if err != nil {
			return reportGenerationError(stderr, err)
		}

		if *summaryPath != "" {
			if err := summary.WriteJSON(*summaryPath); err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return ExitIO
			}
		}
		renderSummary(stdout, summary, decision.styled)
		if *summaryPath != "" {
			fmt.Fprintf(stdout, "Summary: %s\n", *summaryPath)
		}
		return ExitOK
	}
}
