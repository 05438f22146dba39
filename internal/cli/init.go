package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"quizgen/internal/config"
	"quizgen/internal/quiz"
)

// initInput allows tests to override stdin for init prompts.
var initInput io.Reader = os.Stdin

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: ./.quizgen/config.yml)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		target := strings.TrimSpace(*configPath)
		if target == "" {
			wd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			target = config.ConfigPath(wd)
		}
		target, err := filepath.Abs(target)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if info, err := os.Stat(target); err == nil {
			if info.IsDir() {
				fmt.Fprintf(stderr, "Init failed: config path %q is a directory\n", target)
				return ExitError
			}
			fmt.Fprintf(stderr, "Init failed: config file already exists at %q\n", target)
			return ExitError
		} else if !os.IsNotExist(err) {
			fmt.Fprintf(stderr, "Init failed: stat config file: %v\n", err)
			return ExitError
		}

		in := initInput
		if in == nil {
			in = os.Stdin
		}
		reader := bufio.NewReader(in)

		confirm, err := promptYesNo(reader, stdout, fmt.Sprintf("Create quizgen config at %s?", target), true)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if !confirm {
			fmt.Fprintln(stderr, "Init cancelled.")
			return ExitError
		}
		input, err := promptString(reader, stdout, "Question workbook", quiz.DefaultInput)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		output, err := promptString(reader, stdout, "Output workbook", quiz.DefaultOutput)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}

		if err := config.Scaffold(target, input, output); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", target)
		return ExitOK
	}
}
