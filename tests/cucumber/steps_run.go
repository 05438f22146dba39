//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"strings"

	"quizgen/internal/cli"
)

// iRunCommand writes the scenario input and executes a CLI command.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "quizgen" {
		args = args[1:]
	}
	if err := s.writeInput(); err != nil {
		return err
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}
