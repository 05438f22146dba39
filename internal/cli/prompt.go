package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// readAnswer reads one trimmed line. atEOF reports that input is exhausted.
func readAnswer(reader *bufio.Reader) (answer string, atEOF bool, err error) {
	line, err := reader.ReadString('\n')
	if err == io.EOF {
		return strings.TrimSpace(line), true, nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(line), false, nil
}

// promptString asks for a value, returning defaultValue on an empty answer.
func promptString(reader *bufio.Reader, out io.Writer, label, defaultValue string) (string, error) {
	for {
		if defaultValue != "" {
			fmt.Fprintf(out, "%s [%s]: ", label, defaultValue)
		} else {
			fmt.Fprintf(out, "%s: ", label)
		}
		answer, atEOF, err := readAnswer(reader)
		if err != nil {
			return "", err
		}
		switch {
		case answer != "":
			return answer, nil
		case defaultValue != "":
			return defaultValue, nil
		case atEOF:
			return "", fmt.Errorf("missing input for %s", label)
		}
	}
}

// promptYesNo asks a yes/no question, returning defaultYes on an empty answer.
func promptYesNo(reader *bufio.Reader, out io.Writer, label string, defaultYes bool) (bool, error) {
	suffix := "y/N"
	if defaultYes {
		suffix = "Y/n"
	}
	for {
		fmt.Fprintf(out, "%s [%s]: ", label, suffix)
		answer, atEOF, err := readAnswer(reader)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return defaultYes, nil
		case "y", "yes", "s", "si", "sì":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if atEOF {
			return false, fmt.Errorf("invalid response %q", answer)
		}
		fmt.Fprintln(out, "Please answer yes or no.")
	}
}
