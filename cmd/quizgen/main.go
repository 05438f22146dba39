// Command quizgen writes randomized quiz sheets into a copy of a question workbook.
package main

import (
	"os"

	"quizgen/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
