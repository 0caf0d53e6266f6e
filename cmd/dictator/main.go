package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dictator/internal/cli"
	"github.com/arthur-debert/dictator/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	err := rootCmd.Execute()

	code, needsReport := cli.ExitCode(err)
	if needsReport {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
	}
	os.Exit(code)
}
