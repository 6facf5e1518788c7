package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/temirov/shellrun/cmd/cli"
	"github.com/temirov/shellrun/cmd/cli/run"
)

const (
	exitErrorTemplateConstant = "%v\n"
	genericFailureExitCode    = 1
)

// main executes the shellrun command-line application.
func main() {
	executionContext, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	executionError := cli.Execute(executionContext)
	stop()

	if executionError == nil {
		return
	}

	var exitCodeError run.ExitCodeError
	if errors.As(executionError, &exitCodeError) {
		os.Exit(exitCodeError.ExitCode)
	}

	fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
	os.Exit(genericFailureExitCode)
}
