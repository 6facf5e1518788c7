package cli_test

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/shellrun/cmd/cli"
	"github.com/temirov/shellrun/cmd/cli/run"
	"github.com/temirov/shellrun/internal/execshell"
)

const (
	testBashExecutableConstant      = "bash"
	testExitCodeSeverityEnvironment = "SHELLRUN_SHELL_EXIT_CODE_SEVERITY"
)

func requireBash(testInstance *testing.T) {
	testInstance.Helper()
	if runtime.GOOS == "windows" {
		testInstance.Skip("bash execution tests run on POSIX hosts")
	}
	if _, lookupError := exec.LookPath(testBashExecutableConstant); lookupError != nil {
		testInstance.Skip("bash is not available on PATH")
	}
}

func TestApplicationRunCommandEndToEnd(testInstance *testing.T) {
	requireBash(testInstance)

	testCases := []struct {
		name             string
		arguments        []string
		environment      map[string]string
		expectedOutput   string
		expectedExitCode int
	}{
		{
			name:           "prints_output",
			arguments:      []string{"run", "--", "echo", "hello"},
			expectedOutput: "hello\n",
		},
		{
			name:             "propagates_exit_code",
			arguments:        []string{"run", "--", "echo partial; exit 7"},
			expectedOutput:   "partial\n",
			expectedExitCode: 7,
		},
		{
			name:           "keeps_quoted_words_intact",
			arguments:      []string{"run", "--", "printf", "%s|", "a  b", "it's", "$HOME"},
			expectedOutput: "a  b|it's|$HOME|",
		},
		{
			name:           "runs_in_configured_directory",
			arguments:      []string{"run", "--working-directory", "/", "--", "pwd"},
			expectedOutput: "/\n",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			outputBuffer := &bytes.Buffer{}
			application, creationError := cli.NewApplication()
			require.NoError(testInstance, creationError)
			application.SetOutput(outputBuffer)
			application.SetArguments(append([]string{"--log-level", "error"}, testCase.arguments...))

			executionError := application.ExecuteContext(context.Background())
			if testCase.expectedExitCode == 0 {
				require.NoError(testInstance, executionError)
			} else {
				var exitCodeError run.ExitCodeError
				require.ErrorAs(testInstance, executionError, &exitCodeError)
				require.Equal(testInstance, testCase.expectedExitCode, exitCodeError.ExitCode)
			}
			require.Equal(testInstance, testCase.expectedOutput, outputBuffer.String())
		})
	}
}

func TestApplicationRunCommandYAMLHonorsEnvironmentSeverity(testInstance *testing.T) {
	requireBash(testInstance)
	testInstance.Setenv(testExitCodeSeverityEnvironment, "warning")

	outputBuffer := &bytes.Buffer{}
	application, creationError := cli.NewApplication()
	require.NoError(testInstance, creationError)
	application.SetOutput(outputBuffer)
	application.SetArguments([]string{"--log-level", "error", "run", "--output", "yaml", "--", "exit", "4"})

	executionError := application.ExecuteContext(context.Background())
	require.ErrorAs(testInstance, executionError, &run.ExitCodeError{})

	var report run.CommandReport
	require.NoError(testInstance, yaml.Unmarshal(outputBuffer.Bytes(), &report))
	require.Equal(testInstance, "exit 4", report.Command)
	require.Equal(testInstance, 4, report.ExitCode)
	require.True(testInstance, report.Success)
	require.Empty(testInstance, report.Output)
}

func TestApplicationRunCommandReportsMissingWorkingDirectory(testInstance *testing.T) {
	requireBash(testInstance)
	missingDirectory := testInstance.TempDir() + "/missing"

	application, creationError := cli.NewApplication()
	require.NoError(testInstance, creationError)
	application.SetOutput(&bytes.Buffer{})
	application.SetArguments([]string{"--log-level", "error", "run", "--working-directory", missingDirectory, "--", "true"})

	executionError := application.ExecuteContext(context.Background())

	var workingDirectoryError execshell.WorkingDirectoryNotFoundError
	require.ErrorAs(testInstance, executionError, &workingDirectoryError)
	require.Equal(testInstance, missingDirectory, workingDirectoryError.WorkingDirectory)
}

func TestApplicationRunCommandCancellation(testInstance *testing.T) {
	requireBash(testInstance)

	executionContext, cancel := context.WithCancel(context.Background())
	cancel()

	application, creationError := cli.NewApplication()
	require.NoError(testInstance, creationError)
	application.SetOutput(&bytes.Buffer{})
	application.SetArguments([]string{"--log-level", "error", "run", "--", "sleep", "5"})

	executionError := application.ExecuteContext(executionContext)
	require.ErrorIs(testInstance, executionError, context.Canceled)
}
