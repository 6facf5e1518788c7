package execshell_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/shellrun/internal/execshell"
)

const (
	testLoggerInitializationCaseNameConstant     = "logger_validation"
	testResolverInitializationCaseNameConstant   = "resolver_validation"
	testRunnerInitializationCaseNameConstant     = "runner_validation"
	testSuccessfulInitializationCaseNameConstant = "successful_initialization"
	testWorkingDirectoryConstant                 = "/workspace"
)

type recordingProcessRunner struct {
	executionResult     execshell.ShellCommandResult
	executionError      error
	recordedInvocations []execshell.Invocation
	recordedDirectories []string
}

func (runner *recordingProcessRunner) Run(executionContext context.Context, invocation execshell.Invocation, workingDirectory string) (execshell.ShellCommandResult, error) {
	runner.recordedInvocations = append(runner.recordedInvocations, invocation)
	runner.recordedDirectories = append(runner.recordedDirectories, workingDirectory)
	return runner.executionResult, runner.executionError
}

type recordingObserver struct {
	events []string
}

func (recorder *recordingObserver) CommandStarted(request execshell.ShellCommandRequest, invocation execshell.Invocation) {
	recorder.events = append(recorder.events, "started:"+invocation.Executable)
}

func (recorder *recordingObserver) CommandCompleted(request execshell.ShellCommandRequest, result execshell.ShellCommandResult) {
	recorder.events = append(recorder.events, "completed")
}

func (recorder *recordingObserver) CommandExecutionFailed(request execshell.ShellCommandRequest, failure error) {
	recorder.events = append(recorder.events, "failed")
}

func newLinuxResolver(testInstance *testing.T) *execshell.InterpreterResolver {
	testInstance.Helper()
	resolver, creationError := execshell.NewInterpreterResolver(&fakePlatform{operatingSystem: "linux"})
	require.NoError(testInstance, creationError)
	return resolver
}

func TestShellExecutorInitializationValidation(testInstance *testing.T) {
	resolver := newLinuxResolver(testInstance)

	testCases := []struct {
		name          string
		logger        *zap.Logger
		resolver      *execshell.InterpreterResolver
		runner        execshell.ProcessRunner
		expectError   error
		expectSuccess bool
	}{
		{
			name:        testLoggerInitializationCaseNameConstant,
			logger:      nil,
			resolver:    resolver,
			runner:      &recordingProcessRunner{},
			expectError: execshell.ErrLoggerNotConfigured,
		},
		{
			name:        testResolverInitializationCaseNameConstant,
			logger:      zap.NewNop(),
			resolver:    nil,
			runner:      &recordingProcessRunner{},
			expectError: execshell.ErrResolverNotConfigured,
		},
		{
			name:        testRunnerInitializationCaseNameConstant,
			logger:      zap.NewNop(),
			resolver:    resolver,
			runner:      nil,
			expectError: execshell.ErrProcessRunnerNotConfigured,
		},
		{
			name:          testSuccessfulInitializationCaseNameConstant,
			logger:        zap.NewNop(),
			resolver:      resolver,
			runner:        &recordingProcessRunner{},
			expectSuccess: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor, creationError := execshell.NewShellExecutor(testCase.logger, testCase.resolver, testCase.runner)
			if testCase.expectSuccess {
				require.NoError(testInstance, creationError)
				require.NotNil(testInstance, executor)
				return
			}
			require.ErrorIs(testInstance, creationError, testCase.expectError)
			require.Nil(testInstance, executor)
		})
	}
}

func TestShellExecutorExecuteBehavior(testInstance *testing.T) {
	testCases := []struct {
		name             string
		request          execshell.ShellCommandRequest
		runnerResult     execshell.ShellCommandResult
		runnerError      error
		expectRunnerCall bool
		expectedEvents   []string
		expectedLogCount int
	}{
		{
			name:             "success",
			request:          execshell.NewShellCommandRequest("echo ok", execshell.WithWorkingDirectory(testWorkingDirectoryConstant)),
			runnerResult:     execshell.ShellCommandResult{ExitCode: 0, Output: "ok\n"},
			expectRunnerCall: true,
			expectedEvents:   []string{"started:bash", "completed"},
			expectedLogCount: 2,
		},
		{
			name:             "non_zero_exit_is_a_result",
			request:          execshell.NewShellCommandRequest("exit 7"),
			runnerResult:     execshell.ShellCommandResult{ExitCode: 7},
			expectRunnerCall: true,
			expectedEvents:   []string{"started:bash", "completed"},
			expectedLogCount: 2,
		},
		{
			name:             "runner_error",
			request:          execshell.NewShellCommandRequest("echo ok", execshell.WithWorkingDirectory(testWorkingDirectoryConstant)),
			runnerError:      execshell.WorkingDirectoryNotFoundError{WorkingDirectory: testWorkingDirectoryConstant},
			expectRunnerCall: true,
			expectedEvents:   []string{"started:bash", "failed"},
			expectedLogCount: 2,
		},
		{
			name:             "resolution_error",
			request:          execshell.NewShellCommandRequest(`echo "open`, execshell.WithInterpreterOverride("/bin/echo")),
			expectRunnerCall: false,
			expectedEvents:   []string{"failed"},
			expectedLogCount: 1,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			observerCore, observedLogs := observer.New(zap.DebugLevel)
			recordingRunner := &recordingProcessRunner{
				executionResult: testCase.runnerResult,
				executionError:  testCase.runnerError,
			}
			eventRecorder := &recordingObserver{}

			executor, creationError := execshell.NewShellExecutor(zap.New(observerCore), newLinuxResolver(testInstance), recordingRunner)
			require.NoError(testInstance, creationError)
			executor.WithObserver(eventRecorder)

			result, executionError := executor.Execute(context.Background(), testCase.request)

			switch {
			case testCase.runnerError != nil:
				require.ErrorIs(testInstance, executionError, testCase.runnerError)
				require.Equal(testInstance, execshell.ShellCommandResult{}, result)
			case !testCase.expectRunnerCall:
				require.Error(testInstance, executionError)
			default:
				require.NoError(testInstance, executionError)
				require.Equal(testInstance, testCase.runnerResult, result)
			}

			if testCase.expectRunnerCall {
				require.Len(testInstance, recordingRunner.recordedInvocations, 1)
				require.Equal(testInstance, []string{"-c", testCase.request.Command}, recordingRunner.recordedInvocations[0].Arguments)
				require.Equal(testInstance, []string{testCase.request.WorkingDirectory}, recordingRunner.recordedDirectories)
			} else {
				require.Empty(testInstance, recordingRunner.recordedInvocations)
			}

			require.Equal(testInstance, testCase.expectedEvents, eventRecorder.events)
			require.Len(testInstance, observedLogs.All(), testCase.expectedLogCount)
		})
	}
}

func TestShellExecutorNilObserverRestoresNoop(testInstance *testing.T) {
	executor, creationError := execshell.NewShellExecutor(zap.NewNop(), newLinuxResolver(testInstance), &recordingProcessRunner{executionError: errors.New("boom")})
	require.NoError(testInstance, creationError)

	executor.WithObserver(nil)
	_, executionError := executor.Execute(context.Background(), execshell.NewShellCommandRequest("true"))
	require.EqualError(testInstance, executionError, "boom")
}

func TestNewShellCommandRequestDefaults(testInstance *testing.T) {
	request := execshell.NewShellCommandRequest("ls")
	require.Equal(testInstance, execshell.ShellCommandRequest{Command: "ls", PreferPowerShellOnWindows: true}, request)

	customized := execshell.NewShellCommandRequest("ls",
		execshell.WithWorkingDirectory(testWorkingDirectoryConstant),
		execshell.WithInterpreterOverride("/bin/ls"),
		execshell.WithPowerShellPreference(false),
		nil,
	)
	require.Equal(testInstance, execshell.ShellCommandRequest{
		Command:             "ls",
		WorkingDirectory:    testWorkingDirectoryConstant,
		InterpreterOverride: "/bin/ls",
	}, customized)
}
