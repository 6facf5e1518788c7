package utils

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logLevelDebugStringConstant          = "debug"
	logLevelInfoStringConstant           = "info"
	logLevelWarnStringConstant           = "warn"
	logLevelErrorStringConstant          = "error"
	logFormatStructuredStringConstant    = "structured"
	logFormatConsoleStringConstant       = "console"
	unsupportedLogLevelTemplateConstant  = "unsupported log level: %s"
	unsupportedLogFormatTemplateConstant = "unsupported log format: %s"
)

// LogLevel enumerates supported logging granularities.
type LogLevel string

// Supported log levels.
const (
	LogLevelDebug LogLevel = LogLevel(logLevelDebugStringConstant)
	LogLevelInfo  LogLevel = LogLevel(logLevelInfoStringConstant)
	LogLevelWarn  LogLevel = LogLevel(logLevelWarnStringConstant)
	LogLevelError LogLevel = LogLevel(logLevelErrorStringConstant)
)

// LogFormat enumerates supported logger output encodings.
type LogFormat string

// Supported log formats.
const (
	LogFormatStructured LogFormat = LogFormat(logFormatStructuredStringConstant)
	LogFormatConsole    LogFormat = LogFormat(logFormatConsoleStringConstant)
)

var logLevelMapping = map[LogLevel]zapcore.Level{
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
}

// LoggerFactory builds zap.Logger instances with consistent configuration.
type LoggerFactory struct{}

// NewLoggerFactory constructs a new logger factory.
func NewLoggerFactory() *LoggerFactory {
	return &LoggerFactory{}
}

// CreateLogger produces a logger writing to standard error.
func (factory *LoggerFactory) CreateLogger(requestedLogLevel LogLevel, requestedLogFormat LogFormat) (*zap.Logger, error) {
	return factory.CreateLoggerWithWriter(requestedLogLevel, requestedLogFormat, os.Stderr)
}

// CreateLoggerWithWriter produces a logger honoring the requested level and format that writes to destination.
func (factory *LoggerFactory) CreateLoggerWithWriter(requestedLogLevel LogLevel, requestedLogFormat LogFormat, destination io.Writer) (*zap.Logger, error) {
	zapLogLevel, levelExists := logLevelMapping[requestedLogLevel]
	if !levelExists {
		return nil, fmt.Errorf(unsupportedLogLevelTemplateConstant, requestedLogLevel)
	}

	var encoder zapcore.Encoder
	switch requestedLogFormat {
	case LogFormatStructured:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case LogFormatConsole:
		encoderConfiguration := zap.NewDevelopmentEncoderConfig()
		encoderConfiguration.TimeKey = ""
		encoderConfiguration.CallerKey = ""
		encoder = zapcore.NewConsoleEncoder(encoderConfiguration)
	default:
		return nil, fmt.Errorf(unsupportedLogFormatTemplateConstant, requestedLogFormat)
	}

	if destination == nil {
		destination = os.Stderr
	}
	writeSyncer := zapcore.Lock(flushingLogDestination{destination: destination})

	return zap.New(zapcore.NewCore(encoder, writeSyncer, zap.NewAtomicLevelAt(zapLogLevel))), nil
}

// flushingLogDestination pushes every encoded entry through buffered destinations so log lines
// interleave with streamed command output.
type flushingLogDestination struct {
	destination io.Writer
}

func (logDestination flushingLogDestination) Write(entry []byte) (int, error) {
	bytesWritten, writeError := logDestination.destination.Write(entry)
	if writeError != nil {
		return bytesWritten, writeError
	}
	if flusher, flushes := logDestination.destination.(interface{ Flush() error }); flushes {
		return bytesWritten, flusher.Flush()
	}
	return bytesWritten, nil
}

func (logDestination flushingLogDestination) Sync() error {
	if syncer, syncs := logDestination.destination.(zapcore.WriteSyncer); syncs {
		return syncer.Sync()
	}
	return nil
}
