// Package utils holds the configuration and logging plumbing shared by the CLI.
//
// ConfigurationLoader layers embedded defaults, an optional configuration file,
// and prefixed environment variables through Viper. LoggerFactory builds zap
// loggers in structured (JSON) or console encodings behind a zapcore.Lock that
// flushes buffered destinations after each entry.
package utils
