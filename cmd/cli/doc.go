// Package cli builds the shellrun command-line interface: the Cobra root
// command, configuration loading through Viper, and zap logging shared by
// subcommands.
package cli
