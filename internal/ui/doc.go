// Package ui renders shell command lifecycle events as console log lines.
package ui
