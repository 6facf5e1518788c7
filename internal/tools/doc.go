// Package tools models the input, diagnostics, and success outcome of a tool run.
package tools
