package pathutils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	homeShortcutConstant             = "~"
	homeShortcutForwardSlashConstant = "~/"
	homeShortcutBackslashConstant    = "~\\"
)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// HomeExpander rewrites a leading ~ in working directory paths to the user's home directory.
type HomeExpander struct {
	homeDirectoryProvider HomeDirectoryProvider
	homeDirectory         string
	homeDirectoryError    error
	initializationGuard   sync.Once
}

// NewHomeExpander constructs a HomeExpander using the operating system lookup.
func NewHomeExpander() *HomeExpander {
	return NewHomeExpanderWithProvider(os.UserHomeDir)
}

// NewHomeExpanderWithProvider constructs a HomeExpander with a custom provider.
func NewHomeExpanderWithProvider(provider HomeDirectoryProvider) *HomeExpander {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &HomeExpander{homeDirectoryProvider: provider}
}

// Expand resolves "~", "~/..." and, on any host, "~\..." prefixes.
// Paths naming another user's home, such as "~bob", are returned unchanged.
func (expander *HomeExpander) Expand(candidatePath string) string {
	if expander == nil || !strings.HasPrefix(candidatePath, homeShortcutConstant) {
		return candidatePath
	}

	var relativePath string
	switch {
	case candidatePath == homeShortcutConstant:
	case strings.HasPrefix(candidatePath, homeShortcutForwardSlashConstant):
		relativePath = strings.TrimPrefix(candidatePath, homeShortcutForwardSlashConstant)
	case strings.HasPrefix(candidatePath, homeShortcutBackslashConstant):
		relativePath = strings.TrimPrefix(candidatePath, homeShortcutBackslashConstant)
	default:
		return candidatePath
	}

	homeDirectory := expander.resolveHomeDirectory()
	if len(homeDirectory) == 0 {
		return candidatePath
	}
	if len(relativePath) == 0 {
		return homeDirectory
	}
	return filepath.Join(homeDirectory, relativePath)
}

func (expander *HomeExpander) resolveHomeDirectory() string {
	expander.initializationGuard.Do(func() {
		expander.homeDirectory, expander.homeDirectoryError = expander.homeDirectoryProvider()
	})
	if expander.homeDirectoryError != nil {
		return ""
	}
	return expander.homeDirectory
}
