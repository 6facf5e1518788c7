package execshell

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	operatingSystemWindowsConstant  = "windows"
	pathEnvironmentVariableConstant = "PATH"
)

// Platform abstracts the host facts consulted while resolving and launching interpreters.
type Platform interface {
	// OperatingSystem reports the GOOS-style name of the host.
	OperatingSystem() string
	// FileExists reports whether path names an existing regular file.
	FileExists(path string) bool
	// DirectoryExists reports whether path names an existing directory.
	DirectoryExists(path string) bool
	// SearchPathDirectories lists the directories named by the PATH environment variable, in order.
	SearchPathDirectories() []string
	// ProgramFilesDirectories returns the 64-bit and 32-bit program installation roots.
	ProgramFilesDirectories() (string, string)
	// JoinPath joins path elements with the host separator.
	JoinPath(elements ...string) string
}

// OSPlatform implements Platform using the running operating system.
type OSPlatform struct{}

// NewOSPlatform constructs the operating system platform.
func NewOSPlatform() OSPlatform {
	return OSPlatform{}
}

// OperatingSystem returns runtime.GOOS.
func (OSPlatform) OperatingSystem() string {
	return runtime.GOOS
}

// FileExists stats the path and rejects directories.
func (OSPlatform) FileExists(path string) bool {
	fileInfo, statError := os.Stat(path)
	if statError != nil {
		return false
	}
	return !fileInfo.IsDir()
}

// DirectoryExists stats the path and requires a directory.
func (OSPlatform) DirectoryExists(path string) bool {
	fileInfo, statError := os.Stat(path)
	if statError != nil {
		return false
	}
	return fileInfo.IsDir()
}

// SearchPathDirectories splits PATH with the host list separator.
func (OSPlatform) SearchPathDirectories() []string {
	return filepath.SplitList(os.Getenv(pathEnvironmentVariableConstant))
}

// ProgramFilesDirectories resolves the Program Files roots; both are empty outside Windows.
func (OSPlatform) ProgramFilesDirectories() (string, string) {
	return programFilesDirectories()
}

// JoinPath delegates to filepath.Join.
func (OSPlatform) JoinPath(elements ...string) string {
	return filepath.Join(elements...)
}
