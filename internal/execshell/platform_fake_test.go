package execshell_test

import (
	"strings"
)

const fakeWindowsPathSeparatorConstant = `\`

type fakePlatform struct {
	operatingSystem          string
	existingFiles            map[string]bool
	existingDirectories      map[string]bool
	searchPathDirectories    []string
	programFilesDirectory    string
	programFilesX86Directory string
	checkedFiles             []string
}

func (platform *fakePlatform) OperatingSystem() string {
	return platform.operatingSystem
}

func (platform *fakePlatform) FileExists(path string) bool {
	platform.checkedFiles = append(platform.checkedFiles, path)
	return platform.existingFiles[path]
}

func (platform *fakePlatform) DirectoryExists(path string) bool {
	return platform.existingDirectories[path]
}

func (platform *fakePlatform) SearchPathDirectories() []string {
	return append([]string{}, platform.searchPathDirectories...)
}

func (platform *fakePlatform) ProgramFilesDirectories() (string, string) {
	return platform.programFilesDirectory, platform.programFilesX86Directory
}

func (platform *fakePlatform) JoinPath(elements ...string) string {
	return strings.Join(elements, fakeWindowsPathSeparatorConstant)
}
