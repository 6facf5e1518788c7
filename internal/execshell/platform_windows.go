//go:build windows

package execshell

import (
	"os"

	"golang.org/x/sys/windows"
)

const (
	programFilesEnvironmentVariableConstant    = "ProgramFiles"
	programFilesX86EnvironmentVariableConstant = "ProgramFiles(x86)"
)

func programFilesDirectories() (string, string) {
	return knownFolderOrEnvironment(windows.FOLDERID_ProgramFiles, programFilesEnvironmentVariableConstant),
		knownFolderOrEnvironment(windows.FOLDERID_ProgramFilesX86, programFilesX86EnvironmentVariableConstant)
}

func knownFolderOrEnvironment(folderIdentifier *windows.KNOWNFOLDERID, environmentVariable string) string {
	folderPath, lookupError := windows.KnownFolderPath(folderIdentifier, windows.KF_FLAG_DEFAULT)
	if lookupError == nil && len(folderPath) > 0 {
		return folderPath
	}
	return os.Getenv(environmentVariable)
}
