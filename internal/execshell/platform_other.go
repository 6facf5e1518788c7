//go:build !windows

package execshell

func programFilesDirectories() (string, string) {
	return "", ""
}
