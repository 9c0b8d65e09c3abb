package ioutils

import "os"

// EnsureDir creates a directory and all parent directories if they don't
// exist. Directories are created with mode 0755; an existing directory is
// not an error.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
