// Package filesys provides the handful of read-only file system operations
// Tomo needs to open an archive and, for multi-part archives, discover the
// sibling part files that make up a Stacked-mode load.
package filesys

import (
	"errors"
	"os"
	"path/filepath"
)

var (
	ErrIsNotDir = errors.New("path isn't a directory")
)

// Exists checks if a file or directory at the given `file` path exists.
// It returns true if the file/directory exists, false if it does not,
// and an error if there's any other issue checking its status.
func Exists(file string) (bool, error) {
	_, err := os.Stat(file)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Open opens filePath read-only for use as a seekable.Source.
func Open(filePath string) (*os.File, error) {
	return os.Open(filePath)
}

// ReadDir returns the paths matching the glob pattern `dirName`, e.g.
// "/data/archives/part.*.tomo".
func ReadDir(dirName string) ([]string, error) {
	return filepath.Glob(dirName)
}

// Pwd returns the present working directory.
func Pwd() (string, error) {
	return os.Getwd()
}
