package ports

import "os"

// FileSystem is the slice of file operations batch processing needs.
type FileSystem interface {
	WriteFile(filePath string, permission os.FileMode, contents []byte) error
	ReadFile(filePath string) ([]byte, error)
	Exists(filePath string) (bool, error)
}
