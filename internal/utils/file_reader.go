package utils

import (
	"os"
	"path/filepath"
)

// FileReader reads model documents and keeps their bytes until the file's
// modification time or size changes.
type FileReader struct {
	contents *Cache[string, []byte]
}

func NewFileReader() *FileReader {
	return &FileReader{contents: NewCache[string, []byte]()}
}

// ReadFile returns the content of path, from the cache when the file is
// unchanged on disk. Errors come straight from the os package.
func (fr *FileReader) ReadFile(path string) ([]byte, error) {
	key, err := CleanPath(path)
	if err != nil {
		return nil, err
	}
	if content, ok := fr.contents.GetWithFileValidation(key, key); ok {
		return content, nil
	}

	content, err := os.ReadFile(key)
	if err != nil {
		return nil, err
	}
	// without file info the entry is never validated, so skip caching
	_ = fr.contents.SetWithFileInfo(key, content, key)
	return content, nil
}

// InvalidateFile forgets path so the next read goes to disk.
func (fr *FileReader) InvalidateFile(path string) {
	fr.contents.Delete(filepath.Clean(path))
}

// CachedFiles reports how many documents are held.
func (fr *FileReader) CachedFiles() int {
	return fr.contents.Size()
}

// CleanPath rejects empty paths and returns path cleaned.
func CleanPath(path string) (string, error) {
	if err := NotEmpty("file path")(path); err != nil {
		return "", err
	}
	return filepath.Clean(path), nil
}
