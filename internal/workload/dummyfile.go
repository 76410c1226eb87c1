package workload

import (
	"fmt"
	"os"

	apperrors "github.com/agbru/procbench/internal/errors"
)

// DummyFileStatus reports what EnsureDummyFile did.
type DummyFileStatus int

const (
	DummyFileReused DummyFileStatus = iota
	DummyFileCreated
)

// EnsureDummyFile makes sure path exists with exactly size bytes. An existing
// file of the right size is reused untouched. Otherwise the file is rewritten
// with chunks whose byte i is i%256, and synced before returning.
func EnsureDummyFile(path string, size int64, chunkSize int) (DummyFileStatus, error) {
	if size < 0 {
		return 0, apperrors.ValidationError{Field: "file-size-mb", Message: fmt.Sprintf("must be >= 0, got %d bytes", size)}
	}
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() && info.Size() == size {
		return DummyFileReused, nil
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, apperrors.StartupError{Op: "create dummy file", Cause: err}
	}
	if err := writePattern(f, size, chunkSize); err != nil {
		f.Close()
		return 0, apperrors.StartupError{Op: "write dummy file", Cause: err}
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return 0, apperrors.StartupError{Op: "sync dummy file", Cause: err}
	}
	if err := f.Close(); err != nil {
		return 0, apperrors.StartupError{Op: "close dummy file", Cause: err}
	}
	return DummyFileCreated, nil
}

func writePattern(f *os.File, size int64, chunkSize int) error {
	data := make([]byte, chunkSize)
	for i := range data {
		data[i] = byte(i % 256)
	}
	for remaining := size; remaining > 0; {
		n := min(int64(len(data)), remaining)
		if _, err := f.Write(data[:n]); err != nil {
			return err
		}
		remaining -= n
	}
	return nil
}
