package expenses

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// StorageError reports a failure to read or write the backing file: the file
// exists but is malformed, or it cannot be (re)written. A missing file on
// load is not a StorageError, it is an empty book.
type StorageError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("could not %s expense file %q: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// LoadBook loads the book from the backing file.
//
// A missing file is not an error: the book simply has not been created yet,
// and an empty one is returned. A file that exists but does not parse is
// corruption and yields a *StorageError; the two outcomes are never conflated.
func LoadBook(path string) (*Book, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewBook(), nil
	}
	if err != nil {
		return nil, &StorageError{Op: "load", Path: path, Err: err}
	}
	defer f.Close()

	book, err := DecodeBook(f)
	if err != nil {
		return nil, &StorageError{Op: "load", Path: path, Err: err}
	}
	return book, nil
}

// SaveBook rewrites the whole backing file with the book's records.
//
// The write is atomic from a reader's perspective: the book is encoded into a
// temporary file in the same directory, flushed, and renamed over the target.
// A failed save leaves the previous on-disk state unchanged.
func SaveBook(path string, book *Book) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := EncodeBook(tmp, book); err != nil {
		tmp.Close()
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	return nil
}
