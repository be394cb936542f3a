package repackager

import "errors"

var (
	// ErrNotFound means the installer path does not exist.
	ErrNotFound = errors.New("not found")
	// ErrIO covers read and write faults on the installer or the archive file.
	ErrIO = errors.New("i/o error")
	// ErrArchive covers faults while building or finalizing the ZIP structure.
	ErrArchive = errors.New("archive error")

	errOptionsNotSet = errors.New("options are not set")
)
