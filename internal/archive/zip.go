package archive

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/klauspost/compress/zip"
)

var (
	// ErrEntryExists is returned when a second entry is requested.
	ErrEntryExists = errors.New("archive already has an entry")
	// ErrNoEntry is returned when an archive is finalized without an entry.
	ErrNoEntry = errors.New("archive has no entry")
	// ErrClosed is returned by any call after Close.
	ErrClosed = errors.New("archive writer is closed")
	// ErrEmptyName is returned for an entry without a name.
	ErrEmptyName = errors.New("entry name is empty")
)

// Entry is the metadata of the archive's only file.
type Entry struct {
	// Name is the path recorded in the archive.
	Name string
	// Mode holds the permission bits; the entry is always a regular file.
	Mode os.FileMode
	// Modified is the recorded modification time. Zero means now.
	Modified time.Time
}

// Writer produces a single-entry ZIP archive with the Store method.
type Writer struct {
	zw      *zip.Writer
	created bool
	closed  bool
}

// NewWriter binds a Writer to w. The caller still owns w and must close it.
func NewWriter(w io.Writer) *Writer {
	return &Writer{zw: zip.NewWriter(w)}
}

// Create opens the archive's entry and returns the writer for its content.
func (w *Writer) Create(entry Entry) (io.Writer, error) {
	switch {
	case w.closed:
		return nil, ErrClosed
	case w.created:
		return nil, ErrEntryExists
	case entry.Name == "":
		return nil, ErrEmptyName
	}

	modified := entry.Modified
	if modified.IsZero() {
		modified = time.Now()
	}

	header := &zip.FileHeader{
		Name:     entry.Name,
		Method:   zip.Store,
		Modified: modified,
	}
	// SetMode marks the entry as created on Unix and stores the bits in the
	// high half of the external attributes.
	header.SetMode(entry.Mode.Perm())

	content, err := w.zw.CreateHeader(header)
	if err != nil {
		return nil, err
	}

	w.created = true

	return content, nil
}

// Flush pushes everything written so far to the underlying writer.
func (w *Writer) Flush() error {
	if w.closed {
		return ErrClosed
	}

	return w.zw.Flush()
}

// Close writes the central directory. It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return ErrClosed
	}

	if !w.created {
		return ErrNoEntry
	}

	w.closed = true

	return w.zw.Close()
}
