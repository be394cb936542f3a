package repackager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/opencontainers/go-digest"
	"go.uber.org/multierr"

	"github.com/aikz/aikz-zipper/internal/archive"
	"github.com/aikz/aikz-zipper/internal/config"
	"github.com/aikz/aikz-zipper/internal/logger"
)

// Options describe one repackaging run.
type Options struct {
	// SourcePath is the installer to wrap.
	SourcePath string
	// ArchivePath is created or truncated.
	ArchivePath string
	// EntryName is the name of the installer inside the archive.
	EntryName string
	// EntryMode holds the permission bits recorded for the entry.
	EntryMode os.FileMode
}

// OptionsFromConfig maps a validated job onto run options.
func OptionsFromConfig(cfg *config.Config) *Options {
	return &Options{
		SourcePath:  cfg.SourcePath,
		ArchivePath: cfg.ArchivePath,
		EntryName:   cfg.EntryName,
		EntryMode:   cfg.EntryMode,
	}
}

// Report summarizes a successful run.
type Report struct {
	SourcePath  string
	ArchivePath string
	EntryName   string
	// Size is the number of installer bytes stored in the entry.
	Size int64
	// Digest identifies the installer content.
	Digest digest.Digest
}

// Run reads the installer and writes it as the only, uncompressed entry of
// a new archive. It stops at the first failure.
func Run(ctx context.Context, opts *Options) (*Report, error) {
	ctx = logger.WithName(ctx, "aikz-zipper")

	if err := validate(opts); err != nil {
		return nil, err
	}

	logger.InfoKV(ctx, "Reading installer", "path", opts.SourcePath)

	blob, modified, err := readSource(opts.SourcePath)
	if err != nil {
		return nil, err
	}

	logger.DebugKV(ctx, "Installer loaded", "bytes", len(blob))
	logger.InfoKV(ctx, "Creating archive", "path", opts.ArchivePath)

	entry := archive.Entry{
		Name:     opts.EntryName,
		Mode:     opts.EntryMode,
		Modified: modified,
	}

	if err = writeArchive(opts.ArchivePath, entry, blob); err != nil {
		return nil, err
	}

	report := &Report{
		SourcePath:  opts.SourcePath,
		ArchivePath: opts.ArchivePath,
		EntryName:   opts.EntryName,
		Size:        int64(len(blob)),
		Digest:      digest.FromBytes(blob),
	}

	logger.InfoKV(ctx, "Archive created successfully",
		"entry", report.EntryName,
		"bytes", report.Size,
		"digest", report.Digest.String(),
	)

	return report, nil
}

func validate(opts *Options) error {
	if opts == nil {
		return errOptionsNotSet
	}

	cfg := &config.Config{
		SourcePath:  opts.SourcePath,
		ArchivePath: opts.ArchivePath,
		EntryName:   opts.EntryName,
		EntryMode:   opts.EntryMode,
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	opts.EntryMode = cfg.EntryMode

	return nil
}

// readSource returns the full installer content and its modification time.
func readSource(path string) (blob []byte, modified time.Time, err error) {
	f, err := os.Open(path) //nolint:gosec // The path is part of the build-time job.
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, time.Time{}, fmt.Errorf("%w: open installer %q: %w", ErrNotFound, path, err)
		}

		return nil, time.Time{}, fmt.Errorf("%w: open installer %q: %w", ErrIO, path, err)
	}

	// Read-only handle; a close error cannot lose data.
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: stat installer %q: %w", ErrIO, path, err)
	}

	blob, err = io.ReadAll(f)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: read installer %q: %w", ErrIO, path, err)
	}

	return blob, info.ModTime(), nil
}

// writeArchive creates path and stores blob as its only entry. A failure
// after the file is created leaves whatever was written so far.
func writeArchive(path string, entry archive.Entry, blob []byte) (err error) {
	f, err := os.Create(path) //nolint:gosec // The path is part of the build-time job.
	if err != nil {
		return fmt.Errorf("%w: create archive %q: %w", ErrIO, path, err)
	}

	defer closeArchive(f, path, &err)

	return writeEntry(f, path, entry, blob)
}

// writeEntry builds the archive on w. The entry content is flushed to w
// before the central directory is written, so a fault on w while storing
// the installer is an I/O error and not a finalize error.
func writeEntry(w io.Writer, path string, entry archive.Entry, blob []byte) error {
	zw := archive.NewWriter(w)

	content, err := zw.Create(entry)
	if err != nil {
		return fmt.Errorf("%w: add entry %q: %w", ErrArchive, entry.Name, err)
	}

	if _, err = content.Write(blob); err != nil {
		return fmt.Errorf("%w: write entry %q: %w", ErrIO, entry.Name, err)
	}

	if err = zw.Flush(); err != nil {
		return fmt.Errorf("%w: write entry %q: %w", ErrIO, entry.Name, err)
	}

	if err = zw.Close(); err != nil {
		return fmt.Errorf("%w: finalize archive %q: %w", ErrArchive, path, err)
	}

	return nil
}

// closeArchive closes c and merges a close fault into *err.
func closeArchive(c io.Closer, path string, err *error) {
	if closeErr := c.Close(); closeErr != nil {
		multierr.AppendInto(err, fmt.Errorf("%w: close archive %q: %w", ErrIO, path, closeErr))
	}
}
