package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes a single repackaging job.
type Config struct {
	// SourcePath is the installer read into memory.
	SourcePath string `yaml:"source_path"`
	// ArchivePath is the ZIP file created (or truncated) by the run.
	ArchivePath string `yaml:"archive_path"`
	// EntryName is the name of the only entry in the archive.
	EntryName string `yaml:"entry_name"`
	// EntryMode holds the POSIX permission bits recorded for the entry.
	EntryMode os.FileMode `yaml:"entry_mode"`
}

// DefaultEntryMode is rwxr-xr-x.
const DefaultEntryMode os.FileMode = 0o755

// embeddedJob is the job fixed at build time.
//
//go:embed job.yaml
var embeddedJob []byte

var (
	errConfigIsNotSet       = errors.New("configuration is not set")
	errSourcePathRequired   = errors.New("source path must be provided")
	errArchivePathRequired  = errors.New("archive path must be provided")
	errEntryNameRequired    = errors.New("entry name must be provided")
	errSameSourceAndArchive = errors.New("source and archive paths must differ")
	errEntryModeNotPerm     = errors.New("entry mode must only contain permission bits")
)

// Load decodes and validates the job compiled into the binary.
func Load() (*Config, error) {
	return Parse(embeddedJob)
}

// Parse decodes a job document and validates it.
func Parse(contents []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal job: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks required fields and fills in the default entry mode.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.SourcePath == "" {
		return errSourcePathRequired
	}

	if cfg.ArchivePath == "" {
		return errArchivePathRequired
	}

	if cfg.SourcePath == cfg.ArchivePath {
		return errSameSourceAndArchive
	}

	if cfg.EntryName == "" {
		return errEntryNameRequired
	}

	if cfg.EntryMode == 0 {
		cfg.EntryMode = DefaultEntryMode
	}

	if cfg.EntryMode&^os.ModePerm != 0 {
		return fmt.Errorf("%w: %o", errEntryModeNotPerm, cfg.EntryMode)
	}

	return nil
}
