package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLoad_EmbeddedJob checks the job compiled into the binary.
func TestLoad_EmbeddedJob(t *testing.T) {
	t.Parallel()

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "AIKZ Sistema de Gestión_1.0.21_x64_en-US.msi", cfg.EntryName)
	require.Equal(t,
		"../../src-tauri/target/release/bundle/msi/AIKZ Sistema de Gestión_1.0.21_x64_en-US.msi",
		cfg.SourcePath)
	require.Equal(t,
		"../../src-tauri/target/release/bundle/msi/AIKZ.Sistema.de.Gestion_1.0.21_x64_en-US.msi.zip",
		cfg.ArchivePath)
	require.Equal(t, DefaultEntryMode, cfg.EntryMode)
}

// TestValidate checks required fields and the entry mode default.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Validate(nil), errConfigIsNotSet)
	require.ErrorIs(t, Validate(new(Config)), errSourcePathRequired)
	require.ErrorIs(t, Validate(&Config{SourcePath: "a.msi"}), errArchivePathRequired)
	require.ErrorIs(t, Validate(&Config{SourcePath: "a.msi", ArchivePath: "a.msi"}), errSameSourceAndArchive)
	require.ErrorIs(t, Validate(&Config{SourcePath: "a.msi", ArchivePath: "a.zip"}), errEntryNameRequired)

	cfg := &Config{SourcePath: "a.msi", ArchivePath: "a.zip", EntryName: "a.msi"}
	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultEntryMode, cfg.EntryMode)

	cfg.EntryMode = 0o4755
	require.ErrorIs(t, Validate(cfg), errEntryModeNotPerm)
}

// TestParse_Invalid rejects malformed documents.
func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("source_path: [unterminated"))
	require.Error(t, err)

	_, err = Parse([]byte("source_path: a.msi\n"))
	require.ErrorIs(t, err, errArchivePathRequired)

	cfg, err := Parse([]byte("source_path: a.msi\narchive_path: a.zip\nentry_name: a.msi\nentry_mode: 0o644\n"))
	require.NoError(t, err)
	require.EqualValues(t, 0o644, cfg.EntryMode)
}
