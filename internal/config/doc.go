// Package config holds the repackaging job: which installer to read, where
// to write the archive, and the entry metadata. The job is fixed at build
// time in an embedded YAML document; nothing is read from disk, flags or
// the environment at run time.
package config
