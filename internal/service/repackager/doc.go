// Package repackager wraps a built installer into a single-entry, stored ZIP
// archive ready for distribution.
//
// A run reads the whole installer into memory before it touches the
// destination, so a missing source never leaves an archive behind. A run
// that fails while writing leaves the partial archive in place.
package repackager
