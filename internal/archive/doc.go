// Package archive writes ZIP containers that hold exactly one stored
// (uncompressed) entry.
package archive
