// Package version exposes build metadata for aikz-zipper.
//
// Version, Commit and BuildTime are injected through -ldflags at release
// time and keep their defaults for local builds.
package version
