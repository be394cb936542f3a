package version

import "fmt"

// The release pipeline builds the tool next to the Tauri bundle it wraps,
// so Version follows the installer version embedded in the job paths.
// All three values are stamped with
//
//	-ldflags "-X github.com/aikz/aikz-zipper/internal/version.Version=... -X ...Commit=... -X ...BuildTime=..."
var (
	Version   = "1.0.21"
	Commit    = "none"
	BuildTime = "unknown"
)

// Short returns the installer release the tool was built for.
func Short() string {
	return Version
}

// Full renders the line printed by `aikz-zipper version`.
func Full() string {
	return fmt.Sprintf("aikz-zipper %s (commit %s, built %s)", Version, Commit, BuildTime)
}
