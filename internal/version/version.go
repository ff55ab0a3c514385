package version

import "fmt"

var (
	// Version is set via ldflags during build
	Version = "dev"
	// Commit is the short git revision, also set via ldflags
	Commit = ""
)

// Short returns the version string
func Short() string {
	return Version
}

// Long returns the version with the commit it was built from, when known
func Long() string {
	if Commit == "" {
		return fmt.Sprintf("folio %s", Version)
	}
	return fmt.Sprintf("folio %s (%s)", Version, Commit)
}
