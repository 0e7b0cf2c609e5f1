package kaki

import "github.com/maloquacious/semver"

// LibraryVersion is this module's version, reported by the CLI's
// "version" subcommand and available to embedders that want to log or
// display it.
var LibraryVersion = semver.Version{
	Major: 0,
	Minor: 1,
	Patch: 0,
	Build: semver.Commit(),
}
