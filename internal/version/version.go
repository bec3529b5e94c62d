// Package version provides centralized version information for human-time.
// All versions follow semantic versioning (semver) conventions.

package version

// HumanTimeVersion holds the current human-time CLI version.
// Format: major.minor.patch[-prerelease][+build]
const HumanTimeVersion = "0.1.0-dev"
