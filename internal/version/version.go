// Package version holds the build version, overridable with
// -ldflags "-X biosci/internal/version.Version=...".
package version

var Version = "dev"
