// Package version holds build metadata, overridable with -ldflags.
package version

// Version is the application version.
var Version = "0.3.0-dev"
