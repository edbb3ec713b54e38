package otelcast

import "github.com/zitsen/arrow-cast-guess-precision/internal/version"

// Version is the current release version of the cast instrumentation.
func Version() string {
	return version.Get().Raw
}

// SemVersion is the semantic version to be supplied to tracer/meter creation.
func SemVersion() string {
	return "semver:" + Version()
}
