// Package version provides semantic version parsing, formatting, and total
// ordering for model artifact versions.
//
// # Overview
//
// This package implements the subset of semantic versioning (semver.org)
// that modelver needs to name version directories: a required
// MAJOR.MINOR.PATCH core, an optional pre-release label, and optional build
// metadata. Versions are immutable value types.
//
//   - "1.2.3" — release
//   - "1.2.3-alpha.1" — pre-release, sorts before "1.2.3"
//   - "1.2.3+20260828" — build metadata, ignored for ordering and equality
//
// # Usage
//
// Parse a version string:
//
//	v, err := version.Parse("v1.2.3")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 1.2.3
//
// Compare versions:
//
//	a := version.MustParse("1.0.0-alpha")
//	b := version.MustParse("1.0.0")
//	if a.Less(b) {
//	    fmt.Println("pre-release precedes its release")
//	}
//
// Produce the next version:
//
//	next := version.MustParse("1.2.3").Bump(version.KindMinor)
//	fmt.Println(next) // Output: 1.3.0
//
// # Ordering
//
// Core components compare numerically in major, minor, patch order. When
// cores are equal, a version with a pre-release label is strictly less than
// one without. Two pre-release labels compare identifier by identifier:
// numeric identifiers compare numerically, alphanumeric identifiers compare
// lexically, numeric identifiers always sort before alphanumeric ones, and
// a label that is a strict prefix of another sorts first. Build metadata
// never participates in comparison or equality.
//
// # Error Handling
//
// Parse returns sentinel errors for the different failure modes
// (ErrEmptyVersion, ErrTooFewComponents, ErrNonNumeric, ...). Every
// sentinel wraps ErrInvalidVersion, so callers that only care about
// validity can match the one kind:
//
//	if _, err := version.Parse(input); errors.Is(err, version.ErrInvalidVersion) {
//	    // reject input
//	}
//
// For constant initialization, use MustParse which panics on error:
//
//	var initial = version.MustParse("0.0.0-dev.0")
package version
