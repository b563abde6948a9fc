// Copyright (c) 2026, the modelver authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Error types for version parsing failures. Every sentinel wraps
// ErrInvalidVersion, so callers can match the broad kind with
// errors.Is(err, ErrInvalidVersion) or a specific failure mode.
var (
	ErrInvalidVersion = errors.New("invalid version")

	ErrEmptyVersion        = fmt.Errorf("%w: version string is empty", ErrInvalidVersion)
	ErrTooFewComponents    = fmt.Errorf("%w: version requires major.minor.patch", ErrInvalidVersion)
	ErrTooManyComponents   = fmt.Errorf("%w: version has more than 3 components", ErrInvalidVersion)
	ErrNonNumeric          = fmt.Errorf("%w: version component is not numeric", ErrInvalidVersion)
	ErrNegativeComponent   = fmt.Errorf("%w: version component cannot be negative", ErrInvalidVersion)
	ErrMalformedPrerelease = fmt.Errorf("%w: malformed pre-release label", ErrInvalidVersion)
	ErrMalformedBuild      = fmt.Errorf("%w: malformed build metadata", ErrInvalidVersion)
)

// Version represents a semantic version with Major, Minor, and Patch
// components, an optional pre-release label, and optional build metadata.
// Versions are immutable value types: Bump returns a new Version rather
// than mutating the receiver.
//
// Build metadata is carried for information only and never participates
// in comparison or equality.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`

	// Prerelease holds the dot-separated identifiers after the first '-',
	// e.g. ["alpha", "1"] for "1.0.0-alpha.1". Empty for release versions.
	Prerelease []string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`

	// Build holds everything after the '+', e.g. "20260828.sha.5114f85".
	Build string `json:"build,omitempty" yaml:"build,omitempty"`
}

// New creates a release Version with the specified major, minor, and patch
// values and no pre-release label or build metadata.
// Use Parse for version strings.
func New(major, minor, patch int) Version {
	return Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
}

// String returns the canonical string representation:
// MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD].
func (v Version) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", v.Major, v.Minor, v.Patch)
	if len(v.Prerelease) > 0 {
		b.WriteByte('-')
		b.WriteString(strings.Join(v.Prerelease, "."))
	}
	if v.Build != "" {
		b.WriteByte('+')
		b.WriteString(v.Build)
	}
	return b.String()
}

// Parse parses a version string into a Version.
// Supported format: MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD], with an
// optional "v" prefix which is stripped if present (e.g. "v1.2.3").
// All three core components are required: "1.2" is rejected.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	s = strings.TrimPrefix(s, "v")
	var v Version

	// The pre-release label or build metadata starts at the first '-' or '+'
	// that follows a digit. A '-' at position 0, or one following a dot, is
	// a negative component and must fail core parsing instead.
	rest := ""
	for i, ch := range s {
		if (ch == '-' || ch == '+') && i > 0 && isDigit(s[i-1]) {
			rest = s[i:]
			s = s[:i]
			break
		}
	}

	if rest != "" {
		label := ""
		switch {
		case rest[0] == '+':
			v.Build = rest[1:]
		case strings.ContainsRune(rest, '+'):
			i := strings.IndexByte(rest, '+')
			label = rest[1:i]
			v.Build = rest[i+1:]
		default:
			label = rest[1:]
		}

		if rest[0] == '-' {
			v.Prerelease = strings.Split(label, ".")
			for _, id := range v.Prerelease {
				if !isIdentifier(id) {
					return Version{}, fmt.Errorf("%w: %q", ErrMalformedPrerelease, label)
				}
			}
		}
		if strings.ContainsRune(rest, '+') {
			if err := validateBuild(v.Build); err != nil {
				return Version{}, err
			}
		}
	}

	parts := strings.Split(s, ".")
	if len(parts) < 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrTooFewComponents, s)
	}
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrTooManyComponents, s)
	}

	for i, part := range parts {
		if strings.HasPrefix(part, "-") {
			return Version{}, fmt.Errorf("%w: %q", ErrNegativeComponent, part)
		}
		if !isNumeric(part) {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		num, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}

		switch i {
		case 0:
			v.Major = num
		case 1:
			v.Minor = num
		case 2:
			v.Patch = num
		}
	}

	return v, nil
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For user input or
// runtime data, always use Parse and handle errors explicitly.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// Compare returns an integer comparing two versions:
// -1 if v < other, 0 if v == other, 1 if v > other.
//
// Core components compare numerically in major, minor, patch order.
// At equal core, a version with a pre-release label sorts before one
// without; two labels compare identifier by identifier (numeric
// identifiers numerically, alphanumeric identifiers lexically, numeric
// always before alphanumeric), and an otherwise-equal shorter label
// sorts first. Build metadata is never compared.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}
	return comparePrerelease(v.Prerelease, other.Prerelease)
}

// Less reports whether v sorts before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// IsNewer reports whether v is strictly newer than other.
func (v Version) IsNewer(other Version) bool {
	return v.Compare(other) > 0
}

// Equals reports whether v and other denote the same version.
// Build metadata is excluded: "1.0.0+a" equals "1.0.0+b".
func (v Version) Equals(other Version) bool {
	return v.Compare(other) == 0
}

// IsPrerelease reports whether v carries a pre-release label.
func (v Version) IsPrerelease() bool {
	return len(v.Prerelease) > 0
}

// IsValid reports whether all core components are non-negative and every
// pre-release identifier is well formed.
func (v Version) IsValid() bool {
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return false
	}
	for _, id := range v.Prerelease {
		if !isIdentifier(id) {
			return false
		}
	}
	return true
}

// Sort orders versions in place, ascending.
func Sort(versions []Version) {
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Less(versions[j])
	})
}

func validateBuild(build string) error {
	if build == "" {
		return fmt.Errorf("%w: empty build metadata", ErrMalformedBuild)
	}
	for _, id := range strings.Split(build, ".") {
		if !isIdentifier(id) {
			return fmt.Errorf("%w: %q", ErrMalformedBuild, build)
		}
	}
	return nil
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func comparePrerelease(a, b []string) int {
	// A release always outranks a pre-release of the same core.
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return 1
	case len(b) == 0:
		return -1
	}

	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareIdentifier(a[i], b[i]); c != 0 {
			return c
		}
	}
	return compareInt(len(a), len(b))
}

func compareIdentifier(a, b string) int {
	aNum, bNum := isNumeric(a), isNumeric(b)
	switch {
	case aNum && bNum:
		ai, _ := strconv.Atoi(a)
		bi, _ := strconv.Atoi(b)
		return compareInt(ai, bi)
	case aNum:
		return -1
	case bNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isIdentifier reports whether s is a valid pre-release or build
// identifier: non-empty, alphanumeric ASCII or hyphens only.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r == '-':
		default:
			return false
		}
	}
	return true
}
