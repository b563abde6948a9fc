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
	"strings"
)

// ErrUnknownKind indicates a bump kind outside major, minor, or patch.
var ErrUnknownKind = errors.New("unknown bump kind")

// Kind selects which component Bump increments.
type Kind string

const (
	// KindMajor increments the major component.
	KindMajor Kind = "major"
	// KindMinor increments the minor component.
	KindMinor Kind = "minor"
	// KindPatch increments the patch component.
	KindPatch Kind = "patch"
)

// IsValid reports whether k is a supported bump kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindMajor, KindMinor, KindPatch:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind parses a bump kind from user input, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q (supported values: %s)",
			ErrUnknownKind, s, strings.Join(SupportedKinds(), ", "))
	}
	return k, nil
}

// SupportedKinds returns the list of valid bump kinds for usage text.
func SupportedKinds() []string {
	return []string{
		string(KindMajor),
		string(KindMinor),
		string(KindPatch),
	}
}

// Bump returns a new Version with the selected component incremented,
// all lower-significance components reset to zero, and the pre-release
// label and build metadata cleared. An unrecognized kind bumps patch.
func (v Version) Bump(kind Kind) Version {
	switch kind {
	case KindMajor:
		return Version{Major: v.Major + 1}
	case KindMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	default:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	}
}
