package version

import (
	"testing"

	"pgregory.net/rapid"
)

func genVersion() *rapid.Generator[Version] {
	identifier := rapid.OneOf(
		rapid.StringMatching(`[0-9]{1,3}`),
		rapid.StringMatching(`[a-z][a-z0-9-]{0,5}`),
	)
	return rapid.Custom(func(t *rapid.T) Version {
		return Version{
			Major:      rapid.IntRange(0, 99).Draw(t, "major"),
			Minor:      rapid.IntRange(0, 99).Draw(t, "minor"),
			Patch:      rapid.IntRange(0, 99).Draw(t, "patch"),
			Prerelease: rapid.SliceOfN(identifier, 0, 4).Draw(t, "prerelease"),
		}
	})
}

// TestProperty_CompareIsTotalOrder verifies antisymmetry, reflexivity, and
// transitivity of Compare over generated versions.
func TestProperty_CompareIsTotalOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genVersion().Draw(t, "a")
		b := genVersion().Draw(t, "b")
		c := genVersion().Draw(t, "c")

		if a.Compare(a) != 0 {
			t.Errorf("Compare(%s, %s) != 0", a, a)
		}
		if a.Compare(b) != -b.Compare(a) {
			t.Errorf("Compare(%s, %s) = %d but Compare(%s, %s) = %d",
				a, b, a.Compare(b), b, a, b.Compare(a))
		}
		if a.Compare(b) <= 0 && b.Compare(c) <= 0 && a.Compare(c) > 0 {
			t.Errorf("transitivity violated: %s <= %s <= %s but %s > %s", a, b, c, a, c)
		}
	})
}

// TestProperty_ParseStringRoundTrip verifies that formatting any generated
// version and parsing it back yields an equal version.
func TestProperty_ParseStringRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := genVersion().Draw(t, "v")

		parsed, err := Parse(v.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", v.String(), err)
		}
		if !parsed.Equals(v) {
			t.Errorf("round-trip mismatch: %+v != %+v", parsed, v)
		}
	})
}

// TestProperty_BumpIsStrictlyNewer verifies that bumping any component of
// any version produces a strictly newer release version.
func TestProperty_BumpIsStrictlyNewer(t *testing.T) {
	kinds := []Kind{KindMajor, KindMinor, KindPatch}

	rapid.Check(t, func(t *rapid.T) {
		v := genVersion().Draw(t, "v")
		kind := rapid.SampledFrom(kinds).Draw(t, "kind")

		next := v.Bump(kind)
		if !next.IsNewer(v) {
			t.Errorf("Bump(%s, %s) = %s is not strictly newer", v, kind, next)
		}
		if next.IsPrerelease() || next.Build != "" {
			t.Errorf("Bump(%s, %s) = %s kept prerelease or build metadata", v, kind, next)
		}
	})
}
