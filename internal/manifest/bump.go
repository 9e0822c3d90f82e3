package manifest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentchanti/kbreg/internal/validation"
)

// BumpKind names the version component to increment.
type BumpKind string

const (
	BumpMajor BumpKind = "major"
	BumpMinor BumpKind = "minor"
	BumpPatch BumpKind = "patch"
)

// BumpKinds lists the valid bump kinds.
var BumpKinds = []BumpKind{BumpMajor, BumpMinor, BumpPatch}

// LegacyBumpEnv is the CI variable that selects a bump kind when neither the
// command line nor the configuration does.
const LegacyBumpEnv = "BUMP_TYPE"

// ParseBumpKind parses s, ignoring case and surrounding whitespace.
func ParseBumpKind(s string) (BumpKind, error) {
	k := BumpKind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case BumpMajor, BumpMinor, BumpPatch:
		return k, nil
	default:
		return "", fmt.Errorf("invalid bump type %q (valid types: major, minor, patch)", s)
	}
}

// ResolveBumpKind picks the bump kind and reports where it came from.
// Priority: explicit argument > configured value > legacy environment > patch.
// An invalid argument or configured value is an error; an invalid legacy
// environment value is ignored.
func ResolveBumpKind(arg, configured string, getenv func(string) string) (BumpKind, string, error) {
	if arg != "" {
		k, err := ParseBumpKind(arg)
		return k, "argument", err
	}
	if configured != "" {
		k, err := ParseBumpKind(configured)
		return k, "configuration", err
	}
	if getenv != nil {
		if k, err := ParseBumpKind(getenv(LegacyBumpEnv)); err == nil {
			return k, "environment", nil
		}
	}
	return BumpPatch, "default", nil
}

// Version is a parsed X.Y.Z version.
type Version struct {
	Major, Minor, Patch int
}

// ParseVersion parses a strict X.Y.Z version.
func ParseVersion(s string) (Version, error) {
	if !validation.IsSemver(s) {
		return Version{}, fmt.Errorf("invalid version %q (must be X.Y.Z semver format)", s)
	}
	parts := strings.Split(s, ".")
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String formats the version as X.Y.Z.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Next returns the version after v for the given bump kind.
func (v Version) Next(kind BumpKind) Version {
	switch kind {
	case BumpMajor:
		return Version{Major: v.Major + 1}
	case BumpMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	default:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	}
}

// Bump returns the version string after applying kind to current.
func Bump(current string, kind BumpKind) (string, error) {
	v, err := ParseVersion(current)
	if err != nil {
		return "", err
	}
	return v.Next(kind).String(), nil
}
