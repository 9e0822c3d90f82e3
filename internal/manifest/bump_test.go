// Package manifest_test tests semantic-version parsing and bump resolution.
// Related: internal/manifest/bump.go
// Tags: manifest, version, semver, bump
package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBump(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		current string
		kind    BumpKind
		want    string
		wantErr bool
	}{
		"patch":         {current: "1.2.3", kind: BumpPatch, want: "1.2.4"},
		"minor":         {current: "1.2.3", kind: BumpMinor, want: "1.3.0"},
		"major":         {current: "1.2.3", kind: BumpMajor, want: "2.0.0"},
		"multi digit":   {current: "9.99.999", kind: BumpPatch, want: "9.99.1000"},
		"leading zero":  {current: "01.0.0", kind: BumpMajor, want: "2.0.0"},
		"prerelease":    {current: "1.0.0-rc1", kind: BumpPatch, wantErr: true},
		"two parts":     {current: "1.0", kind: BumpPatch, wantErr: true},
		"empty version": {current: "", kind: BumpPatch, wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := Bump(tc.current, tc.kind)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "must be X.Y.Z")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseBumpKind(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		want    BumpKind
		wantErr bool
	}{
		"lower":      {input: "minor", want: BumpMinor},
		"upper":      {input: "MAJOR", want: BumpMajor},
		"whitespace": {input: " patch\n", want: BumpPatch},
		"unknown":    {input: "huge", wantErr: true},
		"empty":      {input: "", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseBumpKind(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveBumpKind(t *testing.T) {
	t.Parallel()

	env := func(v string) func(string) string {
		return func(key string) string {
			if key == LegacyBumpEnv {
				return v
			}
			return ""
		}
	}

	tests := map[string]struct {
		arg        string
		configured string
		getenv     func(string) string
		want       BumpKind
		wantSource string
		wantErr    bool
	}{
		"argument wins":               {arg: "major", configured: "minor", getenv: env("minor"), want: BumpMajor, wantSource: "argument"},
		"configuration next":          {configured: "minor", getenv: env("major"), want: BumpMinor, wantSource: "configuration"},
		"legacy environment":          {getenv: env("Major"), want: BumpMajor, wantSource: "environment"},
		"invalid environment ignored": {getenv: env("bump:major"), want: BumpPatch, wantSource: "default"},
		"nil getenv":                  {want: BumpPatch, wantSource: "default"},
		"invalid argument":            {arg: "huge", getenv: env("major"), wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, source, err := ResolveBumpKind(tc.arg, tc.configured, tc.getenv)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantSource, source)
		})
	}
}

func TestVersion_String(t *testing.T) {
	t.Parallel()

	v, err := ParseVersion("3.14.15")
	require.NoError(t, err)
	assert.Equal(t, Version{Major: 3, Minor: 14, Patch: 15}, v)
	assert.Equal(t, "3.14.15", v.String())
}
