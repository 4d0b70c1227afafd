package graph

import (
	"maps"
	"slices"
	"strings"
)

// Well-known build setting keys written by the generator.
const (
	SettingCodeSigningAllowed = "CODE_SIGNING_ALLOWED"
	SettingGCCPrefixHeader    = "GCC_PREFIX_HEADER"
)

// SettingValue is a build setting value: either a string or an array of strings.
type SettingValue struct {
	str     string
	arr     []string
	isArray bool
}

// StringSetting returns a scalar setting value.
func StringSetting(s string) SettingValue {
	return SettingValue{str: s}
}

// ArraySetting returns a list setting value.
func ArraySetting(values ...string) SettingValue {
	return SettingValue{arr: slices.Clone(values), isArray: true}
}

// IsArray reports whether v holds a list.
func (v SettingValue) IsArray() bool { return v.isArray }

// Strings returns the list form of v. A scalar becomes a one-element list.
func (v SettingValue) Strings() []string {
	if v.isArray {
		return slices.Clone(v.arr)
	}
	return []string{v.str}
}

// String returns the scalar form of v; lists are space-joined the way
// build settings flatten them.
func (v SettingValue) String() string {
	if v.isArray {
		return strings.Join(v.arr, " ")
	}
	return v.str
}

// Equal reports whether two values hold the same data.
func (v SettingValue) Equal(other SettingValue) bool {
	if v.isArray != other.isArray {
		return false
	}
	if v.isArray {
		return slices.Equal(v.arr, other.arr)
	}
	return v.str == other.str
}

// SettingsDictionary maps build setting keys to values.
type SettingsDictionary map[string]SettingValue

// Clone returns a copy of d. A nil dictionary clones to an empty one.
func (d SettingsDictionary) Clone() SettingsDictionary {
	out := make(SettingsDictionary, len(d))
	for k, v := range d {
		if v.isArray {
			v.arr = slices.Clone(v.arr)
		}
		out[k] = v
	}
	return out
}

// Variant is the debug/release flavour of a build configuration.
type Variant string

const (
	VariantDebug   Variant = "debug"
	VariantRelease Variant = "release"
)

// BuildConfiguration names a configuration such as Debug or Release.
type BuildConfiguration struct {
	Name    string
	Variant Variant
}

// Configuration holds per-configuration overrides.
type Configuration struct {
	Settings SettingsDictionary
	XCConfig string // optional path to an .xcconfig file
}

// Settings are a target's build settings: a base map plus per-configuration
// overrides.
type Settings struct {
	Base           SettingsDictionary
	Configurations map[BuildConfiguration]*Configuration
}

// WithBase returns a copy of s whose base settings are replaced by base.
// Configurations are shared with s; callers must not mutate them.
func (s *Settings) WithBase(base SettingsDictionary) *Settings {
	out := &Settings{Base: base}
	if s != nil {
		out.Configurations = s.Configurations
	}
	return out
}

// Clone returns a deep copy of s.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	out := &Settings{Base: s.Base.Clone()}
	if s.Configurations != nil {
		out.Configurations = make(map[BuildConfiguration]*Configuration, len(s.Configurations))
		for k, c := range s.Configurations {
			if c == nil {
				out.Configurations[k] = nil
				continue
			}
			out.Configurations[k] = &Configuration{Settings: c.Settings.Clone(), XCConfig: c.XCConfig}
		}
	}
	return out
}

// Keys returns the sorted base keys of s.
func (s *Settings) Keys() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.Base))
}
