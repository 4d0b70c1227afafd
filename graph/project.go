// Package graph holds the project/target model the generator reads and
// rewrites.
//
// Everything here is a value snapshot handed over by an upstream graph
// builder (or decoded from a manifest, see manifest.go). Mappers clone and
// replace; they never share mutable state between targets.
package graph

import "path/filepath"

// Derived directory layout under a project's path.
const (
	DerivedDirectoryName        = "Derived"
	DerivedSourcesDirectoryName = "Sources"
)

// TextSettings are editor text options of the generated project.
type TextSettings struct {
	UsesTabs    *bool
	IndentWidth *uint
	TabWidth    *uint
	WrapsLines  *bool
}

// ProjectOptions are the read-only project options. The zero value enables
// bundle accessors, including the Objective-C accessor.
type ProjectOptions struct {
	DisableBundleAccessors              bool // turns the resources mapper into a no-op
	DisableObjcBundleAccessor           bool // keeps the Swift accessor but skips the Objective-C one
	DisableSynthesizedResourceAccessors bool
	DevelopmentRegion                   string
	TextSettings                        TextSettings
}

// Project is a named set of targets rooted at Path.
type Project struct {
	Name    string
	Path    string // absolute directory containing the project
	Options ProjectOptions
	Targets []Target
}

// WithTargets returns a copy of p with its target list replaced.
func (p Project) WithTargets(targets []Target) Project {
	p.Targets = targets
	return p
}

// Target returns the target named name.
func (p Project) Target(name string) (Target, bool) {
	for _, t := range p.Targets {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

// TargetNames returns the set of target names in p.
func (p Project) TargetNames() map[string]bool {
	names := make(map[string]bool, len(p.Targets))
	for _, t := range p.Targets {
		names[t.Name] = true
	}
	return names
}

// DerivedDirectoryPath returns the directory holding files generated for
// the project. An empty name means DerivedDirectoryName.
func (p Project) DerivedDirectoryPath(name string) string {
	if name == "" {
		name = DerivedDirectoryName
	}
	return filepath.Join(p.Path, name)
}

// DerivedSourcesPath returns the directory holding generated sources.
func (p Project) DerivedSourcesPath(name string) string {
	return filepath.Join(p.DerivedDirectoryPath(name), DerivedSourcesDirectoryName)
}
