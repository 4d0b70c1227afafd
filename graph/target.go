package graph

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"
)

// PrivacyManifestExtension is the extension of privacy manifests. They are
// resources, but never read through a bundle accessor.
const PrivacyManifestExtension = "xcprivacy"

// SourceFile is a file compiled into a target.
type SourceFile struct {
	Path          string
	CompilerFlags string
	// ContentHash is set only for generated files; callers use it for
	// caching and diffing.
	ContentHash string
}

// Extension returns the lower-cased extension of the file without the dot.
func (f SourceFile) Extension() string {
	return extension(f.Path)
}

// ResourceFileElement is a resource copied into a target's bundle.
type ResourceFileElement struct {
	Path               string
	FolderReference    bool // copied as a folder reference rather than a glob
	Tags               []string
	InclusionCondition *PlatformCondition
}

// Extension returns the lower-cased extension of the resource without the dot.
func (r ResourceFileElement) Extension() string {
	return extension(r.Path)
}

// CopyFilesAction is a copy-files build phase.
type CopyFilesAction struct {
	Name        string
	Destination string // e.g. "resources", "frameworks", "sharedSupport"
	Subpath     string
	Files       []string
}

// CoreDataModel is a versioned .xcdatamodeld bundle.
type CoreDataModel struct {
	Path           string
	Versions       []string
	CurrentVersion string
}

// ProjectGroup is the group generated files are placed in.
type ProjectGroup struct {
	Name string
}

// InfoPlistKind discriminates InfoPlist.
type InfoPlistKind string

const (
	InfoPlistFile             InfoPlistKind = "file"
	InfoPlistDictionary       InfoPlistKind = "dictionary"
	InfoPlistExtendingDefault InfoPlistKind = "extendingDefault"
)

// InfoPlist describes how a target's Info.plist is produced.
type InfoPlist struct {
	Kind   InfoPlistKind
	Path   string            // InfoPlistFile only
	Values map[string]string // InfoPlistDictionary and InfoPlistExtendingDefault
}

// ExtendingDefault returns an Info.plist that adds values to the default one.
func ExtendingDefault(values map[string]string) *InfoPlist {
	if values == nil {
		values = map[string]string{}
	}
	return &InfoPlist{Kind: InfoPlistExtendingDefault, Values: values}
}

// Target is a single buildable unit within a project. Targets are values:
// transformations return new targets and never mutate their input.
type Target struct {
	Name              string
	Product           Product
	ProductName       string
	BundleID          string
	Destinations      Destinations
	DeploymentTargets DeploymentTargets
	InfoPlist         *InfoPlist
	Settings          *Settings
	Sources           []SourceFile
	Resources         []ResourceFileElement
	CopyFiles         []CopyFilesAction
	CoreDataModels    []CoreDataModel
	FilesGroup        *ProjectGroup
	Dependencies      []TargetDependency
}

// SupportsResources reports whether the product can embed resources itself.
func (t Target) SupportsResources() bool {
	return t.Product.Capabilities().Resources
}

// SupportsSources reports whether the target can compile sources.
func (t Target) SupportsSources() bool {
	caps := t.Product.Capabilities()
	if !caps.Sources {
		return false
	}
	if caps.SourcesMacOnly {
		return t.Destinations.ExclusiveTo(PlatformMacOS)
	}
	return true
}

// DependencyPlatformFilters returns the platform filters dependency edges
// originating from t should carry.
func (t Target) DependencyPlatformFilters() []PlatformFilter {
	return t.Destinations.PlatformFilters()
}

// HasSourcesWithExtension reports whether any source has one of exts.
func (t Target) HasSourcesWithExtension(exts ...string) bool {
	return slices.ContainsFunc(t.Sources, func(f SourceFile) bool {
		return slices.Contains(exts, f.Extension())
	})
}

// Clone returns a copy of t whose slices, maps and settings can be
// modified without affecting t. Elements inside those slices are copied
// by value.
func (t Target) Clone() Target {
	out := t
	out.Destinations = slices.Clone(t.Destinations)
	out.DeploymentTargets = maps.Clone(t.DeploymentTargets)
	out.Settings = t.Settings.Clone()
	out.Sources = slices.Clone(t.Sources)
	out.Resources = slices.Clone(t.Resources)
	out.CopyFiles = slices.Clone(t.CopyFiles)
	out.CoreDataModels = slices.Clone(t.CoreDataModels)
	out.Dependencies = slices.Clone(t.Dependencies)
	if t.InfoPlist != nil {
		plist := *t.InfoPlist
		plist.Values = maps.Clone(t.InfoPlist.Values)
		out.InfoPlist = &plist
	}
	if t.FilesGroup != nil {
		group := *t.FilesGroup
		out.FilesGroup = &group
	}
	return out
}

func extension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
