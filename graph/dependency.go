package graph

import "slices"

// DependencyKind discriminates what a TargetDependency points at.
type DependencyKind string

const (
	DependencyTarget      DependencyKind = "target"
	DependencyProject     DependencyKind = "project"
	DependencyFramework   DependencyKind = "framework"
	DependencyLibrary     DependencyKind = "library"
	DependencyXCFramework DependencyKind = "xcframework"
	DependencyPackage     DependencyKind = "package"
	DependencySDK         DependencyKind = "sdk"
)

// PlatformCondition limits a dependency to a set of platforms.
// A nil condition means the dependency applies everywhere.
type PlatformCondition struct {
	PlatformFilters []PlatformFilter
}

// PlatformConditionWhen returns a condition for filters, or nil when
// filters is empty.
func PlatformConditionWhen(filters []PlatformFilter) *PlatformCondition {
	if len(filters) == 0 {
		return nil
	}
	return &PlatformCondition{PlatformFilters: slices.Clone(filters)}
}

// TargetDependency is an edge from a target to something it links against.
type TargetDependency struct {
	Kind      DependencyKind
	Name      string // target, package product or sdk name
	Path      string // project path for DependencyProject, binary path for prebuilt kinds
	Condition *PlatformCondition
}

// TargetDependencyOn returns a dependency on the target named name in the
// same project.
func TargetDependencyOn(name string, condition *PlatformCondition) TargetDependency {
	return TargetDependency{Kind: DependencyTarget, Name: name, Condition: condition}
}
