// Package accessor synthesizes source files that locate a target's resource
// bundle at runtime.
//
// # Architecture
//
// Each source language lives in its own subpackage (swift, objc) and
// implements Generator. Generators are pure: output depends only on the
// Request, so the same request always yields byte-identical files. Callers
// decide where the files go (see FileName) and hash and write them.
//
// # Adding a language
//
//  1. Create package accessor/<language> with a Generator type
//  2. Implement Generator, returning files in the order they are written
//  3. Mark files consumed through build settings rather than compilation
//     (such as prefix headers) with File.Header
//  4. Wire the generator into the resources mapper
package accessor

import (
	"github.com/danibachar/tuist/graph"
	"github.com/danibachar/tuist/internal/util"
)

// FilePrefix starts the name of every generated accessor file.
const FilePrefix = "TuistBundle+"

// Request is everything a generator may read.
type Request struct {
	TargetName  string
	ProjectName string
	// BundleName is the sanitized resource bundle name, see BundleName.
	BundleName string
	Product    graph.Product
	// SupportsResources is true when the target embeds its own resources
	// and the accessor can point at the target's own bundle.
	SupportsResources bool
	// HeaderFileName is the generated header the implementation imports.
	HeaderFileName string
}

// NewRequest builds the request for target inside project.
func NewRequest(project graph.Project, target graph.Target) Request {
	return Request{
		TargetName:        target.Name,
		ProjectName:       project.Name,
		BundleName:        BundleName(project.Name, target.Name),
		Product:           target.Product,
		SupportsResources: target.SupportsResources(),
	}
}

// File is one generated file, named relative to the derived sources
// directory.
type File struct {
	Name     string
	Contents []byte
	// Header files are not compiled directly.
	Header bool
}

// Generator synthesizes accessor files for one language.
type Generator interface {
	// Language returns the language name (e.g., "swift", "objc")
	Language() string

	// FileExtension returns the extension of the compiled file (e.g., "swift", "m")
	FileExtension() string

	// Generate returns the files for req in write order
	Generate(req Request) ([]File, error)
}

// BundleTargetName is the name of the synthetic resource bundle target:
// "{project}_{target}", unsanitized.
func BundleTargetName(projectName, targetName string) string {
	return projectName + "_" + targetName
}

// BundleName is BundleTargetName with hyphens replaced by underscores, the
// form embedded in generated source.
func BundleName(projectName, targetName string) string {
	return util.UnderscoreHyphens(BundleTargetName(projectName, targetName))
}

// SwiftFileName is the generated Swift accessor's file name.
func SwiftFileName(targetName string) string {
	return FilePrefix + util.ToValidSwiftIdentifier(targetName) + ".swift"
}

// ObjcFileName is the generated Objective-C file name for ext ("h" or "m").
func ObjcFileName(targetName, ext string) string {
	return FilePrefix + util.ToPascalCase(targetName) + "." + ext
}
