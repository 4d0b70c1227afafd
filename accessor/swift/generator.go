// Package swift generates the Swift `Bundle.module` accessor.
package swift

import (
	"bytes"
	"text/template"

	"github.com/danibachar/tuist/accessor"
	"github.com/danibachar/tuist/errors"
)

const header = `// swiftlint:disable all
// swift-format-ignore-file
// swiftformat:disable all
import Foundation

// MARK: - Swift Bundle Accessor

private class BundleFinder {}

extension Foundation.Bundle {
`

const footer = `}
// swiftlint:enable all
// swiftformat:enable all
`

// Resources are copied next to the product in a separate bundle, which
// is searched for in every place it can end up.
var bundleSearchTemplate = template.Must(template.New("search").Parse(header + `/// Since {{.TargetName}} is a {{.Product}}, the bundle containing the resources is copied into the final product.
static let module: Bundle = {
    let bundleName = "{{.BundleName}}"

    var candidates = [
        Bundle.main.resourceURL,
        Bundle(for: BundleFinder.self).resourceURL,
        Bundle.main.bundleURL,
    ]

    // This is a fix to make Previews work with bundled resources.
    // Logic here is taken from SPM's generated ` + "`resource_bundle_accessors.swift`" + ` file,
    // which is located under the derived data directory after building the project.
    if let override = ProcessInfo.processInfo.environment["PACKAGE_RESOURCE_BUNDLE_PATH"] {
        candidates.append(URL(fileURLWithPath: override))

        // Deleting derived data and not rebuilding the frameworks containing resources may result in a state
        // where the bundles are only available in the framework's directory that is actively being previewed.
        // Since we don't know which framework this is, we also need to look in all the framework subpaths.
        if let subpaths = try? FileManager.default.contentsOfDirectory(atPath: override) {
            for subpath in subpaths {
                if subpath.hasSuffix(".framework") {
                    candidates.append(URL(fileURLWithPath: override + "/" + subpath))
                }
            }
        }
    }

    for candidate in candidates {
        let bundlePath = candidate?.appendingPathComponent(bundleName + ".bundle")
        if let bundle = bundlePath.flatMap(Bundle.init(url:)) {
            return bundle
        }
    }
    fatalError("unable to find bundle named {{.BundleName}}")
}()
` + footer))

// The target's own bundle holds its resources.
var ownBundleTemplate = template.Must(template.New("own").Parse(header + `/// Since {{.TargetName}} is a {{.Product}}, the bundle for classes within this module can be used directly.
static let module = Bundle(for: BundleFinder.self)
` + footer))

// Generator implements accessor.Generator for Swift.
type Generator struct{}

// NewGenerator creates a new Swift generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "swift"
func (g *Generator) Language() string {
	return "swift"
}

// FileExtension returns "swift"
func (g *Generator) FileExtension() string {
	return "swift"
}

// Generate returns the single Swift accessor file for req.
func (g *Generator) Generate(req accessor.Request) ([]accessor.File, error) {
	contents, err := Source(req)
	if err != nil {
		return nil, err
	}
	return []accessor.File{{Name: accessor.SwiftFileName(req.TargetName), Contents: contents}}, nil
}

// Source renders the accessor. Which variant is rendered depends only on
// req.SupportsResources.
func Source(req accessor.Request) ([]byte, error) {
	tmpl := bundleSearchTemplate
	if req.SupportsResources {
		tmpl = ownBundleTemplate
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, req); err != nil {
		return nil, errors.Wrapf(err, "failed to render Swift accessor for %s", req.TargetName)
	}
	return buf.Bytes(), nil
}
