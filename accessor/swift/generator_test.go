package swift

import (
	"testing"

	"github.com/danibachar/tuist/accessor"
	"github.com/danibachar/tuist/accessor/objc"
	"github.com/danibachar/tuist/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ accessor.Generator = (*Generator)(nil)
	_ accessor.Generator = (*objc.Generator)(nil)
)

func TestGeneratorMetadata(t *testing.T) {
	gen := NewGenerator()
	assert.Equal(t, "swift", gen.Language())
	assert.Equal(t, "swift", gen.FileExtension())
}

func TestBundleSearchAccessor(t *testing.T) {
	src, err := Source(accessor.Request{
		TargetName: "Core",
		BundleName: "App_Core",
		Product:    graph.ProductStaticLibrary,
	})
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "/// Since Core is a static library, the bundle containing the resources is copied into the final product.\n")
	assert.Contains(t, out, "static let module: Bundle = {\n")
	assert.Contains(t, out, `let bundleName = "App_Core"`)
	assert.Contains(t, out, "Bundle.main.resourceURL,\n        Bundle(for: BundleFinder.self).resourceURL,\n        Bundle.main.bundleURL,\n")
	assert.Contains(t, out, `ProcessInfo.processInfo.environment["PACKAGE_RESOURCE_BUNDLE_PATH"]`)
	assert.Contains(t, out, `subpath.hasSuffix(".framework")`)
	assert.Contains(t, out, `fatalError("unable to find bundle named App_Core")`)
	assert.True(t, len(out) > 0 && out[len(out)-1] == '\n')
}

func TestOwnBundleAccessor(t *testing.T) {
	src, err := Source(accessor.Request{
		TargetName:        "App",
		BundleName:        "App_App",
		Product:           graph.ProductApp,
		SupportsResources: true,
	})
	require.NoError(t, err)

	want := `// swiftlint:disable all
// swift-format-ignore-file
// swiftformat:disable all
import Foundation

// MARK: - Swift Bundle Accessor

private class BundleFinder {}

extension Foundation.Bundle {
/// Since App is a application, the bundle for classes within this module can be used directly.
static let module = Bundle(for: BundleFinder.self)
}
// swiftlint:enable all
// swiftformat:enable all
`
	assert.Equal(t, want, string(src))
}

func TestOutputDependsOnlyOnRequest(t *testing.T) {
	req := accessor.Request{TargetName: "Kit", BundleName: "App_Kit", Product: graph.ProductStaticFramework}
	a, err := Source(req)
	require.NoError(t, err)
	b, err := Source(req)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	req.SupportsResources = true
	c, err := Source(req)
	require.NoError(t, err)
	assert.NotContains(t, string(c), "PACKAGE_RESOURCE_BUNDLE_PATH")
}

func TestGenerateNamesFile(t *testing.T) {
	files, err := NewGenerator().Generate(accessor.Request{TargetName: "my-kit", BundleName: "App_my_kit"})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "TuistBundle+my_kit.swift", files[0].Name)
	assert.False(t, files[0].Header)
}
