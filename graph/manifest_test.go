package graph

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danibachar/tuist/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
name: App
path: /work/App
options:
  disable_objc_bundle_accessor: true
targets:
  - name: Core
    product: static_library
    bundle_id: io.tuist.core
    destinations: [iPhone, iPad]
    deployment_targets:
      iOS: "16.0"
    settings:
      base:
        SWIFT_VERSION: "5.9"
        OTHER_LDFLAGS: [-ObjC, -lz]
      configurations:
        - name: Debug
          variant: debug
          xcconfig: Configs/Debug.xcconfig
    sources:
      - Sources/Core.swift
      - path: Sources/Legacy.m
        compiler_flags: -fno-objc-arc
    resources:
      - Resources/Assets.xcassets
      - path: Resources/Fonts
        folder_reference: true
    dependencies:
      - sdk: UIKit.framework
        platforms: [ios]
  - name: App
    product: app
    bundle_id: io.tuist.app
    destinations: [iPhone]
    info_plist:
      extend: true
      values:
        UILaunchScreen: ""
    dependencies:
      - target: Core
`

func TestDecodeManifest(t *testing.T) {
	project, err := DecodeManifest(strings.NewReader(sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "App", project.Name)
	assert.Equal(t, "/work/App", project.Path)
	assert.True(t, project.Options.DisableObjcBundleAccessor)
	require.Len(t, project.Targets, 2)

	core := project.Targets[0]
	assert.Equal(t, ProductStaticLibrary, core.Product)
	assert.Equal(t, "Core", core.ProductName)
	assert.Equal(t, Destinations{DestinationIPhone, DestinationIPad}, core.Destinations)
	assert.Equal(t, "16.0", core.DeploymentTargets[PlatformIOS])

	require.Len(t, core.Sources, 2)
	assert.Equal(t, "/work/App/Sources/Core.swift", core.Sources[0].Path)
	assert.Equal(t, "-fno-objc-arc", core.Sources[1].CompilerFlags)

	require.Len(t, core.Resources, 2)
	assert.Equal(t, "/work/App/Resources/Assets.xcassets", core.Resources[0].Path)
	assert.True(t, core.Resources[1].FolderReference)

	require.NotNil(t, core.Settings)
	assert.Equal(t, "5.9", core.Settings.Base["SWIFT_VERSION"].String())
	assert.Equal(t, []string{"-ObjC", "-lz"}, core.Settings.Base["OTHER_LDFLAGS"].Strings())
	debug := core.Settings.Configurations[BuildConfiguration{Name: "Debug", Variant: VariantDebug}]
	require.NotNil(t, debug)
	assert.Equal(t, "/work/App/Configs/Debug.xcconfig", debug.XCConfig)

	require.Len(t, core.Dependencies, 1)
	assert.Equal(t, DependencySDK, core.Dependencies[0].Kind)
	require.NotNil(t, core.Dependencies[0].Condition)
	assert.Equal(t, []PlatformFilter{PlatformFilterIOS}, core.Dependencies[0].Condition.PlatformFilters)

	app := project.Targets[1]
	require.NotNil(t, app.InfoPlist)
	assert.Equal(t, InfoPlistExtendingDefault, app.InfoPlist.Kind)
	assert.Equal(t, TargetDependencyOn("Core", nil), app.Dependencies[0])
}

func TestDecodeManifestInvalid(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		contains string
	}{
		{"empty", "", "manifest is empty"},
		{"no name", "targets: []", "project has no name"},
		{"target without product", "name: App\ntargets:\n  - name: Core\n", "has no product"},
		{"unknown product", "name: App\ntargets:\n  - name: Core\n    product: widget\n", "unknown product widget"},
		{"unknown destination", "name: App\ntargets:\n  - name: Core\n    product: app\n    destinations: [fridge]\n", "unknown destination fridge"},
		{"two dependency kinds", "name: App\ntargets:\n  - name: Core\n    product: app\n    dependencies:\n      - {target: A, sdk: B}\n", "exactly one"},
		{"unknown field", "name: App\ncolour: blue\n", "colour"},
		{"bad setting", "name: App\ntargets:\n  - name: Core\n    product: app\n    settings:\n      base:\n        A: {b: c}\n", "setting must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeManifest(strings.NewReader(tt.manifest))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidManifest), "want ErrInvalidManifest, got %v", err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestInvalidManifestCarriesHint(t *testing.T) {
	_, err := DecodeManifest(strings.NewReader("targets: []"))
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "name:")
}

func TestLoadManifestRootsAtItsDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte("name: App\ntargets:\n  - name: Core\n    product: framework\n    sources: [Sources/A.swift]\n"), 0o644))

	project, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, dir, project.Path)
	assert.Equal(t, filepath.Join(dir, "Sources", "A.swift"), project.Targets[0].Sources[0].Path)
}

func TestLoadManifestMissing(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
