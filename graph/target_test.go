package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCapabilities(t *testing.T) {
	tests := []struct {
		product   Product
		resources bool
		sources   bool
	}{
		{ProductApp, true, true},
		{ProductStaticLibrary, false, true},
		{ProductDynamicLibrary, false, true},
		{ProductStaticFramework, false, true},
		{ProductFramework, true, true},
		{ProductUnitTests, true, true},
		{ProductStickerPackExtension, true, false},
		{ProductWatch2App, true, false},
		{ProductMacro, true, true},
		{Product("nonsense"), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.product), func(t *testing.T) {
			caps := tt.product.Capabilities()
			assert.Equal(t, tt.resources, caps.Resources)
			assert.Equal(t, tt.sources, caps.Sources)
		})
	}
}

func TestProductString(t *testing.T) {
	assert.Equal(t, "static library", ProductStaticLibrary.String())
	assert.Equal(t, "dynamic framework", ProductFramework.String())
	assert.Equal(t, "unknown", Product("unknown").String())
}

func TestProductsAreValid(t *testing.T) {
	all := Products()
	assert.Len(t, all, len(products))
	for _, p := range all {
		assert.True(t, p.Valid(), p)
	}
	assert.False(t, Product("").Valid())
}

func TestBundleSupportsSourcesOnlyOnMacOS(t *testing.T) {
	bundle := Target{Product: ProductBundle, Destinations: Destinations{DestinationMac}}
	assert.True(t, bundle.SupportsSources())

	bundle.Destinations = Destinations{DestinationMac, DestinationIPhone}
	assert.False(t, bundle.SupportsSources())

	bundle.Destinations = nil
	assert.False(t, bundle.SupportsSources())
}

func TestPlatformFilters(t *testing.T) {
	ds := Destinations{DestinationIPad, DestinationMac, DestinationIPhone, DestinationMacCatalyst}
	assert.Equal(t, []PlatformFilter{PlatformFilterCatalyst, PlatformFilterIOS, PlatformFilterMacOS}, ds.PlatformFilters())

	assert.Empty(t, Destinations{}.PlatformFilters())
}

func TestPlatformConditionWhen(t *testing.T) {
	assert.Nil(t, PlatformConditionWhen(nil))

	filters := []PlatformFilter{PlatformFilterIOS}
	cond := PlatformConditionWhen(filters)
	require.NotNil(t, cond)
	filters[0] = PlatformFilterMacOS
	assert.Equal(t, []PlatformFilter{PlatformFilterIOS}, cond.PlatformFilters)
}

func TestResourceExtension(t *testing.T) {
	assert.Equal(t, "xcprivacy", ResourceFileElement{Path: "/p/PrivacyInfo.XCPRIVACY"}.Extension())
	assert.Equal(t, "xcassets", ResourceFileElement{Path: "/p/Assets.xcassets"}.Extension())
	assert.Equal(t, "", ResourceFileElement{Path: "/p/README"}.Extension())
}

func TestHasSourcesWithExtension(t *testing.T) {
	target := Target{Sources: []SourceFile{{Path: "/a/Main.swift"}, {Path: "/a/Legacy.MM"}}}
	assert.True(t, target.HasSourcesWithExtension("swift"))
	assert.True(t, target.HasSourcesWithExtension("m", "mm"))
	assert.False(t, target.HasSourcesWithExtension("c"))
}

func TestTargetCloneIsIndependent(t *testing.T) {
	original := Target{
		Name:         "Core",
		Destinations: Destinations{DestinationIPhone},
		Settings:     &Settings{Base: SettingsDictionary{"A": StringSetting("1")}},
		Sources:      []SourceFile{{Path: "/a.swift"}},
		Resources:    []ResourceFileElement{{Path: "/r.png"}},
		InfoPlist:    ExtendingDefault(map[string]string{"K": "V"}),
		FilesGroup:   &ProjectGroup{Name: "Project"},
	}

	clone := original.Clone()
	clone.Settings.Base["B"] = StringSetting("2")
	clone.Sources = append(clone.Sources, SourceFile{Path: "/b.swift"})
	clone.Resources[0].Path = "/changed.png"
	clone.InfoPlist.Values["K"] = "changed"
	clone.FilesGroup.Name = "changed"

	assert.Len(t, original.Settings.Base, 1)
	assert.Len(t, original.Sources, 1)
	assert.Equal(t, "/r.png", original.Resources[0].Path)
	assert.Equal(t, "V", original.InfoPlist.Values["K"])
	assert.Equal(t, "Project", original.FilesGroup.Name)
}

func TestSettingsWithBaseOnNil(t *testing.T) {
	var s *Settings
	out := s.WithBase(SettingsDictionary{SettingCodeSigningAllowed: StringSetting("NO")})
	require.NotNil(t, out)
	assert.Equal(t, []string{SettingCodeSigningAllowed}, out.Keys())
	assert.Nil(t, out.Configurations)
}

func TestSettingValue(t *testing.T) {
	scalar := StringSetting("NO")
	arr := ArraySetting("a", "b")

	assert.False(t, scalar.IsArray())
	assert.True(t, arr.IsArray())
	assert.Equal(t, "a b", arr.String())
	assert.Equal(t, []string{"NO"}, scalar.Strings())
	assert.True(t, arr.Equal(ArraySetting("a", "b")))
	assert.False(t, arr.Equal(StringSetting("a b")))
}

func TestProjectDerivedPaths(t *testing.T) {
	p := Project{Path: "/work/App"}
	assert.Equal(t, "/work/App/Derived", p.DerivedDirectoryPath(""))
	assert.Equal(t, "/work/App/Derived/Sources", p.DerivedSourcesPath(""))
	assert.Equal(t, "/work/App/Gen/Sources", p.DerivedSourcesPath("Gen"))
}
