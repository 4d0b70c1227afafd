package graph

import (
	"io"
	"os"
	"path/filepath"

	"github.com/danibachar/tuist/errors"
	"gopkg.in/yaml.v3"
)

// ManifestFileName is the default manifest looked up by the CLI.
const ManifestFileName = "project.yaml"

// Manifest is the YAML form of a project.
//
//	name: App
//	targets:
//	  - name: Core
//	    product: static_library
//	    bundle_id: io.tuist.core
//	    destinations: [iPhone, iPad]
//	    sources: [Sources/Core.swift]
//	    resources: [Resources/Assets.xcassets]
type Manifest struct {
	Name    string           `yaml:"name"`
	Path    string           `yaml:"path,omitempty"` // defaults to the manifest's directory
	Options manifestOptions  `yaml:"options,omitempty"`
	Targets []manifestTarget `yaml:"targets"`
}

type manifestOptions struct {
	DisableBundleAccessors              bool   `yaml:"disable_bundle_accessors,omitempty"`
	DisableObjcBundleAccessor           bool   `yaml:"disable_objc_bundle_accessor,omitempty"`
	DisableSynthesizedResourceAccessors bool   `yaml:"disable_synthesized_resource_accessors,omitempty"`
	DevelopmentRegion                   string `yaml:"development_region,omitempty"`
}

type manifestTarget struct {
	Name              string               `yaml:"name"`
	Product           string               `yaml:"product"`
	ProductName       string               `yaml:"product_name,omitempty"`
	BundleID          string               `yaml:"bundle_id"`
	Destinations      []string             `yaml:"destinations,omitempty"`
	DeploymentTargets map[string]string    `yaml:"deployment_targets,omitempty"`
	InfoPlist         *manifestInfoPlist   `yaml:"info_plist,omitempty"`
	Settings          *manifestSettings    `yaml:"settings,omitempty"`
	Sources           []manifestFile       `yaml:"sources,omitempty"`
	Resources         []manifestFile       `yaml:"resources,omitempty"`
	CopyFiles         []manifestCopyFiles  `yaml:"copy_files,omitempty"`
	CoreDataModels    []manifestCoreData   `yaml:"core_data_models,omitempty"`
	Dependencies      []manifestDependency `yaml:"dependencies,omitempty"`
	FilesGroup        string               `yaml:"files_group,omitempty"`
}

type manifestInfoPlist struct {
	Path   string            `yaml:"path,omitempty"`
	Values map[string]string `yaml:"values,omitempty"`
	Extend bool              `yaml:"extend,omitempty"` // merge Values into the default plist
}

type manifestSettings struct {
	Base           map[string]manifestSetting `yaml:"base,omitempty"`
	Configurations []manifestConfiguration    `yaml:"configurations,omitempty"`
}

type manifestConfiguration struct {
	Name     string                     `yaml:"name"`
	Variant  string                     `yaml:"variant"`
	Settings map[string]manifestSetting `yaml:"settings,omitempty"`
	XCConfig string                     `yaml:"xcconfig,omitempty"`
}

// manifestSetting accepts either a scalar or a sequence of scalars.
type manifestSetting struct {
	value SettingValue
}

func (s *manifestSetting) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		s.value = StringSetting(node.Value)
		return nil
	case yaml.SequenceNode:
		var values []string
		if err := node.Decode(&values); err != nil {
			return err
		}
		s.value = ArraySetting(values...)
		return nil
	}
	return errors.Newf("line %d: setting must be a string or a list of strings", node.Line)
}

// manifestFile accepts a bare path or a mapping with extra attributes.
type manifestFile struct {
	Path            string   `yaml:"path"`
	CompilerFlags   string   `yaml:"compiler_flags,omitempty"`
	FolderReference bool     `yaml:"folder_reference,omitempty"`
	Tags            []string `yaml:"tags,omitempty"`
}

func (f *manifestFile) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}
	type plain manifestFile
	return node.Decode((*plain)(f))
}

type manifestCopyFiles struct {
	Name        string   `yaml:"name"`
	Destination string   `yaml:"destination"`
	Subpath     string   `yaml:"subpath,omitempty"`
	Files       []string `yaml:"files"`
}

type manifestCoreData struct {
	Path           string   `yaml:"path"`
	Versions       []string `yaml:"versions,omitempty"`
	CurrentVersion string   `yaml:"current_version,omitempty"`
}

// manifestDependency sets exactly one of its kind keys.
type manifestDependency struct {
	Target    string   `yaml:"target,omitempty"`
	Project   string   `yaml:"project,omitempty"`
	Path      string   `yaml:"path,omitempty"`
	Framework string   `yaml:"framework,omitempty"`
	Library   string   `yaml:"library,omitempty"`
	Package   string   `yaml:"package,omitempty"`
	SDK       string   `yaml:"sdk,omitempty"`
	Platforms []string `yaml:"platforms,omitempty"`
}

// LoadManifest reads and decodes the manifest at path. A manifest without an
// explicit path is rooted at its own directory.
func LoadManifest(path string) (Project, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Project{}, errors.WithHint(
				errors.Mark(errors.Wrapf(err, "manifest %s", path), errors.ErrNotFound),
				"pass the manifest with --manifest or run from the project directory",
			)
		}
		return Project{}, errors.Wrapf(err, "failed to open manifest %s", path)
	}
	defer f.Close()

	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return Project{}, errors.Wrapf(err, "failed to resolve manifest directory of %s", path)
	}
	project, err := decodeManifest(f, abs)
	if err != nil {
		return Project{}, errors.Wrapf(err, "manifest %s", path)
	}
	return project, nil
}

// DecodeManifest decodes a manifest from r. Relative paths in the manifest
// are resolved against the manifest's path field, or the working directory
// when it has none.
func DecodeManifest(r io.Reader) (Project, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Project{}, errors.Wrap(err, "failed to get working directory")
	}
	return decodeManifest(r, wd)
}

func decodeManifest(r io.Reader, baseDir string) (Project, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return Project{}, invalidManifest("manifest is empty", "a manifest needs at least a name and one target")
		}
		return Project{}, errors.Mark(errors.Wrap(err, "failed to parse manifest YAML"), errors.ErrInvalidManifest)
	}
	return m.Project(baseDir)
}

// Project converts m into a Project rooted at baseDir unless m names its
// own path.
func (m Manifest) Project(baseDir string) (Project, error) {
	if m.Name == "" {
		return Project{}, invalidManifest("project has no name", "add a top-level `name:` key")
	}

	root := baseDir
	if m.Path != "" {
		root = resolve(baseDir, m.Path)
	}

	project := Project{
		Name: m.Name,
		Path: root,
		Options: ProjectOptions{
			DisableBundleAccessors:              m.Options.DisableBundleAccessors,
			DisableObjcBundleAccessor:           m.Options.DisableObjcBundleAccessor,
			DisableSynthesizedResourceAccessors: m.Options.DisableSynthesizedResourceAccessors,
			DevelopmentRegion:                   m.Options.DevelopmentRegion,
		},
		Targets: make([]Target, 0, len(m.Targets)),
	}

	for i, mt := range m.Targets {
		t, err := mt.target(root)
		if err != nil {
			return Project{}, errors.Wrapf(err, "targets[%d]", i)
		}
		project.Targets = append(project.Targets, t)
	}
	return project, nil
}

func (mt manifestTarget) target(root string) (Target, error) {
	if mt.Name == "" {
		return Target{}, invalidManifest("target has no name", "every target needs a `name:` key")
	}
	product := Product(mt.Product)
	if mt.Product == "" {
		return Target{}, invalidManifest(
			"target "+mt.Name+" has no product",
			"set `product:` to one of app, framework, static_library, bundle, ...",
		)
	}
	if !product.Valid() {
		return Target{}, invalidManifest(
			"target "+mt.Name+" has unknown product "+mt.Product,
			"see graph.Products() for the accepted product names",
		)
	}

	t := Target{
		Name:        mt.Name,
		Product:     product,
		ProductName: mt.ProductName,
		BundleID:    mt.BundleID,
	}
	if t.ProductName == "" {
		t.ProductName = mt.Name
	}

	for _, d := range mt.Destinations {
		dest := Destination(d)
		if !dest.Valid() {
			return Target{}, invalidManifest("target "+mt.Name+" has unknown destination "+d, "")
		}
		t.Destinations = append(t.Destinations, dest)
	}
	if len(mt.DeploymentTargets) > 0 {
		t.DeploymentTargets = make(DeploymentTargets, len(mt.DeploymentTargets))
		for platform, version := range mt.DeploymentTargets {
			t.DeploymentTargets[Platform(platform)] = version
		}
	}

	if p := mt.InfoPlist; p != nil {
		switch {
		case p.Path != "":
			t.InfoPlist = &InfoPlist{Kind: InfoPlistFile, Path: resolve(root, p.Path)}
		case p.Extend:
			t.InfoPlist = ExtendingDefault(p.Values)
		default:
			t.InfoPlist = &InfoPlist{Kind: InfoPlistDictionary, Values: p.Values}
		}
	}

	if s := mt.Settings; s != nil {
		t.Settings = &Settings{Base: settingsDictionary(s.Base)}
		for _, c := range s.Configurations {
			if t.Settings.Configurations == nil {
				t.Settings.Configurations = make(map[BuildConfiguration]*Configuration, len(s.Configurations))
			}
			key := BuildConfiguration{Name: c.Name, Variant: Variant(c.Variant)}
			conf := &Configuration{Settings: settingsDictionary(c.Settings)}
			if c.XCConfig != "" {
				conf.XCConfig = resolve(root, c.XCConfig)
			}
			t.Settings.Configurations[key] = conf
		}
	}

	for _, f := range mt.Sources {
		t.Sources = append(t.Sources, SourceFile{Path: resolve(root, f.Path), CompilerFlags: f.CompilerFlags})
	}
	for _, f := range mt.Resources {
		t.Resources = append(t.Resources, ResourceFileElement{
			Path:            resolve(root, f.Path),
			FolderReference: f.FolderReference,
			Tags:            f.Tags,
		})
	}
	for _, c := range mt.CopyFiles {
		action := CopyFilesAction{Name: c.Name, Destination: c.Destination, Subpath: c.Subpath}
		for _, f := range c.Files {
			action.Files = append(action.Files, resolve(root, f))
		}
		t.CopyFiles = append(t.CopyFiles, action)
	}
	for _, c := range mt.CoreDataModels {
		t.CoreDataModels = append(t.CoreDataModels, CoreDataModel{
			Path:           resolve(root, c.Path),
			Versions:       c.Versions,
			CurrentVersion: c.CurrentVersion,
		})
	}
	if mt.FilesGroup != "" {
		t.FilesGroup = &ProjectGroup{Name: mt.FilesGroup}
	}

	for _, d := range mt.Dependencies {
		dep, err := d.dependency(root)
		if err != nil {
			return Target{}, errors.Wrapf(err, "target %s", mt.Name)
		}
		t.Dependencies = append(t.Dependencies, dep)
	}
	return t, nil
}

func (d manifestDependency) dependency(root string) (TargetDependency, error) {
	var dep TargetDependency
	set := 0
	pick := func(kind DependencyKind, name string) {
		if name == "" {
			return
		}
		set++
		dep.Kind = kind
		dep.Name = name
	}
	pick(DependencyTarget, d.Target)
	pick(DependencyProject, d.Project)
	pick(DependencyFramework, d.Framework)
	pick(DependencyLibrary, d.Library)
	pick(DependencyPackage, d.Package)
	pick(DependencySDK, d.SDK)
	if set != 1 {
		return TargetDependency{}, invalidManifest(
			"dependency must set exactly one of target, project, framework, library, package, sdk",
			"",
		)
	}

	switch dep.Kind {
	case DependencyProject:
		dep.Path = resolve(root, d.Path)
	case DependencyFramework, DependencyLibrary:
		dep.Path = resolve(root, dep.Name)
	}

	filters := make([]PlatformFilter, 0, len(d.Platforms))
	for _, p := range d.Platforms {
		filters = append(filters, PlatformFilter(p))
	}
	dep.Condition = PlatformConditionWhen(filters)
	return dep, nil
}

func settingsDictionary(in map[string]manifestSetting) SettingsDictionary {
	out := make(SettingsDictionary, len(in))
	for k, v := range in {
		out[k] = v.value
	}
	return out
}

func resolve(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

func invalidManifest(msg, hint string) error {
	err := errors.Mark(errors.New(msg), errors.ErrInvalidManifest)
	if hint != "" {
		err = errors.WithHint(err, hint)
	}
	return err
}
