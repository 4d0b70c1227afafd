package mapper

import (
	"context"
	"maps"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	"github.com/danibachar/tuist/accessor"
	"github.com/danibachar/tuist/accessor/objc"
	"github.com/danibachar/tuist/accessor/swift"
	"github.com/danibachar/tuist/errors"
	"github.com/danibachar/tuist/graph"
	"github.com/danibachar/tuist/hashing"
	"github.com/danibachar/tuist/logger"
	"github.com/danibachar/tuist/sideeffect"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ResourcesProjectMapper adds resource bundles and bundle accessors to the
// targets of a project.
//
// For every target with resources or Core Data models:
//   - a target whose product cannot embed resources gets a sibling bundle
//     target "{project}_{target}" that takes over its resources, plus a
//     dependency on it
//   - a target with Swift sources gets a generated `Bundle.module`
//   - a target with Objective-C sources and bundle-accessed resources gets a
//     generated `SWIFTPM_MODULE_BUNDLE` header (installed as the prefix
//     header) and implementation
//
// Map is a single-shot transformation. Feeding its output back in adds a
// second round of accessors; callers run it once per generation.
type ResourcesProjectMapper struct {
	hasher           hashing.ContentHasher
	swift            accessor.Generator
	objc             accessor.Generator
	parallelism      int
	derivedDirectory string
	logger           *zap.SugaredLogger
}

// Option configures a ResourcesProjectMapper.
type Option func(*ResourcesProjectMapper)

// WithParallelism bounds how many targets are mapped at once. n <= 0 means
// runtime.NumCPU().
func WithParallelism(n int) Option {
	return func(m *ResourcesProjectMapper) { m.parallelism = n }
}

// WithDerivedDirectory sets the directory, relative to the project path,
// generated sources are placed under. Empty means graph.DerivedDirectoryName.
func WithDerivedDirectory(name string) Option {
	return func(m *ResourcesProjectMapper) { m.derivedDirectory = name }
}

// WithLogger replaces the component logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(m *ResourcesProjectMapper) { m.logger = l }
}

// WithGenerators replaces the Swift and Objective-C accessor generators.
func WithGenerators(swiftGen, objcGen accessor.Generator) Option {
	return func(m *ResourcesProjectMapper) {
		m.swift = swiftGen
		m.objc = objcGen
	}
}

// NewResourcesProjectMapper returns a mapper digesting generated files with
// hasher.
func NewResourcesProjectMapper(hasher hashing.ContentHasher, opts ...Option) *ResourcesProjectMapper {
	m := &ResourcesProjectMapper{
		hasher: hasher,
		swift:  swift.NewGenerator(),
		objc:   objc.NewGenerator(),
		logger: logger.ComponentLogger("mapper.resources"),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.parallelism <= 0 {
		m.parallelism = runtime.NumCPU()
	}
	return m
}

type targetResult struct {
	targets []graph.Target
	effects []sideeffect.Descriptor
}

// Map implements ProjectMapper. Targets are mapped concurrently; the
// result lists every replacement target followed by its bundle target, in
// the original target order, and side effects in the same order. On error
// no project is returned.
func (m *ResourcesProjectMapper) Map(ctx context.Context, project graph.Project) (graph.Project, []sideeffect.Descriptor, error) {
	if project.Options.DisableBundleAccessors {
		return project, nil, nil
	}

	log := logger.LoggerFromContext(ctx, m.logger).With(logger.FieldProject, project.Name)
	log.Debugf("Transforming project %s: Generating bundles for libraries", project.Name)
	start := time.Now()

	if err := checkBundleNames(project); err != nil {
		return graph.Project{}, nil, err
	}

	results := make([]targetResult, len(project.Targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.parallelism)
	for i, target := range project.Targets {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			targets, effects, err := m.MapTarget(target, project)
			if err != nil {
				return err
			}
			results[i] = targetResult{targets: targets, effects: effects}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return graph.Project{}, nil, err
	}
	if err := ctx.Err(); err != nil {
		return graph.Project{}, nil, err
	}

	var (
		targets = make([]graph.Target, 0, len(project.Targets))
		effects []sideeffect.Descriptor
	)
	for _, r := range results {
		targets = append(targets, r.targets...)
		effects = append(effects, r.effects...)
	}

	log.Debugw("Mapped project resources",
		logger.FieldCount, len(targets)-len(project.Targets),
		"side_effects", len(effects),
		logger.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return project.WithTargets(targets), effects, nil
}

// MapTarget maps a single target. It returns the replacement target first,
// followed by the bundle target when one was synthesized. A target without
// resources or Core Data models is returned as is.
func (m *ResourcesProjectMapper) MapTarget(target graph.Target, project graph.Project) ([]graph.Target, []sideeffect.Descriptor, error) {
	if len(target.Resources) == 0 && len(target.CoreDataModels) == 0 {
		return []graph.Target{target}, nil, nil
	}

	log := m.logger.With(logger.FieldProject, project.Name, logger.FieldTarget, target.Name)
	bundleTargetName := accessor.BundleTargetName(project.Name, target.Name)
	modified := target.Clone()

	var (
		additional []graph.Target
		effects    []sideeffect.Descriptor
	)

	if !target.SupportsResources() {
		additional = append(additional, bundleTarget(bundleTargetName, target))
		modified.Resources = nil
		modified.CopyFiles = nil
		modified.Dependencies = append(modified.Dependencies,
			graph.TargetDependencyOn(bundleTargetName, graph.PlatformConditionWhen(target.DependencyPlatformFilters())))
		log.Debugw("Synthesized resource bundle", logger.FieldBundle, bundleTargetName, logger.FieldProduct, string(target.Product))
	}

	sourcesDir := project.DerivedSourcesPath(m.derivedDirectory)
	req := accessor.NewRequest(project, target)

	if target.SupportsSources() && target.HasSourcesWithExtension("swift") {
		files, err := m.swift.Generate(req)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "target %s", target.Name)
		}
		for _, f := range files {
			source, effect, err := m.materialize(sourcesDir, f, project, target)
			if err != nil {
				return nil, nil, err
			}
			modified.Sources = append(modified.Sources, source)
			effects = append(effects, effect)
		}
	}

	if !project.Options.DisableObjcBundleAccessor &&
		target.SupportsSources() &&
		target.HasSourcesWithExtension("m", "mm") &&
		hasBundleAccessedResources(target.Resources) {
		req.HeaderFileName = accessor.ObjcFileName(target.Name, "h")
		files, err := m.objc.Generate(req)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "target %s", target.Name)
		}
		for _, f := range files {
			source, effect, err := m.materialize(sourcesDir, f, project, target)
			if err != nil {
				return nil, nil, err
			}
			effects = append(effects, effect)
			if f.Header {
				modified.Settings = withPrefixHeader(modified.Settings, project.Path, source.Path)
				continue
			}
			modified.Sources = append(modified.Sources, source)
		}
	}

	return append([]graph.Target{modified}, additional...), effects, nil
}

// materialize places f under dir and hashes it.
func (m *ResourcesProjectMapper) materialize(dir string, f accessor.File, project graph.Project, target graph.Target) (graph.SourceFile, sideeffect.Descriptor, error) {
	path := filepath.Join(dir, f.Name)
	digest, err := m.hasher.Hash(f.Contents)
	if err != nil {
		err = errors.Mark(errors.Wrapf(err, "failed to hash %s", path), errors.ErrHashFailed)
		return graph.SourceFile{}, sideeffect.Descriptor{}, errors.WithDetailf(err, "project=%s target=%s", project.Name, target.Name)
	}
	m.logger.Debugw("Generated bundle accessor",
		logger.FieldTarget, target.Name,
		logger.FieldPath, path,
		logger.FieldDigest, digest,
		logger.FieldSize, len(f.Contents),
	)
	return graph.SourceFile{Path: path, ContentHash: digest},
		sideeffect.File(sideeffect.FileDescriptor{Path: path, Contents: f.Contents, State: sideeffect.StatePresent}),
		nil
}

func bundleTarget(name string, target graph.Target) graph.Target {
	bundle := graph.Target{
		Name:              name,
		Product:           graph.ProductBundle,
		BundleID:          target.BundleID + ".resources",
		Destinations:      slices.Clone(target.Destinations),
		DeploymentTargets: maps.Clone(target.DeploymentTargets),
		InfoPlist:         graph.ExtendingDefault(nil),
		Settings: &graph.Settings{
			Base: graph.SettingsDictionary{graph.SettingCodeSigningAllowed: graph.StringSetting("NO")},
		},
		Resources:      slices.Clone(target.Resources),
		CopyFiles:      slices.Clone(target.CopyFiles),
		CoreDataModels: slices.Clone(target.CoreDataModels),
	}
	if target.FilesGroup != nil {
		group := *target.FilesGroup
		bundle.FilesGroup = &group
	}
	return bundle
}

// withPrefixHeader returns settings with GCC_PREFIX_HEADER pointing at
// header, relative to SRCROOT. Existing base keys are kept.
func withPrefixHeader(settings *graph.Settings, projectPath, header string) *graph.Settings {
	rel, err := filepath.Rel(projectPath, header)
	if err != nil {
		rel = header
	}
	var base graph.SettingsDictionary
	if settings != nil {
		base = settings.Base.Clone()
	} else {
		base = graph.SettingsDictionary{}
	}
	base[graph.SettingGCCPrefixHeader] = graph.StringSetting("$(SRCROOT)/" + filepath.ToSlash(rel))
	return settings.WithBase(base)
}

func hasBundleAccessedResources(resources []graph.ResourceFileElement) bool {
	return slices.ContainsFunc(resources, func(r graph.ResourceFileElement) bool {
		return r.Extension() != graph.PrivacyManifestExtension
	})
}

// checkBundleNames fails when a bundle target the mapper would add shares
// its name with a target already in the project.
func checkBundleNames(project graph.Project) error {
	names := project.TargetNames()
	for _, t := range project.Targets {
		if len(t.Resources) == 0 && len(t.CoreDataModels) == 0 {
			continue
		}
		if t.SupportsResources() {
			continue
		}
		bundle := accessor.BundleTargetName(project.Name, t.Name)
		if names[bundle] {
			return errors.WithHintf(
				errors.Wrapf(errors.ErrTargetNameCollision, "resource bundle for %s would be named %s", t.Name, bundle),
				"rename target %s; %s is reserved for the resources of %s", bundle, bundle, t.Name,
			)
		}
	}
	return nil
}
