package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/danibachar/tuist/config"
	"github.com/danibachar/tuist/graph"
	"github.com/danibachar/tuist/hashing"
	"github.com/danibachar/tuist/logger"
	"github.com/danibachar/tuist/mapper"
	"github.com/danibachar/tuist/sideeffect"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
)

// mapManifest loads the configured manifest and runs the project mappers
// over it.
func mapManifest(ctx context.Context, cfg *config.Config) (graph.Project, []sideeffect.Descriptor, error) {
	project, err := graph.LoadManifest(cfg.Generate.Manifest)
	if err != nil {
		return graph.Project{}, nil, err
	}

	hasher, err := hashing.New(cfg.Hashing.Algorithm)
	if err != nil {
		return graph.Project{}, nil, err
	}

	mappers := mapper.Sequence{
		mapper.NewResourcesProjectMapper(hasher,
			mapper.WithParallelism(cfg.Generate.Parallelism),
			mapper.WithDerivedDirectory(cfg.Generate.DerivedDirectory),
		),
	}
	return mappers.Map(ctx, project)
}

// generate maps the manifest and either prints the pending changes (dry
// run) or applies them to fs.
func generate(ctx context.Context, w io.Writer, fs afero.Fs, cfg *config.Config) error {
	start := time.Now()
	log := logger.LoggerFromContext(ctx, logger.ComponentLogger("cli.generate"))

	project, effects, err := mapManifest(ctx, cfg)
	if err != nil {
		return err
	}
	log.Infow("Mapped project",
		logger.FieldProject, project.Name,
		logger.FieldCount, len(project.Targets),
		"side_effects", len(effects),
	)

	if cfg.Generate.DryRun {
		changes, err := sideeffect.Plan(fs, effects)
		if err != nil {
			return err
		}
		return printPlan(w, changes)
	}

	summary, err := sideeffect.NewExecutor(fs).Apply(ctx, effects)
	if err != nil {
		return err
	}

	pterm.Success.WithWriter(w).Printfln("Generated %s", project.Name)
	if logger.ShouldOutput(verbosity, logger.OutputSummary) {
		pterm.Fprintln(w, fmt.Sprintf("  created %d, updated %d, deleted %d, unchanged %d",
			summary.Created, summary.Updated, summary.Deleted, summary.Unchanged))
	}
	if logger.ShouldOutput(verbosity, logger.OutputTiming) {
		pterm.Fprintln(w, fmt.Sprintf("  took %s", time.Since(start).Round(time.Millisecond)))
	}
	return nil
}

// printPlan lists planned changes, with unified diffs at -vv and above.
func printPlan(w io.Writer, changes []sideeffect.Change) error {
	pending := sideeffect.Pending(changes)
	if len(pending) == 0 {
		pterm.Success.WithWriter(w).Println("Nothing to generate")
	}

	for _, c := range changes {
		if c.Action == sideeffect.ActionUnchanged && !logger.ShouldOutput(verbosity, logger.OutputUnchanged) {
			continue
		}
		pterm.Fprintln(w, fmt.Sprintf("%-9s %s", c.Action, c.Descriptor.Path()))

		if !logger.ShouldOutput(verbosity, logger.OutputDiffs) {
			continue
		}
		diff, err := sideeffect.Diff(c)
		if err != nil {
			return err
		}
		if diff != "" {
			pterm.Fprint(w, diff)
		}
	}
	return nil
}
