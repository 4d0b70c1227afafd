package sideeffect

import (
	"context"
	"path/filepath"
	"time"

	"github.com/danibachar/tuist/errors"
	"github.com/danibachar/tuist/logger"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// Summary counts what Apply did.
type Summary struct {
	Created   int
	Updated   int
	Deleted   int
	Unchanged int
}

// Total is the number of descriptors processed.
func (s Summary) Total() int {
	return s.Created + s.Updated + s.Deleted + s.Unchanged
}

// Executor applies descriptors to a filesystem.
type Executor struct {
	fs     afero.Fs
	logger *zap.SugaredLogger
}

// NewExecutor returns an executor writing to fs. Use afero.NewOsFs() for the
// real filesystem and afero.NewMemMapFs() in tests.
func NewExecutor(fs afero.Fs) *Executor {
	return &Executor{
		fs:     fs,
		logger: logger.ComponentLogger("sideeffect.executor"),
	}
}

// Fs returns the filesystem e writes to.
func (e *Executor) Fs() afero.Fs { return e.fs }

// Apply applies descriptors in order. Files whose contents already match are
// left untouched so their modification times do not change. Apply stops at
// the first failure; effects applied before it stay applied.
func (e *Executor) Apply(ctx context.Context, descriptors []Descriptor) (Summary, error) {
	var summary Summary
	start := time.Now()
	log := logger.LoggerFromContext(ctx, e.logger)

	for _, d := range descriptors {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		change, err := classify(e.fs, d)
		if err != nil {
			return summary, err
		}
		if err := e.apply(change); err != nil {
			return summary, errors.Wrapf(err, "failed to %s %s", change.Action, d.Path())
		}

		switch change.Action {
		case ActionCreate:
			summary.Created++
		case ActionUpdate:
			summary.Updated++
		case ActionDelete:
			summary.Deleted++
		default:
			summary.Unchanged++
		}
		log.Debugw("Applied side effect",
			logger.FieldPath, d.Path(),
			logger.FieldAction, string(change.Action),
		)
	}

	log.Infow("Side effects applied",
		logger.FieldCount, summary.Total(),
		"created", summary.Created,
		"updated", summary.Updated,
		"deleted", summary.Deleted,
		logger.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return summary, nil
}

func (e *Executor) apply(c Change) error {
	d := c.Descriptor
	switch c.Action {
	case ActionUnchanged:
		return nil
	case ActionDelete:
		if d.Directory != nil {
			return e.fs.RemoveAll(d.Directory.Path)
		}
		return e.fs.Remove(d.File.Path)
	}

	if d.Directory != nil {
		return e.fs.MkdirAll(d.Directory.Path, dirPerm)
	}
	if err := e.fs.MkdirAll(filepath.Dir(d.File.Path), dirPerm); err != nil {
		return err
	}
	return afero.WriteFile(e.fs, d.File.Path, d.File.Contents, filePerm)
}
