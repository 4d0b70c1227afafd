// Package mapper rewrites a project graph before it is serialized.
//
// ResourcesProjectMapper gives targets that cannot embed resources a
// synthetic resource bundle, and generates accessor sources that find the
// bundle at runtime. Mapping is pure: it never touches the filesystem and
// returns the files to write as sideeffect descriptors.
package mapper

import (
	"context"

	"github.com/danibachar/tuist/graph"
	"github.com/danibachar/tuist/sideeffect"
)

// ProjectMapper transforms a project and reports the files the new project
// needs on disk.
type ProjectMapper interface {
	Map(ctx context.Context, project graph.Project) (graph.Project, []sideeffect.Descriptor, error)
}

// Sequence runs mappers in order, feeding each the previous result. Side
// effects are concatenated.
type Sequence []ProjectMapper

// Map implements ProjectMapper.
func (s Sequence) Map(ctx context.Context, project graph.Project) (graph.Project, []sideeffect.Descriptor, error) {
	var all []sideeffect.Descriptor
	for _, m := range s {
		var (
			effects []sideeffect.Descriptor
			err     error
		)
		project, effects, err = m.Map(ctx, project)
		if err != nil {
			return graph.Project{}, nil, err
		}
		all = append(all, effects...)
	}
	return project, all, nil
}
