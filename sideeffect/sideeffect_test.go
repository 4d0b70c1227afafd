package sideeffect

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsDefaultToPresent(t *testing.T) {
	f := File(FileDescriptor{Path: "/a"})
	assert.Equal(t, KindFile, f.Kind())
	assert.Equal(t, StatePresent, f.State())
	assert.Equal(t, "/a", f.Path())

	d := Directory(DirectoryDescriptor{Path: "/d", State: StateAbsent})
	assert.Equal(t, KindDirectory, d.Kind())
	assert.Equal(t, StateAbsent, d.State())
}

func TestPlanClassifies(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/p/same.swift", []byte("same"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/p/stale.swift", []byte("old"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/p/gone.m", []byte("bye"), 0o644))
	require.NoError(t, fs.MkdirAll("/p/dir", 0o755))

	changes, err := Plan(fs, []Descriptor{
		File(FileDescriptor{Path: "/p/new.swift", Contents: []byte("new")}),
		File(FileDescriptor{Path: "/p/same.swift", Contents: []byte("same")}),
		File(FileDescriptor{Path: "/p/stale.swift", Contents: []byte("fresh")}),
		File(FileDescriptor{Path: "/p/gone.m", State: StateAbsent}),
		File(FileDescriptor{Path: "/p/never.m", State: StateAbsent}),
		Directory(DirectoryDescriptor{Path: "/p/dir"}),
		Directory(DirectoryDescriptor{Path: "/p/other"}),
	})
	require.NoError(t, err)

	var actions []Action
	for _, c := range changes {
		actions = append(actions, c.Action)
	}
	assert.Equal(t, []Action{
		ActionCreate, ActionUnchanged, ActionUpdate, ActionDelete,
		ActionUnchanged, ActionUnchanged, ActionCreate,
	}, actions)
	assert.Equal(t, []byte("old"), changes[2].Current)
	assert.Len(t, Pending(changes), 4)
}

func TestPlanRejectsFileOverDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/p/Derived", 0o755))

	_, err := Plan(fs, []Descriptor{File(FileDescriptor{Path: "/p/Derived", Contents: []byte("x")})})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestApplyWritesAndSkipsUnchanged(t *testing.T) {
	fs := afero.NewMemMapFs()
	exec := NewExecutor(fs)
	ds := []Descriptor{
		File(FileDescriptor{Path: "/p/Derived/Sources/A.swift", Contents: []byte("a")}),
		File(FileDescriptor{Path: "/p/Derived/Sources/B.m", Contents: []byte("b")}),
	}

	summary, err := exec.Apply(context.Background(), ds)
	require.NoError(t, err)
	assert.Equal(t, Summary{Created: 2}, summary)

	got, err := afero.ReadFile(fs, "/p/Derived/Sources/A.swift")
	require.NoError(t, err)
	assert.Equal(t, "a", string(got))

	summary, err = exec.Apply(context.Background(), ds)
	require.NoError(t, err)
	assert.Equal(t, Summary{Unchanged: 2}, summary)
	assert.Equal(t, 2, summary.Total())
}

func TestApplyUpdatesAndDeletes(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/p/A.swift", []byte("old"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/p/tmp/x", []byte("x"), 0o644))

	summary, err := NewExecutor(fs).Apply(context.Background(), []Descriptor{
		File(FileDescriptor{Path: "/p/A.swift", Contents: []byte("new")}),
		Directory(DirectoryDescriptor{Path: "/p/tmp", State: StateAbsent}),
	})
	require.NoError(t, err)
	assert.Equal(t, Summary{Updated: 1, Deleted: 1}, summary)

	got, err := afero.ReadFile(fs, "/p/A.swift")
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	exists, err := afero.Exists(fs, "/p/tmp")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestApplyHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fs := afero.NewMemMapFs()
	_, err := NewExecutor(fs).Apply(ctx, []Descriptor{File(FileDescriptor{Path: "/a", Contents: []byte("a")})})
	assert.ErrorIs(t, err, context.Canceled)

	exists, _ := afero.Exists(fs, "/a")
	assert.False(t, exists)
}

func TestDiff(t *testing.T) {
	update := Change{
		Descriptor: File(FileDescriptor{Path: "/p/A.swift", Contents: []byte("import Foundation\nlet a = 2\n")}),
		Action:     ActionUpdate,
		Current:    []byte("import Foundation\nlet a = 1\n"),
	}
	out, err := Diff(update)
	require.NoError(t, err)
	assert.Contains(t, out, "--- /p/A.swift")
	assert.Contains(t, out, "+++ /p/A.swift (generated)")
	assert.Contains(t, out, "-let a = 1")
	assert.Contains(t, out, "+let a = 2")

	create := Change{
		Descriptor: File(FileDescriptor{Path: "/p/B.swift", Contents: []byte("x\n")}),
		Action:     ActionCreate,
	}
	out, err = Diff(create)
	require.NoError(t, err)
	assert.Contains(t, out, "--- /dev/null")
	assert.Contains(t, out, "+x")

	out, err = Diff(Change{Descriptor: update.Descriptor, Action: ActionUnchanged})
	require.NoError(t, err)
	assert.Empty(t, out)
}
