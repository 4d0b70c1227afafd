package sideeffect

import (
	"bytes"
	"crypto/sha256"
	"os"

	"github.com/danibachar/tuist/errors"
	"github.com/spf13/afero"
)

// Action is what applying a descriptor would do to the filesystem.
type Action string

const (
	ActionCreate    Action = "create"
	ActionUpdate    Action = "update"
	ActionDelete    Action = "delete"
	ActionUnchanged Action = "unchanged"
)

// Change is a descriptor classified against the current filesystem.
type Change struct {
	Descriptor Descriptor
	Action     Action
	// Current holds the bytes on disk for file updates and deletes.
	Current []byte
}

// Plan classifies every descriptor without touching the filesystem.
// Changes are returned in descriptor order.
func Plan(fs afero.Fs, descriptors []Descriptor) ([]Change, error) {
	changes := make([]Change, 0, len(descriptors))
	for _, d := range descriptors {
		c, err := classify(fs, d)
		if err != nil {
			return nil, err
		}
		changes = append(changes, c)
	}
	return changes, nil
}

// Pending returns the changes whose action is not ActionUnchanged.
func Pending(changes []Change) []Change {
	var out []Change
	for _, c := range changes {
		if c.Action != ActionUnchanged {
			out = append(out, c)
		}
	}
	return out
}

func classify(fs afero.Fs, d Descriptor) (Change, error) {
	path := d.Path()
	if path == "" {
		return Change{}, errors.New("side effect has no path")
	}

	info, err := fs.Stat(path)
	exists := err == nil
	if err != nil && !os.IsNotExist(err) {
		return Change{}, errors.Wrapf(err, "failed to stat %s", path)
	}

	change := Change{Descriptor: d, Action: ActionUnchanged}
	switch {
	case d.Directory != nil:
		switch {
		case d.Directory.State == StatePresent && !exists:
			change.Action = ActionCreate
		case d.Directory.State == StatePresent && !info.IsDir():
			return Change{}, errors.Newf("%s exists and is not a directory", path)
		case d.Directory.State == StateAbsent && exists:
			change.Action = ActionDelete
		}
		return change, nil

	case d.File != nil:
		if exists && info.IsDir() {
			return Change{}, errors.Newf("%s is a directory, want a file", path)
		}
		if d.File.State == StateAbsent {
			if exists {
				change.Action = ActionDelete
				change.Current, err = afero.ReadFile(fs, path)
				if err != nil {
					return Change{}, errors.Wrapf(err, "failed to read %s", path)
				}
			}
			return change, nil
		}
		if !exists {
			change.Action = ActionCreate
			return change, nil
		}
		current, err := afero.ReadFile(fs, path)
		if err != nil {
			return Change{}, errors.Wrapf(err, "failed to read %s", path)
		}
		if !sameContent(current, d.File.Contents) {
			change.Action = ActionUpdate
			change.Current = current
		}
		return change, nil
	}
	return Change{}, errors.Newf("side effect for %s has no kind", path)
}

func sameContent(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	sa, sb := sha256.Sum256(a), sha256.Sum256(b)
	return bytes.Equal(sa[:], sb[:])
}
