package sideeffect

import (
	"github.com/danibachar/tuist/errors"
	"github.com/pmezard/go-difflib/difflib"
)

// Diff renders c as a unified diff from the bytes on disk to the bytes the
// descriptor wants. Directory and unchanged changes have no diff.
func Diff(c Change) (string, error) {
	if c.Descriptor.File == nil || c.Action == ActionUnchanged {
		return "", nil
	}

	from, to := string(c.Current), string(c.Descriptor.File.Contents)
	fromFile, toFile := c.Descriptor.File.Path, c.Descriptor.File.Path+" (generated)"
	switch c.Action {
	case ActionCreate:
		from, fromFile = "", "/dev/null"
	case ActionDelete:
		to, toFile = "", "/dev/null"
	}

	out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(from),
		B:        splitLines(to),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  3,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to diff %s", c.Descriptor.File.Path)
	}
	return out, nil
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return difflib.SplitLines(s)
}
