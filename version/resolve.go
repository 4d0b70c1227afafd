package version

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/danibachar/tuist/errors"
)

// Pinning files looked up from the project directory upward.
const (
	VersionFileName = ".tuist-version"
	BinDirName      = ".tuist-bin"
)

// ResolvedKind says how the version for a directory was found.
type ResolvedKind string

const (
	ResolvedBin         ResolvedKind = "bin"         // a bundled binary directory
	ResolvedVersionFile ResolvedKind = "versionFile" // a pinned version
	ResolvedUndefined   ResolvedKind = "undefined"
)

// Resolved is the tool version that applies to a directory.
type Resolved struct {
	Kind    ResolvedKind
	Path    string          // the .tuist-bin directory or .tuist-version file
	Version *semver.Version // ResolvedVersionFile only
}

// Resolve walks from dir to the filesystem root and returns the first
// .tuist-bin directory or .tuist-version file found. A bin directory wins
// over a version file in the same directory.
func Resolve(dir string) (Resolved, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return Resolved{}, errors.Wrapf(err, "failed to resolve %s", dir)
	}

	for {
		bin := filepath.Join(dir, BinDirName)
		if info, err := os.Stat(bin); err == nil && info.IsDir() {
			return Resolved{Kind: ResolvedBin, Path: bin}, nil
		}

		file := filepath.Join(dir, VersionFileName)
		if _, err := os.Stat(file); err == nil {
			v, err := readVersionFile(file)
			if err != nil {
				return Resolved{}, err
			}
			return Resolved{Kind: ResolvedVersionFile, Path: file, Version: v}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Resolved{Kind: ResolvedUndefined}, nil
		}
		dir = parent
	}
}

// ResolveFile returns the version pinned by the nearest .tuist-version
// file. It fails with errors.ErrNotFound when no file pins one.
func ResolveFile(dir string) (*semver.Version, string, error) {
	r, err := Resolve(dir)
	if err != nil {
		return nil, "", err
	}
	if r.Kind != ResolvedVersionFile {
		return nil, "", errors.WithHintf(
			errors.Wrapf(errors.ErrNotFound, "no %s above %s", VersionFileName, dir),
			"pin a version with: echo 4.0.0 > %s", VersionFileName,
		)
	}
	return r.Version, r.Path, nil
}

func readVersionFile(path string) (*semver.Version, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read the version file at path %s", path)
	}

	value := strings.TrimSpace(string(data))
	v, err := semver.StrictNewVersion(value)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "the version %q at path %s doesn't have a valid semver format", value, path),
			"use the x.y.z format",
		)
	}
	return v, nil
}

// Satisfies reports whether the running build matches pinned. Development
// builds and untagged builds satisfy every pin.
func (i Info) Satisfies(pinned *semver.Version) bool {
	if pinned == nil {
		return true
	}
	running, err := semver.NewVersion(i.Version)
	if err != nil {
		return true
	}
	return running.Equal(pinned)
}
