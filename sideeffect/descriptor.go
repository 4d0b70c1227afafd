// Package sideeffect describes filesystem changes without performing them.
//
// Mappers return Descriptor values; an Executor applies them to an
// afero.Fs, and Plan classifies them for dry runs and staleness checks.
package sideeffect

// State is whether a path should exist after the effect is applied.
type State string

const (
	StatePresent State = "present"
	StateAbsent  State = "absent"
)

// Kind discriminates Descriptor.
type Kind string

const (
	KindFile      Kind = "file"
	KindDirectory Kind = "directory"
)

// FileDescriptor is a file that must exist with Contents, or must not exist.
type FileDescriptor struct {
	Path     string
	Contents []byte
	State    State
}

// DirectoryDescriptor is a directory that must exist, or must not exist.
type DirectoryDescriptor struct {
	Path  string
	State State
}

// Descriptor is one side effect. Exactly one of File or Directory is set;
// build values with File and Directory.
type Descriptor struct {
	File      *FileDescriptor
	Directory *DirectoryDescriptor
}

// File returns a file side effect. An empty state means StatePresent.
func File(f FileDescriptor) Descriptor {
	if f.State == "" {
		f.State = StatePresent
	}
	return Descriptor{File: &f}
}

// Directory returns a directory side effect. An empty state means StatePresent.
func Directory(d DirectoryDescriptor) Descriptor {
	if d.State == "" {
		d.State = StatePresent
	}
	return Descriptor{Directory: &d}
}

// Kind reports which variant d holds.
func (d Descriptor) Kind() Kind {
	if d.Directory != nil {
		return KindDirectory
	}
	return KindFile
}

// Path returns the affected path.
func (d Descriptor) Path() string {
	switch {
	case d.File != nil:
		return d.File.Path
	case d.Directory != nil:
		return d.Directory.Path
	}
	return ""
}

// State returns the desired state of the path.
func (d Descriptor) State() State {
	switch {
	case d.File != nil:
		return d.File.State
	case d.Directory != nil:
		return d.Directory.State
	}
	return ""
}
