// Package objc generates the Objective-C `SWIFTPM_MODULE_BUNDLE` accessor:
// a header installed as the target's prefix header and the implementation
// that resolves the bundle.
package objc

import (
	"bytes"
	"text/template"

	"github.com/danibachar/tuist/accessor"
	"github.com/danibachar/tuist/errors"
)

var headerTemplate = template.Must(template.New("header").Parse(`#import <Foundation/Foundation.h>

#if __cplusplus
extern "C" {
#endif

NSBundle* {{.BundleName}}_SWIFTPM_MODULE_BUNDLE(void);

#define SWIFTPM_MODULE_BUNDLE {{.BundleName}}_SWIFTPM_MODULE_BUNDLE()

#if __cplusplus
}
#endif
`))

var implementationTemplate = template.Must(template.New("implementation").Parse(`#import <Foundation/Foundation.h>
#import "{{.HeaderFileName}}"

NSBundle* {{.BundleName}}_SWIFTPM_MODULE_BUNDLE() {
    NSURL *bundleURL = [[[NSBundle mainBundle] bundleURL] URLByAppendingPathComponent:@"{{.BundleName}}.bundle"];

    NSBundle *bundle = [NSBundle bundleWithURL:bundleURL];

    return bundle;
}
`))

// Generator implements accessor.Generator for Objective-C
type Generator struct{}

// NewGenerator creates a new Objective-C generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "objc"
func (g *Generator) Language() string {
	return "objc"
}

// FileExtension returns "m"
func (g *Generator) FileExtension() string {
	return "m"
}

// Generate returns the header followed by the implementation. A missing
// req.HeaderFileName is derived from the target name.
func (g *Generator) Generate(req accessor.Request) ([]accessor.File, error) {
	if req.HeaderFileName == "" {
		req.HeaderFileName = accessor.ObjcFileName(req.TargetName, "h")
	}

	header, err := g.GenerateHeader(req)
	if err != nil {
		return nil, err
	}
	impl, err := g.GenerateImplementation(req)
	if err != nil {
		return nil, err
	}

	return []accessor.File{
		{Name: req.HeaderFileName, Contents: header, Header: true},
		{Name: accessor.ObjcFileName(req.TargetName, g.FileExtension()), Contents: impl},
	}, nil
}

// GenerateHeader renders the header declaring the bundle function.
func (g *Generator) GenerateHeader(req accessor.Request) ([]byte, error) {
	return render(headerTemplate, req)
}

// GenerateImplementation renders the implementation of the bundle function.
func (g *Generator) GenerateImplementation(req accessor.Request) ([]byte, error) {
	if req.HeaderFileName == "" {
		return nil, errors.Newf("objc accessor for %s needs a header file name", req.TargetName)
	}
	return render(implementationTemplate, req)
}

func render(tmpl *template.Template, req accessor.Request) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, req); err != nil {
		return nil, errors.Wrapf(err, "failed to render %s for %s", tmpl.Name(), req.TargetName)
	}
	return buf.Bytes(), nil
}
