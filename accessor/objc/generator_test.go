package objc

import (
	"testing"

	"github.com/danibachar/tuist/accessor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request() accessor.Request {
	return accessor.Request{
		TargetName:     "my-kit",
		ProjectName:    "App",
		BundleName:     "App_my_kit",
		HeaderFileName: "TuistBundle+MyKit.h",
	}
}

func TestGenerateHeader(t *testing.T) {
	out, err := NewGenerator().GenerateHeader(request())
	require.NoError(t, err)

	want := `#import <Foundation/Foundation.h>

#if __cplusplus
extern "C" {
#endif

NSBundle* App_my_kit_SWIFTPM_MODULE_BUNDLE(void);

#define SWIFTPM_MODULE_BUNDLE App_my_kit_SWIFTPM_MODULE_BUNDLE()

#if __cplusplus
}
#endif
`
	assert.Equal(t, want, string(out))
}

func TestGenerateImplementation(t *testing.T) {
	out, err := NewGenerator().GenerateImplementation(request())
	require.NoError(t, err)
	src := string(out)

	assert.Contains(t, src, `#import "TuistBundle+MyKit.h"`)
	assert.Contains(t, src, "NSBundle* App_my_kit_SWIFTPM_MODULE_BUNDLE() {")
	assert.Contains(t, src, `[[[NSBundle mainBundle] bundleURL] URLByAppendingPathComponent:@"App_my_kit.bundle"]`)
	assert.Contains(t, src, "return bundle;")
}

func TestGenerateImplementationNeedsHeader(t *testing.T) {
	req := request()
	req.HeaderFileName = ""
	_, err := NewGenerator().GenerateImplementation(req)
	assert.Error(t, err)
}

func TestGenerateOrdersHeaderFirst(t *testing.T) {
	req := request()
	req.HeaderFileName = ""

	files, err := NewGenerator().Generate(req)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "TuistBundle+MyKit.h", files[0].Name)
	assert.True(t, files[0].Header)
	assert.Equal(t, "TuistBundle+MyKit.m", files[1].Name)
	assert.False(t, files[1].Header)
	assert.Contains(t, string(files[1].Contents), `#import "TuistBundle+MyKit.h"`)
}

func TestGeneratorMetadata(t *testing.T) {
	gen := NewGenerator()
	assert.Equal(t, "objc", gen.Language())
	assert.Equal(t, "m", gen.FileExtension())
}
