package translator

import (
	"context"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
)

var (
	translator *gst.ShaderTranslator
	initErr    error
	initOnce   sync.Once
)

// GetTranslator returns the process wide translator, creating it on first use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	initOnce.Do(func() {
		translator, initErr = gst.NewShaderTranslator(context.Background())
	})
	return translator, initErr
}

// TranslateFragment converts a WebGL2 fragment shader to GLSL 4.10. The
// returned map takes a uniform name from the source to its name in the
// translated code.
func TranslateFragment(source string) (string, map[string]string, error) {
	t, err := GetTranslator()
	if err != nil {
		return "", nil, fmt.Errorf("failed to create shader translator: %w", err)
	}

	out, err := t.TranslateShader(source, "fragment", gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return "", nil, fmt.Errorf("fragment shader translation failed: %w", err)
	}

	names := make(map[string]string, len(out.Variables))
	for name, v := range out.Variables {
		names[name] = v.MappedName
	}
	return out.Code, names, nil
}
