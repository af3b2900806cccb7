package shader

import (
	"fmt"
	"strings"
	"testing"

	"github.com/richinsley/goseascape/pipeline"
)

func TestPassShadersDeclareBundles(t *testing.T) {
	type spec struct {
		source string
		bundle *pipeline.Bundle
	}
	specs := []spec{
		{DepthFragmentShader(), pipeline.NewDepthBundle()},
		{OceanFragmentShader(), pipeline.NewOceanBundle()},
	}

	for index, s := range specs {
		for _, u := range s.bundle.Uniforms() {
			decl := fmt.Sprintf("uniform %s %s;", u.Type, u.Name)
			if !strings.Contains(s.source, decl) {
				t.Fatalf("[spec %d] expected %s pass source to declare %q", index, s.bundle.Name, decl)
			}
		}
		if strings.Count(s.source, "uniform ") != len(s.bundle.Uniforms()) {
			t.Fatalf("[spec %d] expected exactly %d uniforms in %s pass source; got %d",
				index, len(s.bundle.Uniforms()), s.bundle.Name, strings.Count(s.source, "uniform "))
		}
	}
}

func TestPassShaderDialects(t *testing.T) {
	for index, src := range []string{DepthFragmentShader(), OceanFragmentShader()} {
		if !strings.HasPrefix(src, "#version 300 es") {
			t.Fatalf("[spec %d] expected a WebGL2 pass shader", index)
		}
		if strings.Contains(src, "varying") || strings.Contains(src, "texture2D") {
			t.Fatalf("[spec %d] expected no WebGL1 constructs", index)
		}
	}

	for index, src := range []string{GenerateVertexShader(), GetBlitFragmentShader(), GetYUVFragmentShader(), SceneVertexShader(), SceneFragmentShader()} {
		if !strings.HasPrefix(src, "#version 410 core") {
			t.Fatalf("[spec %d] expected a desktop GL shader", index)
		}
	}
}

func TestOceanConstants(t *testing.T) {
	src := OceanFragmentShader()
	for _, want := range []string{
		"const int NUM_STEPS = 8;",
		"const float PI = 3.141592;",
		"const float SEA_HEIGHT = 0.6;",
		"const float SEA_CHOPPY = 4.0;",
		"const float SEA_SPEED = 0.8;",
		"const float SEA_FREQ = 0.16;",
		"const mat2 octave_m = mat2(1.6, 1.2, -1.2, 1.6);",
		"float tx = 1000.0;",
		"vec3(0.65)",
		"sceneDistance > 0.9999999",
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("expected ocean shader to contain %q", want)
		}
	}
}
