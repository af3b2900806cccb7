package seascape

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/sync/errgroup"
)

// DepthVisualizationPass runs the depth visualization over a whole layer.
// The output keeps the input depth so it can feed the ocean pass.
func DepthVisualizationPass(scene *Layer, near, far, t float32) *Layer {
	out := NewLayer(scene.Width, scene.Height)
	for i := range scene.Color {
		out.Color[i] = DepthVisualization(scene.Color[i], scene.Depth[i], near, far, t)
		out.Depth[i] = scene.Depth[i]
	}
	return out
}

// OceanPass raymarches every fragment and composites it against diffuse,
// using depth for the scene side of the comparison. Rows are shaded in
// parallel; the pass itself is a pure function of its inputs.
func OceanPass(ctx context.Context, diffuse, depth *Layer, u Uniforms) (*Layer, error) {
	if diffuse.Width != depth.Width || diffuse.Height != depth.Height {
		return nil, fmt.Errorf("layer size mismatch: diffuse %dx%d, depth %dx%d",
			diffuse.Width, diffuse.Height, depth.Width, depth.Height)
	}

	out := NewLayer(diffuse.Width, diffuse.Height)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for y := 0; y < out.Height; y++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for x := 0; x < out.Width; x++ {
				s := u.Sample(mgl32.Vec2{float32(x) + 0.5, float32(y) + 0.5})
				z := depth.DepthAt(x, y)
				out.Set(x, y, Composite(s.Color, s.Distance, diffuse.ColorAt(x, y), z), z)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Render runs both passes over a rasterized scene layer, in pipeline order.
func Render(ctx context.Context, scene *Layer, u Uniforms, blend float32) (*Layer, error) {
	depthOut := DepthVisualizationPass(scene, u.CameraNear, u.CameraFar, blend)
	return OceanPass(ctx, depthOut, scene, u)
}
