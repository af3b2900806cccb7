package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	encoder "github.com/richinsley/goseascape/encoder"
	"github.com/richinsley/goseascape/pipeline"
	"github.com/richinsley/goseascape/scene"
	"github.com/richinsley/goseascape/seascape"
	"github.com/urfave/cli"
)

// Reference runs the post passes on the CPU over an empty scene seen from
// the demo camera and writes the result.
func Reference(ctx *cli.Context) error {
	setupLogging(ctx)
	opts := sceneOptions(ctx, "reference")
	width, height := *opts.Width, *opts.Height

	camera := scene.NewDemoCamera(float32(width) / float32(height))
	frame := pipeline.NewFrame(width, height, camera.Near, camera.Far)
	frame.ElapsedTime = float32(*opts.Time)
	for i := 0; i < *opts.Frames; i++ {
		frame.Step()
	}
	pose := scene.Pose{Camera: camera}
	frame.SetCamera(pose.Position(), pose.Rotation())

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	out, err := seascape.Render(sigCtx, seascape.NewLayer(width, height), frame.Ocean(), float32(*opts.Blend))
	if err != nil {
		return err
	}
	logger.Infof("Rendered %dx%d at time %.2f in %s", width, height, frame.ElapsedTime, time.Since(start))

	pngPath, exrPath := encoder.SnapshotPaths(*opts.OutputFile)
	if err := encoder.WritePNG(pngPath, out); err != nil {
		return err
	}
	if err := encoder.WriteEXR(exrPath, width, height, out.RGBA(), out.DepthRows()); err != nil {
		return err
	}
	logger.Noticef("Wrote %s and %s", pngPath, exrPath)
	return nil
}
