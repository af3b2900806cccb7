package renderer

import (
	"context"

	encoder "github.com/richinsley/goseascape/encoder"
	"github.com/richinsley/goseascape/seascape"
)

// RunOffscreen renders Duration*FPS frames at the fixed record size and
// pipes them to ffmpeg. Cancelling ctx stops early and still finalizes the
// output file, but the returned error wraps encoder.ErrInterrupted.
func (r *Renderer) RunOffscreen(ctx context.Context) error {
	totalFrames := r.options.TotalFrames()
	enc := encoder.NewFFmpegEncoder(r.options)
	enc.Start()

	var pts int64
	r.present = func() error {
		err := enc.Send(&encoder.Frame{
			Pixels: r.offscreenRenderer.ReadYUV(r.quadVAO),
			PTS:    pts,
		})
		if err != nil {
			return err
		}
		pts++
		return nil
	}
	defer func() { r.present = r.presentToScreen }()

	logger.Noticef("Recording %d frames to %s", totalFrames, *r.options.OutputFile)
	var renderErr, cancelErr error
	for i := 0; i < totalFrames; i++ {
		if cancelErr = ctx.Err(); cancelErr != nil {
			logger.Warningf("Recording stopped after %d frames: %v", i, cancelErr)
			break
		}
		if renderErr = r.driver.Tick(); renderErr != nil {
			break
		}
		if i > 0 && i%*r.options.FPS == 0 {
			logger.Infof("Rendered %d/%d frames", i, totalFrames)
		}
	}

	return encoder.Outcome(enc.Close(), renderErr, cancelErr)
}

// Snapshot renders Frames frames and writes the last one as a PNG next to
// an EXR holding the float color and the scene depth as a Z channel.
func (r *Renderer) Snapshot(ctx context.Context) error {
	r.present = func() error { return nil }
	defer func() { r.present = r.presentToScreen }()

	for i := 0; i < *r.options.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.driver.Tick(); err != nil {
			return err
		}
	}

	width, height := r.offscreenRenderer.Size()
	rgba := encoder.FlipRows(r.offscreenRenderer.ReadRGBA(), width*4)

	pngPath, exrPath := encoder.SnapshotPaths(*r.options.OutputFile)
	if err := encoder.WritePNG(pngPath, seascape.LayerFromRGBA(width, height, rgba)); err != nil {
		return err
	}
	logger.Noticef("Wrote %s (frame %d, time %.2f)", pngPath, r.driver.Frame.Count, r.driver.Frame.ElapsedTime)

	if !*r.options.DepthEXR {
		return nil
	}
	depth := encoder.FlipRows(r.scene.RenderTarget.ReadDepth(), width)
	if err := encoder.WriteEXR(exrPath, width, height, rgba, depth); err != nil {
		return err
	}
	logger.Noticef("Wrote %s", exrPath)
	return nil
}
