package main

import (
	options "github.com/richinsley/goseascape/options"
	"github.com/urfave/cli"
)

// sceneOptions starts from the defaults and copies every flag the command
// defines.
func sceneOptions(ctx *cli.Context, mode string) *options.SceneOptions {
	opts := options.Defaults()
	*opts.Mode = mode
	*opts.Width = ctx.Int("width")
	*opts.Height = ctx.Int("height")
	*opts.Time = ctx.Float64("time")
	*opts.Blend = ctx.Float64("blend")

	if ctx.IsSet("fps") {
		*opts.FPS = ctx.Int("fps")
	}
	if ctx.IsSet("duration") {
		*opts.Duration = ctx.Float64("duration")
	}
	if ctx.IsSet("frames") {
		*opts.Frames = ctx.Int("frames")
	}
	if ctx.IsSet("codec") {
		*opts.Codec = ctx.String("codec")
	}
	if ctx.IsSet("ffmpeg") {
		*opts.FFMPEGPath = ctx.String("ffmpeg")
	}
	if out := ctx.String("out"); out != "" {
		*opts.OutputFile = out
	}
	*opts.DepthEXR = !ctx.Bool("no-exr")
	return opts
}
