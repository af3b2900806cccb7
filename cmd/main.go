package main

import (
	"os"
	"runtime"

	"github.com/urfave/cli"
)

func init() {
	// GL and GLFW calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	app := cli.NewApp()
	app.Name = "goseascape"
	app.Usage = "render a rasterized scene composited with a raymarched ocean"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-modules",
			Usage: "per module log levels, e.g. renderer=debug,encoder=info",
		},
	}

	sizeFlags := []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Value: 1280,
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 720,
			Usage: "frame height",
		},
		cli.Float64Flag{
			Name:  "time",
			Value: 5.0,
			Usage: "elapsed time of the first frame in seconds",
		},
		cli.Float64Flag{
			Name:  "blend, t",
			Value: 0.5,
			Usage: "depth visualization mix factor",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:   "view",
			Usage:  "render the scene in a window",
			Flags:  sizeFlags,
			Action: View,
		},
		{
			Name:  "record",
			Usage: "render offscreen and encode a video with ffmpeg",
			Description: `
Render a fixed number of frames in a hidden window, convert each frame to
planar BT.709 YUV on the GPU and pipe it to ffmpeg.`,
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "fps",
					Value: 60,
					Usage: "frames per second",
				},
				cli.Float64Flag{
					Name:  "duration, d",
					Value: 10.0,
					Usage: "duration to record in seconds",
				},
				cli.StringFlag{
					Name:  "codec",
					Value: "h264",
					Usage: "h264 or hevc",
				},
				cli.StringFlag{
					Name:  "ffmpeg",
					Usage: "path to the ffmpeg executable",
				},
				cli.BoolFlag{
					Name:  "headless",
					Usage: "render through EGL without a window system (linux)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "output.mp4",
					Usage: "video filename",
				},
			}, sizeFlags...),
			Action: Record,
		},
		{
			Name:  "snapshot",
			Usage: "render offscreen and save the last frame",
			Description: `
Render a number of frames in a hidden window and write the last one as a PNG.
An EXR with float color and the scene depth as a Z channel is written next to
it unless --no-exr is set.`,
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "frames, n",
					Value: 1,
					Usage: "frames to render before saving",
				},
				cli.BoolFlag{
					Name:  "no-exr",
					Usage: "skip the EXR output",
				},
				cli.BoolFlag{
					Name:  "headless",
					Usage: "render through EGL without a window system (linux)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename",
				},
			}, sizeFlags...),
			Action: Snapshot,
		},
		{
			Name:  "reference",
			Usage: "render the ocean pass on the CPU",
			Description: `
Run both post passes with the CPU reference implementation over an empty scene
(black, depth 1) and write the result as a PNG and an EXR.`,
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "frames, n",
					Value: 1,
					Usage: "frames to advance before rendering",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "reference.png",
					Usage: "image filename",
				},
			}, sizeFlags...),
			Action: Reference,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
