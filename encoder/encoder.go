package encoder

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/richinsley/goseascape/log"
	options "github.com/richinsley/goseascape/options"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

var logger = log.New("encoder")

// ErrFrameSize is returned by Send for frames that do not hold exactly one
// yuv444p image at the configured size.
var ErrFrameSize = errors.New("frame size does not match the output size")

// ErrInterrupted marks a recording that was stopped before its last frame.
// The output file is finalized but shorter than requested.
var ErrInterrupted = errors.New("recording interrupted")

// InputPixFmt is the layout of Frame.Pixels: three full resolution 8 bit
// planes, Y then U then V, top row first.
const InputPixFmt = "yuv444p"

// queueDepth bounds how far rendering may run ahead of ffmpeg.
const queueDepth = 3

// Frame represents a single rendered video frame's data, ready for encoding.
type Frame struct {
	Pixels []byte
	PTS    int64
}

// FFmpegEncoder pipes raw frames into an ffmpeg process. Frames are handed
// over on a bounded channel and written by a single consumer goroutine.
type FFmpegEncoder struct {
	opts      *options.SceneOptions
	frameSize int
	frames    chan *Frame
	done      chan error
	reader    *io.PipeReader
	writer    *io.PipeWriter
	cmd       *ffmpeg.Stream
}

func NewFFmpegEncoder(opts *options.SceneOptions) *FFmpegEncoder {
	pipeReader, pipeWriter := io.Pipe()
	inputArgs, outputArgs := getArgs(opts, runtime.GOOS)

	cmd := ffmpeg.Input("pipe:", inputArgs).
		Output(*opts.OutputFile, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()
	if opts.FFMPEGPath != nil && *opts.FFMPEGPath != "" {
		cmd = cmd.SetFfmpegPath(*opts.FFMPEGPath)
	}

	return &FFmpegEncoder{
		opts:      opts,
		frameSize: FrameSize(*opts.Width, *opts.Height),
		frames:    make(chan *Frame, queueDepth),
		done:      make(chan error, 1),
		reader:    pipeReader,
		writer:    pipeWriter,
		cmd:       cmd,
	}
}

// FrameSize is the byte length every Frame.Pixels must have.
func FrameSize(width, height int) int {
	return width * height * 3
}

func encoderName(codec, goos string) string {
	hevc := codec == "hevc"
	if goos == "darwin" {
		if hevc {
			return "hevc_videotoolbox"
		}
		return "h264_videotoolbox"
	}
	if hevc {
		return "libx265"
	}
	return "libx264"
}

func getArgs(opts *options.SceneOptions, goos string) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"f":               "rawvideo",
		"pix_fmt":         InputPixFmt,
		"s":               fmt.Sprintf("%dx%d", *opts.Width, *opts.Height),
		"framerate":       fmt.Sprintf("%d", *opts.FPS),
		"color_range":     "tv",
		"colorspace":      "bt709",
		"color_primaries": "bt709",
		"color_trc":       "bt709",
	}

	outputArgs = ffmpeg.KwArgs{
		"c:v":     encoderName(*opts.Codec, goos),
		"pix_fmt": "yuv420p",
		"b:v":     "25M",
	}
	if *opts.Codec == "hevc" && strings.EqualFold(filepath.Ext(*opts.OutputFile), ".mp4") {
		outputArgs["tag:v"] = "hvc1"
	}
	return
}

// Start launches ffmpeg and the consumer goroutine.
func (e *FFmpegEncoder) Start() {
	logger.Infof("Encoding %dx%d@%d to %s", *e.opts.Width, *e.opts.Height, *e.opts.FPS, *e.opts.OutputFile)

	errc := make(chan error, 1)
	go func() {
		err := e.cmd.Run()
		// unblock the writer if ffmpeg exits before reading everything
		e.reader.CloseWithError(io.ErrClosedPipe)
		errc <- err
	}()

	go func() {
		var writeErr error
		for frame := range e.frames {
			if writeErr != nil {
				continue
			}
			if _, err := e.writer.Write(frame.Pixels); err != nil {
				writeErr = fmt.Errorf("failed to write frame %d to ffmpeg: %w", frame.PTS, err)
				logger.Error(writeErr)
			}
		}
		e.writer.Close()

		if err := <-errc; err != nil {
			e.done <- fmt.Errorf("ffmpeg failed: %w", err)
			return
		}
		e.done <- writeErr
	}()
}

// Send queues a frame, blocking while the queue is full. Frames of the wrong
// size are rejected since ffmpeg would misalign every frame after them.
func (e *FFmpegEncoder) Send(frame *Frame) error {
	if len(frame.Pixels) != e.frameSize {
		return fmt.Errorf("frame %d: %d bytes, expected %d: %w", frame.PTS, len(frame.Pixels), e.frameSize, ErrFrameSize)
	}
	e.frames <- frame
	return nil
}

// Close flushes the queue and waits for ffmpeg to exit.
func (e *FFmpegEncoder) Close() error {
	close(e.frames)
	return <-e.done
}

// Outcome folds the ways a recording can end into the error reported to the
// caller. An encoder failure wins over a render failure, which wins over
// cancellation.
func Outcome(closeErr, renderErr, cancelErr error) error {
	switch {
	case closeErr != nil:
		return fmt.Errorf("encoder: %w", closeErr)
	case renderErr != nil:
		return renderErr
	case cancelErr != nil:
		return fmt.Errorf("%w: %w", ErrInterrupted, cancelErr)
	}
	return nil
}
