package encoder

import (
	"context"
	"errors"
	"testing"

	options "github.com/richinsley/goseascape/options"
)

func TestGetArgs(t *testing.T) {
	opts := options.Defaults()
	*opts.Width = 640
	*opts.Height = 480
	*opts.FPS = 30

	in, out := getArgs(opts, "linux")
	if in["f"] != "rawvideo" || in["pix_fmt"] != InputPixFmt {
		t.Fatalf("expected raw %s input; got %v", InputPixFmt, in)
	}
	if in["s"] != "640x480" || in["framerate"] != "30" {
		t.Fatalf("expected 640x480 at 30fps; got %v", in)
	}
	if out["c:v"] != "libx264" || out["pix_fmt"] != "yuv420p" {
		t.Fatalf("expected libx264 yuv420p output; got %v", out)
	}
	if _, ok := out["tag:v"]; ok {
		t.Fatalf("expected no tag for h264; got %v", out)
	}
}

func TestGetArgsHEVC(t *testing.T) {
	opts := options.Defaults()
	*opts.Codec = "hevc"
	*opts.OutputFile = "out.MP4"

	_, out := getArgs(opts, "linux")
	if out["c:v"] != "libx265" || out["tag:v"] != "hvc1" {
		t.Fatalf("expected tagged libx265 output; got %v", out)
	}

	*opts.OutputFile = "out.mkv"
	_, out = getArgs(opts, "linux")
	if _, ok := out["tag:v"]; ok {
		t.Fatalf("expected no tag outside mp4; got %v", out)
	}
}

func TestEncoderName(t *testing.T) {
	type spec struct {
		codec string
		goos  string
		exp   string
	}
	specs := []spec{
		{"h264", "linux", "libx264"},
		{"hevc", "windows", "libx265"},
		{"h264", "darwin", "h264_videotoolbox"},
		{"hevc", "darwin", "hevc_videotoolbox"},
		{"", "linux", "libx264"},
	}
	for index, s := range specs {
		if got := encoderName(s.codec, s.goos); got != s.exp {
			t.Fatalf("[spec %d] expected %s; got %s", index, s.exp, got)
		}
	}
}

func TestFrameSize(t *testing.T) {
	if got := FrameSize(4, 2); got != 24 {
		t.Fatalf("expected 24 bytes; got %d", got)
	}
}

func TestSendRejectsWrongSize(t *testing.T) {
	opts := options.Defaults()
	*opts.Width = 4
	*opts.Height = 2
	e := NewFFmpegEncoder(opts)

	specs := []int{0, 23, 25, 4 * 2 * 4}
	for index, size := range specs {
		err := e.Send(&Frame{Pixels: make([]byte, size), PTS: int64(index)})
		if !errors.Is(err, ErrFrameSize) {
			t.Fatalf("[spec %d] expected ErrFrameSize for %d bytes; got %v", index, size, err)
		}
	}

	if err := e.Send(&Frame{Pixels: make([]byte, FrameSize(4, 2))}); err != nil {
		t.Fatalf("expected a full frame to be queued; got %v", err)
	}
	if got := len(e.frames); got != 1 {
		t.Fatalf("expected 1 queued frame; got %d", got)
	}
}

func TestOutcome(t *testing.T) {
	closeErr := errors.New("ffmpeg exited")
	renderErr := errors.New("draw failed")

	specs := []struct {
		closeErr, renderErr, cancelErr error
		exp                            []error
	}{
		{nil, nil, nil, nil},
		{nil, nil, context.Canceled, []error{ErrInterrupted, context.Canceled}},
		{nil, renderErr, context.Canceled, []error{renderErr}},
		{closeErr, renderErr, context.Canceled, []error{closeErr}},
		{closeErr, nil, nil, []error{closeErr}},
	}

	for index, s := range specs {
		err := Outcome(s.closeErr, s.renderErr, s.cancelErr)
		if s.exp == nil {
			if err != nil {
				t.Fatalf("[spec %d] expected no error; got %v", index, err)
			}
			continue
		}
		for _, target := range s.exp {
			if !errors.Is(err, target) {
				t.Fatalf("[spec %d] expected error to wrap %v; got %v", index, target, err)
			}
		}
	}

	if err := Outcome(nil, renderErr, context.Canceled); errors.Is(err, ErrInterrupted) {
		t.Fatalf("expected a render failure not to be reported as an interruption; got %v", err)
	}
}
