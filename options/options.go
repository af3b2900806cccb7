package options

// SceneOptions holds the settings for one run. Fields are pointers so that
// flag values can be bound directly and unset values told apart.
type SceneOptions struct {
	// Mode is "view", "record" or "snapshot".
	Mode   *string
	Width  *int
	Height *int
	FPS    *int
	// Duration is the record length in seconds.
	Duration *float64
	// Frames is the number of frames rendered before a snapshot is taken.
	Frames     *int
	OutputFile *string
	FFMPEGPath *string
	// Codec is "h264" or "hevc".
	Codec *string
	// Time is the elapsed time of the first frame.
	Time *float64
	// Blend is the depth visualization mix factor.
	Blend *float64
	// DepthEXR makes a snapshot also write an EXR with a Z channel.
	DepthEXR *bool
}

// Defaults returns options with every field set.
func Defaults() *SceneOptions {
	mode := "view"
	width, height := 1280, 720
	fps := 60
	duration := 10.0
	frames := 1
	output := "output.mp4"
	ffmpegPath := ""
	codec := "h264"
	t := 5.0
	blend := 0.5
	exr := true
	return &SceneOptions{
		Mode:       &mode,
		Width:      &width,
		Height:     &height,
		FPS:        &fps,
		Duration:   &duration,
		Frames:     &frames,
		OutputFile: &output,
		FFMPEGPath: &ffmpegPath,
		Codec:      &codec,
		Time:       &t,
		Blend:      &blend,
		DepthEXR:   &exr,
	}
}

// TotalFrames is the number of frames a recording of Duration seconds holds.
func (o *SceneOptions) TotalFrames() int {
	return int(*o.Duration * float64(*o.FPS))
}
