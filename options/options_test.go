package options

import "testing"

func TestTotalFrames(t *testing.T) {
	type spec struct {
		duration float64
		fps      int
		exp      int
	}
	specs := []spec{
		{10, 60, 600},
		{0.5, 30, 15},
		{0, 60, 0},
	}
	for index, s := range specs {
		o := Defaults()
		*o.Duration = s.duration
		*o.FPS = s.fps
		if got := o.TotalFrames(); got != s.exp {
			t.Fatalf("[spec %d] expected %d frames; got %d", index, s.exp, got)
		}
	}
}

func TestDefaults(t *testing.T) {
	o := Defaults()
	if *o.Time != 5 || *o.Blend != 0.5 || *o.Mode != "view" {
		t.Fatalf("unexpected defaults: time %f blend %f mode %s", *o.Time, *o.Blend, *o.Mode)
	}
}
