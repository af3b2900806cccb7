package pipeline

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestStatsTable(t *testing.T) {
	s := NewStats()
	for i := 0; i < 4; i++ {
		s.Add(StageRasterize, time.Millisecond)
		s.Add(StageDepth, 2*time.Millisecond)
		s.Add(StageOcean, 5*time.Millisecond)
		s.Add(StagePresent, time.Millisecond)
		s.Frames++
	}
	s.Add(StageOcean, 0)

	if got := s.Mean(StageOcean); got != 5*time.Millisecond {
		t.Fatalf("expected mean 5ms; got %s", got)
	}
	if got := s.Total(StageDepth); got != 8*time.Millisecond {
		t.Fatalf("expected total 8ms; got %s", got)
	}

	var buf bytes.Buffer
	s.Table(&buf)
	out := strings.ToUpper(buf.String())
	for _, want := range []string{"STAGE", "RASTERIZE", "DEPTH", "OCEAN", "PRESENT", "20MS", "4 FRAMES", "36MS", "9MS"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}
}

func TestStatsMeanWithoutFrames(t *testing.T) {
	if got := NewStats().Mean(StageDepth); got != 0 {
		t.Fatalf("expected zero mean; got %s", got)
	}
}
