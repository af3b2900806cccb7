package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// Stage names, in frame order.
const (
	StageRasterize = "rasterize"
	StageDepth     = "depth"
	StageOcean     = "ocean"
	StagePresent   = "present"
)

var stageOrder = []string{StageRasterize, StageDepth, StageOcean, StagePresent}

// Stats accumulates wall-clock time per frame stage.
type Stats struct {
	Frames uint64
	totals map[string]time.Duration
	worst  map[string]time.Duration
}

func NewStats() *Stats {
	return &Stats{
		totals: make(map[string]time.Duration),
		worst:  make(map[string]time.Duration),
	}
}

func (s *Stats) Add(stage string, d time.Duration) {
	s.totals[stage] += d
	if d > s.worst[stage] {
		s.worst[stage] = d
	}
}

func (s *Stats) Total(stage string) time.Duration {
	return s.totals[stage]
}

// Mean is the average time spent in stage per frame.
func (s *Stats) Mean(stage string) time.Duration {
	if s.Frames == 0 {
		return 0
	}
	return s.Total(stage) / time.Duration(s.Frames)
}

// Table renders the per-stage totals as a text table.
func (s *Stats) Table(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Stage", "Total", "Mean", "Worst"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	var sum time.Duration
	for _, stage := range stageOrder {
		sum += s.Total(stage)
		table.Append([]string{
			stage,
			s.Total(stage).Round(time.Microsecond).String(),
			s.Mean(stage).Round(time.Microsecond).String(),
			s.worst[stage].Round(time.Microsecond).String(),
		})
	}

	var mean time.Duration
	if s.Frames > 0 {
		mean = sum / time.Duration(s.Frames)
	}
	table.SetFooter([]string{
		fmt.Sprintf("%d frames", s.Frames),
		sum.Round(time.Microsecond).String(),
		mean.Round(time.Microsecond).String(),
		"",
	})
	table.Render()
}
