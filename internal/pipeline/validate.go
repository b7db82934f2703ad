// Package pipeline implements the validator (range/coverage/overlap
// checks) and the frame-ordered executor that drives jobs over a shared
// heightmap.
package pipeline

import (
	"fmt"
	"sort"

	"terra/internal/config"
	"terra/internal/terrain"
)

// Report is the validator's verdict on a PipelineConfig.
type Report struct {
	IsValid         bool
	UncoveredFrames []int
	Warnings        []string
	Errors          []string
}

// Validate checks range, coverage, and overlap invariants for cfg and
// produces a Report. It never raises: all failures are expressed through
// the report.
func Validate(cfg *config.PipelineConfig) Report {
	var errs []string
	var warnings []string

	rangeOK := true
	for _, j := range cfg.Jobs {
		if j.StartFrame < 1 {
			errs = append(errs, fmt.Sprintf("job %q: startFrame must be >= 1 (got %d)", j.Name, j.StartFrame))
			rangeOK = false
		}
		if j.EndFrame > cfg.TotalFrames {
			errs = append(errs, fmt.Sprintf("job %q: endFrame must be <= totalFrames (got %d > %d)", j.Name, j.EndFrame, cfg.TotalFrames))
			rangeOK = false
		}
		if j.StartFrame > j.EndFrame {
			errs = append(errs, fmt.Sprintf("job %q: startFrame (%d) must be <= endFrame (%d)", j.Name, j.StartFrame, j.EndFrame))
			rangeOK = false
		}
	}

	if cfg.Step0.Method == terrain.MethodSigmoid {
		warnings = append(warnings, "step0: sigmoid method has no defined model and is treated as flat(0)")
	}

	var uncovered []int
	if rangeOK {
		covered := make(map[int]bool, cfg.TotalFrames)
		for _, j := range cfg.Jobs {
			if !j.Enabled {
				continue
			}
			for f := j.StartFrame; f <= j.EndFrame; f++ {
				covered[f] = true
			}
		}
		for f := 1; f <= cfg.TotalFrames; f++ {
			if !covered[f] {
				uncovered = append(uncovered, f)
			}
		}
		if len(uncovered) > 0 {
			errs = append(errs, fmt.Sprintf("Uncovered frames: %s", formatFrameList(uncovered)))
		}
	}

	for i := 0; i < len(cfg.Jobs); i++ {
		a := cfg.Jobs[i]
		if !a.Enabled {
			continue
		}
		for j := i + 1; j < len(cfg.Jobs); j++ {
			b := cfg.Jobs[j]
			if !b.Enabled {
				continue
			}
			lo := max(a.StartFrame, b.StartFrame)
			hi := min(a.EndFrame, b.EndFrame)
			if lo <= hi {
				warnings = append(warnings, fmt.Sprintf("Jobs '%s' and '%s' overlap on frames %d-%d", a.Name, b.Name, lo, hi))
			}
		}
	}

	return Report{
		IsValid:         len(errs) == 0 && len(uncovered) == 0,
		UncoveredFrames: uncovered,
		Warnings:        warnings,
		Errors:          errs,
	}
}

func formatFrameList(frames []int) string {
	sorted := append([]int(nil), frames...)
	sort.Ints(sorted)
	out := ""
	for i, f := range sorted {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%d", f)
	}
	return out
}
