package config

import "testing"

func TestParseMinimalDocument(t *testing.T) {
	doc := Doc{
		"totalFrames": 5,
		"step0": Doc{
			"method": "flat",
			"value":  5.0,
		},
	}
	cfg, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.TotalFrames != 5 {
		t.Errorf("TotalFrames = %d, want 5", cfg.TotalFrames)
	}
	if len(cfg.Jobs) != 0 {
		t.Errorf("expected no jobs, got %d", len(cfg.Jobs))
	}
}

func TestParseJobWithDefaults(t *testing.T) {
	doc := Doc{
		"totalFrames": 10,
		"step0":       Doc{"method": "perlin"},
		"jobs": []any{
			Doc{
				"id": "job-1", "name": "Heavy Erosion",
				"startFrame": 1, "endFrame": 5, "type": "hydraulic",
				"config": Doc{"numParticles": 50000},
			},
		},
	}
	cfg, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cfg.Jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(cfg.Jobs))
	}
	j := cfg.Jobs[0]
	if !j.Enabled {
		t.Errorf("job should default to enabled")
	}
	if j.NumParticles != 50000 {
		t.Errorf("NumParticles = %d, want 50000", j.NumParticles)
	}
	if j.Hydraulic.MaxIterations != 30 {
		t.Errorf("MaxIterations default = %d, want 30", j.Hydraulic.MaxIterations)
	}
}

func TestParseMissingTotalFrames(t *testing.T) {
	doc := Doc{"step0": Doc{"method": "flat"}}
	if _, err := Parse(doc); err == nil {
		t.Fatalf("expected error for missing totalFrames")
	}
}

func TestParseTotalFramesBelowOne(t *testing.T) {
	doc := Doc{"totalFrames": 0, "step0": Doc{"method": "flat"}}
	if _, err := Parse(doc); err == nil {
		t.Fatalf("expected error for totalFrames < 1")
	}
}

func TestParseUnknownModelingMethod(t *testing.T) {
	doc := Doc{"totalFrames": 1, "step0": Doc{"method": "spline"}}
	if _, err := Parse(doc); err == nil {
		t.Fatalf("expected error for unknown modeling method")
	}
}

func TestParseUnknownJobType(t *testing.T) {
	doc := Doc{
		"totalFrames": 1,
		"step0":       Doc{"method": "flat"},
		"jobs": []any{
			Doc{"id": "a", "name": "a", "startFrame": 1, "endFrame": 1, "type": "volcanic", "config": Doc{}},
		},
	}
	if _, err := Parse(doc); err == nil {
		t.Fatalf("expected error for unknown job type")
	}
}

func TestParseThermalJob(t *testing.T) {
	doc := Doc{
		"totalFrames": 3,
		"step0":       Doc{"method": "flat"},
		"jobs": []any{
			Doc{
				"id": "t1", "name": "Thermal", "startFrame": 1, "endFrame": 3, "type": "thermal",
				"config": Doc{"talusAngle": 35.0, "transferRate": 0.5, "iterations": 4},
			},
		},
	}
	cfg, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	j := cfg.Jobs[0]
	if j.Type != JobThermal {
		t.Fatalf("expected JobThermal, got %v", j.Type)
	}
	if j.Thermal.Iterations != 4 {
		t.Errorf("Iterations = %d, want 4", j.Thermal.Iterations)
	}
}
