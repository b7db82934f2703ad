package pipeline

import (
	"testing"

	"terra/internal/config"
	"terra/internal/heightmap"
	"terra/internal/hydraulic"
	"terra/internal/terrain"
)

func TestExecuteEmitsOrderedFramesUnchangedByNoOpJob(t *testing.T) {
	g, err := InitialTerrain(8, 8, terrain.Spec{Method: terrain.MethodFlat, Value: 5})
	if err != nil {
		t.Fatalf("InitialTerrain: %v", err)
	}
	flat := g.Clone()

	cfg := &config.PipelineConfig{
		TotalFrames: 5,
		Jobs: []config.Job{
			{
				ID: "erode", Name: "Erode", Enabled: true,
				StartFrame: 1, EndFrame: 5, Type: config.JobHydraulic,
				NumParticles: 0,
				Hydraulic:    hydraulic.DefaultParams(),
			},
		},
	}

	var seen []int
	e := NewExecutor(cfg)
	e.OnFrameComplete = func(frame int, got *heightmap.Grid) {
		seen = append(seen, frame)
		if !got.Equal(flat) {
			t.Fatalf("frame %d was mutated by a zero-particle job", frame)
		}
	}

	if err := e.Execute(g); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := []int{1, 2, 3, 4, 5}
	if len(seen) != len(want) {
		t.Fatalf("got %d frame callbacks, want %d", len(seen), len(want))
	}
	for i, f := range want {
		if seen[i] != f {
			t.Fatalf("frame callback order = %v, want %v", seen, want)
		}
	}
}

func TestExecuteFrameFiresJobStartAndEndAroundEachActiveJob(t *testing.T) {
	g, _ := InitialTerrain(4, 4, terrain.Spec{Method: terrain.MethodFlat, Value: 1})
	cfg := &config.PipelineConfig{
		TotalFrames: 1,
		Jobs: []config.Job{
			{ID: "j1", Name: "J1", Enabled: true, StartFrame: 1, EndFrame: 1, Type: config.JobThermal},
		},
	}
	var events []string
	e := NewExecutor(cfg)
	e.OnJobStart = func(id, name string, frame int) { events = append(events, "start:"+id) }
	e.OnJobEnd = func(id, name string, frame int) { events = append(events, "end:"+id) }

	if err := e.ExecuteFrame(1, g); err != nil {
		t.Fatalf("ExecuteFrame: %v", err)
	}
	want := []string{"start:j1", "end:j1"}
	if len(events) != 2 || events[0] != want[0] || events[1] != want[1] {
		t.Fatalf("events = %v, want %v", events, want)
	}
}

func TestExecuteFrameSkipsJobsOutsideTheirRange(t *testing.T) {
	g, _ := InitialTerrain(4, 4, terrain.Spec{Method: terrain.MethodFlat, Value: 1})
	cfg := &config.PipelineConfig{
		TotalFrames: 3,
		Jobs: []config.Job{
			{ID: "j1", Name: "J1", Enabled: true, StartFrame: 2, EndFrame: 3, Type: config.JobThermal},
		},
	}
	started := false
	e := NewExecutor(cfg)
	e.OnJobStart = func(id, name string, frame int) { started = true }

	if err := e.ExecuteFrame(1, g); err != nil {
		t.Fatalf("ExecuteFrame: %v", err)
	}
	if started {
		t.Fatalf("job outside its frame range should not have started")
	}
}

func TestSelectJobsPreservesDeclarationOrder(t *testing.T) {
	jobs := []config.Job{
		{ID: "b", Enabled: true, StartFrame: 1, EndFrame: 2},
		{ID: "a", Enabled: true, StartFrame: 1, EndFrame: 2},
	}
	got := selectJobs(jobs, 1)
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("selectJobs reordered jobs: %v", got)
	}
}
