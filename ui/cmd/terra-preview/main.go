// Command terra-preview computes a pipeline's full frame sequence and
// plays it back in an ebiten window with scrub controls.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"terra/internal/config"
	"terra/internal/docio"
	"terra/internal/heightmap"
	"terra/internal/hydraulic"
	"terra/internal/pipeline"
	"terra/ui/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.PipelinePath == "" {
		log.Fatal("terra-preview: -config is required")
	}

	doc, err := docio.Load(cfg.PipelinePath)
	if err != nil {
		log.Fatalf("terra-preview: %v", err)
	}
	pcfg, err := config.Parse(doc)
	if err != nil {
		log.Fatalf("terra-preview: %v", err)
	}

	report := pipeline.Validate(pcfg)
	if !report.IsValid {
		for _, e := range report.Errors {
			log.Printf("terra-preview: error: %s", e)
		}
		log.Fatalf("terra-preview: invalid pipeline configuration")
	}

	g, err := pipeline.InitialTerrain(cfg.Width, cfg.Height, pcfg.Step0)
	if err != nil {
		log.Fatalf("terra-preview: building frame 0: %v", err)
	}

	frames := make([]*heightmap.Grid, 0, pcfg.TotalFrames+1)
	frames = append(frames, g.Clone())

	exec := pipeline.NewExecutor(pcfg)
	exec.RNG = hydraulic.NewSeededRNG(cfg.Seed)
	exec.OnFrameComplete = func(frame int, g *heightmap.Grid) {
		frames = append(frames, g.Clone())
	}

	if err := exec.Execute(g); err != nil {
		log.Fatalf("terra-preview: %v", err)
	}

	game := app.New(frames, cfg.Scale)
	ebiten.SetWindowTitle("terra — erosion preview")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
