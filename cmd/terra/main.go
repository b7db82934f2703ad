// Command terra runs a terrain-erosion pipeline headlessly: load a
// configuration document, validate it, build the frame-0 heightmap, and
// execute the job timeline, optionally streaming and/or caching frames.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"terra/internal/config"
	"terra/internal/docio"
	"terra/internal/heightmap"
	"terra/internal/hydraulic"
	"terra/internal/pipeline"
	"terra/internal/snapshot"
	"terra/internal/stream"
)

// appConfig is the command-line parameters for the terra binary.
type appConfig struct {
	ConfigPath string
	OutDir     string
	HistoryDir string
	Listen     string
	Seed       int64
	Unseeded   bool
	Width      int
	Height     int
}

func newAppConfig() *appConfig {
	return &appConfig{OutDir: "", Seed: 42, Width: 256, Height: 256}
}

func (c *appConfig) bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", "", "path to a pipeline configuration document (.json, .yaml)")
	fs.StringVar(&c.OutDir, "out", "", "directory to write per-frame PNG snapshots into (optional)")
	fs.StringVar(&c.HistoryDir, "history", "", "directory for a leveldb frame-history cache (optional)")
	fs.StringVar(&c.Listen, "listen", "", "address to serve a live websocket frame stream on, e.g. :8080 (optional)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "droplet RNG seed for reproducible runs")
	fs.BoolVar(&c.Unseeded, "unseeded", false, "use a non-deterministic entropy-seeded droplet RNG instead of -seed")
	fs.IntVar(&c.Width, "width", c.Width, "heightmap width; the grid dimensions are a host/embedder concern, not part of the pipeline document")
	fs.IntVar(&c.Height, "height", c.Height, "heightmap height")
}

func main() {
	cfg := newAppConfig()
	cfg.bind(flag.CommandLine)
	flag.Parse()

	if cfg.ConfigPath == "" {
		log.Fatal("terra: -config is required")
	}

	doc, err := docio.Load(cfg.ConfigPath)
	if err != nil {
		log.Fatalf("terra: %v", err)
	}

	pcfg, err := config.Parse(doc)
	if err != nil {
		log.Fatalf("terra: %v", err)
	}

	report := pipeline.Validate(pcfg)
	for _, w := range report.Warnings {
		log.Printf("terra: warning: %s", w)
	}
	if !report.IsValid {
		for _, e := range report.Errors {
			log.Printf("terra: error: %s", e)
		}
		log.Fatalf("terra: invalid pipeline configuration (%d error(s))", len(report.Errors))
	}

	g, err := pipeline.InitialTerrain(cfg.Width, cfg.Height, pcfg.Step0)
	if err != nil {
		log.Fatalf("terra: building frame 0: %v", err)
	}

	exec := pipeline.NewExecutor(pcfg)
	if cfg.Unseeded {
		exec.RNG = nil
	} else {
		exec.RNG = hydraulic.NewSeededRNG(cfg.Seed)
	}

	var cache *snapshot.Cache
	if cfg.HistoryDir != "" {
		cache, err = snapshot.Open(cfg.HistoryDir)
		if err != nil {
			log.Fatalf("terra: %v", err)
		}
		defer cache.Close()
	}

	var hub *stream.Hub
	if cfg.Listen != "" {
		hub = stream.NewHub()
		go func() {
			log.Printf("terra: streaming frames on %s", cfg.Listen)
			if err := http.ListenAndServe(cfg.Listen, hub); err != nil {
				log.Printf("terra: stream server stopped: %v", err)
			}
		}()
	}

	exec.OnFrameComplete = func(frame int, g *heightmap.Grid) {
		log.Printf("terra: frame %d/%d complete", frame, pcfg.TotalFrames)
		if cache != nil {
			if err := cache.Put(frame, g); err != nil {
				log.Printf("terra: caching frame %d: %v", frame, err)
			}
		}
		if hub != nil {
			hub.Broadcast(frame, g)
		}
		if cfg.OutDir != "" {
			if err := writePNG(cfg.OutDir, frame, g); err != nil {
				log.Printf("terra: writing frame %d png: %v", frame, err)
			}
		}
	}
	exec.OnJobStart = func(id, name string, frame int) {
		log.Printf("terra: frame %d: job %s (%s) starting", frame, id, name)
	}

	if err := exec.Execute(g); err != nil {
		log.Fatalf("terra: %v", err)
	}

	fmt.Println("terra: pipeline complete")
}

func writePNG(dir string, frame int, g *heightmap.Grid) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	img := image.NewGray(image.Rect(0, 0, g.W, g.H))
	lo, hi := extent(g)
	span := hi - lo
	if span == 0 {
		span = 1
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			v := (float64(g.At(x, y)) - lo) / span
			img.SetGray(x, y, color.Gray{Y: uint8(v * 255)})
		}
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", frame))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func extent(g *heightmap.Grid) (lo, hi float64) {
	data := g.Data()
	if len(data) == 0 {
		return 0, 0
	}
	lo, hi = float64(data[0]), float64(data[0])
	for _, v := range data {
		f := float64(v)
		if f < lo {
			lo = f
		}
		if f > hi {
			hi = f
		}
	}
	return lo, hi
}
