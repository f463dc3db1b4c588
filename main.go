package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/emberline/go-path-tracer/pkg/config"
	"github.com/emberline/go-path-tracer/pkg/integrator"
	"github.com/emberline/go-path-tracer/pkg/postprocess"
	"github.com/emberline/go-path-tracer/pkg/renderer"
	"github.com/emberline/go-path-tracer/pkg/scene"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := parseFlags()
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("render failed", zap.Error(err))
		os.Exit(1)
	}
}

// newLogger builds a console logger with colored levels so failures stand
// out in red
func newLogger() *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		zapcore.InfoLevel,
	)
	return zap.New(core)
}

// parseFlags merges built-in defaults, the optional YAML config file, and
// command-line flags, in that order of precedence
func parseFlags() (config.Config, error) {
	var (
		configPath = flag.String("config", "", "Optional YAML config file")
		sceneName  = flag.String("scene", "", "Scene to render: "+strings.Join(scene.Names(), " | "))
		output     = flag.String("out", "", "Output JPEG path")
		samples    = flag.Int("samples", 0, "Samples per pixel")
		depth      = flag.Int("depth", 0, "Maximum ray bounce depth")
		workers    = flag.Int("workers", 0, "Worker count; must evenly divide image height")
		earthMap   = flag.String("earth-map", "", "Image file for the earth scenes")
		mesh       = flag.String("mesh", "", "OBJ file for the mesh scene")
		edges      = flag.Bool("edges", false, "Run the edge-detection post-pass")
		help       = flag.Bool("help", false, "Show usage")
	)
	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath, cfg)
		if err != nil {
			return cfg, err
		}
	}

	cfg = cfg.Merge(config.Config{
		Scene:           *sceneName,
		Output:          *output,
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		Workers:         *workers,
		EarthMap:        *earthMap,
		Mesh:            *mesh,
		EdgeDetect:      *edges,
	})
	return cfg, nil
}

func run(cfg config.Config, logger *zap.Logger) error {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	sc, err := scene.Create(cfg.Scene, scene.Assets{EarthMap: cfg.EarthMap, Mesh: cfg.Mesh}, random)
	if err != nil {
		return err
	}
	if err := cfg.Validate(sc.ImageHeight()); err != nil {
		return err
	}

	logger.Info("building scene",
		zap.String("scene", cfg.Scene),
		zap.Int("objects", len(sc.World.Objects)),
		zap.Int("width", sc.ImageWidth),
		zap.Int("height", sc.ImageHeight()),
	)

	world := sc.World.BuildBVH(0, 1, random)
	tracer := integrator.NewPathTracer(world, sc.Lights, sc.Background, cfg.MaxDepth)

	r, err := renderer.NewRenderer(sc.Camera, tracer, renderer.Options{
		Width:           sc.ImageWidth,
		Height:          sc.ImageHeight(),
		SamplesPerPixel: cfg.SamplesPerPixel,
		Workers:         cfg.Workers,
	}, logger)
	if err != nil {
		return err
	}

	film := r.Render()
	if err := film.WriteJPEG(cfg.Output); err != nil {
		return err
	}
	logger.Info("output image written", zap.String("path", cfg.Output))

	if cfg.EdgeDetect {
		edges := postprocess.EdgeDetect(film.Image(), cfg.Workers)
		edgePath := edgeOutputPath(cfg.Output)
		if err := renderer.WriteJPEG(edges, edgePath); err != nil {
			return err
		}
		logger.Info("edge image written", zap.String("path", edgePath))
	}
	return nil
}

// edgeOutputPath derives the edge-pass filename from the render output
func edgeOutputPath(output string) string {
	ext := filepath.Ext(output)
	return fmt.Sprintf("%s_edges%s", strings.TrimSuffix(output, ext), ext)
}
