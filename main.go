package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/integrator"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// cliOptions holds the parsed command line flags. Zero values keep the scene's own settings.
type cliOptions struct {
	sceneID   string
	width     int
	height    int
	beam      int
	adaptive  bool
	workers   int
	tileSize  int
	maxDepth  int
	gamma     float64
	grid      int
	outputDir string
}

func main() {
	// Parse command line flags
	var opts cliOptions
	flag.StringVar(&opts.sceneID, "scene", "default", "Built-in scene id (see -list)")
	listScenes := flag.Bool("list", false, "List the built-in scenes and exit")
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&opts.height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.IntVar(&opts.beam, "beam", 0, "Aperture beam size, 1 disables super-sampling (0 = scene default)")
	flag.BoolVar(&opts.adaptive, "adaptive", false, "Force adaptive super-sampling")
	flag.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.IntVar(&opts.tileSize, "tile", 32, "Tile size in pixels")
	flag.IntVar(&opts.maxDepth, "max-depth", integrator.DefaultConfig().MaxDepth, "Maximum recursion depth")
	flag.Float64Var(&opts.gamma, "gamma", 1, "Gamma correction applied to the output (1 = linear)")
	flag.IntVar(&opts.grid, "grid", 0, "Overlay a grid every N pixels (0 = none)")
	flag.StringVar(&opts.outputDir, "output", "output", "Root directory for rendered images")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Recursive Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		printSceneList()
		fmt.Println()
		fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.png")
		return
	}

	if *listScenes {
		printSceneList()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, opts)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders the selected scene and writes it as a PNG
func run(ctx context.Context, opts cliOptions) error {
	fmt.Println("Starting Recursive Raytracer...")

	selectedScene, err := createScene(opts.sceneID)
	if err != nil {
		return err
	}
	fmt.Printf("Using scene %q (%d primitives, %d lights)\n",
		selectedScene.Name, selectedScene.GetPrimitiveCount(), len(selectedScene.Lights))

	camera, err := selectedScene.NewCamera()
	if err != nil {
		return err
	}

	integratorConfig := integrator.DefaultConfig()
	integratorConfig.MaxDepth = opts.maxDepth
	integ := integrator.NewRecursiveIntegrator(selectedScene, integratorConfig)

	config := buildRenderConfig(selectedScene, opts)
	raytracer, err := renderer.NewRaytracer(integ, camera, config, renderer.NewDefaultLogger())
	if err != nil {
		return err
	}

	sink := renderer.NewImageSink(config.Width, config.Height, opts.gamma)
	stats, err := raytracer.Render(ctx, sink)
	if err != nil {
		return fmt.Errorf("render %s: %w", opts.sceneID, err)
	}
	fmt.Printf("Samples per pixel: %.1f (range %d - %d)\n",
		stats.AverageSamples, stats.MinSamples, stats.MaxSamplesUsed)

	if opts.grid > 0 {
		if err := raytracer.PrintGrid(sink, opts.grid, core.NewVec3(1, 1, 1)); err != nil {
			return err
		}
	}
	fmt.Printf("Average luminance: %.3f\n", renderer.CalculateAverageLuminance(sink.Image()))

	outputDir := createOutputDir(opts.outputDir, opts.sceneID)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, sink.Image()); err != nil {
		return fmt.Errorf("saving PNG: %w", err)
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene builds a built-in scene by id
func createScene(sceneID string) (*scene.Scene, error) {
	if sceneID == "" {
		return nil, fmt.Errorf("no scene given")
	}
	return scene.Create(sceneID)
}

// buildRenderConfig starts from the scene's preferred sampling and applies any flags that were set
func buildRenderConfig(s *scene.Scene, opts cliOptions) renderer.RenderConfig {
	config := renderer.DefaultRenderConfig()
	config.Width = s.SamplingConfig.Width
	config.Height = s.SamplingConfig.Height
	config.SuperSampling = renderer.SuperSamplingConfig{
		BeamSize: s.SamplingConfig.BeamSize,
		Adaptive: s.SamplingConfig.Adaptive,
	}

	if opts.width > 0 {
		config.Width = opts.width
	}
	if opts.height > 0 {
		config.Height = opts.height
	}
	if opts.beam > 0 {
		config.SuperSampling.BeamSize = opts.beam
	}
	if opts.adaptive {
		config.SuperSampling.Adaptive = true
	}
	if opts.tileSize > 0 {
		config.TileSize = opts.tileSize
	}
	config.NumWorkers = opts.workers
	return config
}

// createOutputDir returns the directory a scene's renders are written to
func createOutputDir(root, sceneID string) string {
	name := strings.Trim(filepath.Base(filepath.Clean(sceneID)), ".")
	if name == "" || name == string(filepath.Separator) {
		name = "scene"
	}
	return filepath.Join(root, name)
}

func printSceneList() {
	fmt.Println("Available scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Printf("  %-20s %s - %s\n", info.ID, info.Name, info.Description)
	}
}
