// Command globe opens a window showing a rotating textured Earth.
//
// Textures are read from a directory holding earth-diffuse, earth-specular,
// earth-normal, earth-lights and earth-clouds images; any that are missing render
// with the default channel. Drag to orbit, scroll to zoom, space pauses the
// rotation, R resets the camera and Esc quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Carmen-Shannon/oxy-globe/engine"
	"github.com/Carmen-Shannon/oxy-globe/engine/controller"
	"github.com/Carmen-Shannon/oxy-globe/engine/profiler"
	"github.com/Carmen-Shannon/oxy-globe/engine/texture"
	"github.com/Carmen-Shannon/oxy-globe/engine/window"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file")
	textureDir := flag.String("textures", "", "directory holding the earth-* texture images")
	radius := flag.Float64("radius", 0, "globe radius")
	segments := flag.Int("segments", 0, "longitudinal slices of the sphere (>= 3)")
	period := flag.Float64("period", 0, "seconds per revolution")
	async := flag.Int("async", 0, "texture resolver workers, 0 resolves synchronously")
	profile := flag.Bool("profile", false, "log frame and scene statistics every second")
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			log.Println("globe:", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "textures":
			cfg.TextureDir = *textureDir
		case "radius":
			cfg.Radius = float32(*radius)
		case "segments":
			cfg.Segments = *segments
		case "period":
			cfg.RotationPeriod = float32(*period)
		case "async":
			cfg.AsyncTextures = *async
		case "profile":
			cfg.Profile = *profile
		}
	})

	if err := run(cfg); err != nil {
		log.Println("globe:", err)
		os.Exit(1)
	}
}

func run(cfg Config) error {
	opts, err := cfg.ControllerOptions()
	if err != nil {
		return fmt.Errorf("configure controller: %w", err)
	}
	logger := log.Default()
	cache := texture.NewCache(cfg.Provider())
	ctrl := controller.NewSceneController(cache, append(opts, controller.WithLogger(logger))...)

	win, err := window.NewWindow(
		window.WithTitle(cfg.Title),
		window.WithWidth(cfg.Width),
		window.WithHeight(cfg.Height),
	)
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}
	defer win.Close()
	if win.SurfaceDescriptor() == nil {
		return errors.New("open window: no drawable surface for this platform")
	}

	prof := profiler.NewProfiler(
		profiler.WithLogger(logger),
		profiler.WithReporter(func() string { return ctrl.Stats().String() }),
	)
	eng := engine.NewEngine(ctrl,
		engine.WithWindow(win),
		engine.WithTickRate(cfg.TickRate),
		engine.WithProfiler(prof),
		engine.WithProfiling(cfg.Profile),
		engine.WithLogger(logger),
	)
	return eng.Run()
}
