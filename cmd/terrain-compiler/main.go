package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/terrain-compiler/internal/atlas"
	"github.com/ironsheep/terrain-compiler/internal/cli"
	"github.com/ironsheep/terrain-compiler/internal/config"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("terrain-compiler %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("terrain-compiler - split a terrain atlas into textures and merge them back")
			fmt.Println()
			fmt.Print(cli.Usage)
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=<file>    texture definitions (default %s)\n", config.EnvDefinitions, config.DefaultDefinitions)
			fmt.Printf("  %s=<dir>       split output directory (default %s)\n", config.EnvSplitDir, config.DefaultSplitDir)
			fmt.Printf("  %s=<file>         merged atlas (default %s)\n", config.EnvOutput, config.DefaultOutput)
			fmt.Printf("  %s=<dir>       tiles output directory (default %s)\n", config.EnvTilesDir, config.DefaultTilesDir)
			fmt.Printf("  %s=debug      Enable debug logging\n", config.EnvLogLevel)
			return
		}
	}

	// Log to stderr so verify reports on stdout stay clean
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := config.Load()
	if cfg.Debug {
		log.Printf("terrain-compiler v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	registry, err := atlas.LoadRegistry(atlas.DefaultGeometry, cfg.Definitions)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if cfg.Debug {
		log.Printf("Loaded %d textures, %d tile maps from %s", registry.Len(), registry.TileCount(), cfg.Definitions)
	}

	runner := cli.New(cfg, registry, os.Stdout)
	if err := runner.Run(os.Args[1:]); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprintf(os.Stderr, "%v\n\n%s", err, cli.Usage)
			os.Exit(1)
		}
		log.Fatalf("Error: %v", err)
	}
}
