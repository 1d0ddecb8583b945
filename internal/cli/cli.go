// Package cli maps command-line arguments onto compiler operations and
// writes their results to disk.
//
// Commands:
//
//	split  <atlas>           (alias -s) atlas -> one image per texture
//	merge  <layers.yml>      (alias -m) layer config -> atlas
//	verify <atlas> <layers>  check that merging layers reproduces atlas
//	tiles  <atlas>           dump every atlas cell as its own image
//
// Output locations come from config.Config. Every written file is logged
// on one line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/ironsheep/terrain-compiler/internal/atlas"
	"github.com/ironsheep/terrain-compiler/internal/compiler"
	"github.com/ironsheep/terrain-compiler/internal/config"
	"github.com/ironsheep/terrain-compiler/internal/imaging"
)

// ErrUsage reports an unknown command or a wrong number of arguments.
var ErrUsage = errors.New("usage error")

// ErrVerifyFailed reports that verify found differing atlas tiles.
var ErrVerifyFailed = errors.New("atlas does not match layers")

// Usage is the command summary printed for --help and usage errors.
const Usage = `Usage:
  terrain-compiler split <atlas.png>             (or -s) split the atlas into textures
  terrain-compiler merge <layers.yml>            (or -m) merge textures into an atlas
  terrain-compiler verify <atlas.png> <layers>   check that merging reproduces the atlas
  terrain-compiler tiles <atlas.png>             write every atlas cell as its own image
`

// Runner executes one command against a texture registry.
type Runner struct {
	cfg      *config.Config
	compiler *compiler.Compiler
	stdout   io.Writer
}

// New creates a runner. Reports (verify) are written to stdout.
func New(cfg *config.Config, registry *atlas.Registry, stdout io.Writer) *Runner {
	return &Runner{
		cfg:      cfg,
		compiler: compiler.New(registry, compiler.WithDebug(cfg.Debug)),
		stdout:   stdout,
	}
}

// Run dispatches args (without the program name) to a command.
func (r *Runner) Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "split", "-s":
		if err := wantArgs(cmd, rest, 1); err != nil {
			return err
		}
		return r.split(rest[0])
	case "merge", "-m":
		if err := wantArgs(cmd, rest, 1); err != nil {
			return err
		}
		return r.merge(rest[0])
	case "verify":
		if err := wantArgs(cmd, rest, 2); err != nil {
			return err
		}
		return r.verify(rest[0], rest[1])
	case "tiles":
		if err := wantArgs(cmd, rest, 1); err != nil {
			return err
		}
		return r.tiles(rest[0])
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}

func wantArgs(cmd string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrUsage, cmd, n, len(args))
	}
	return nil
}

func (r *Runner) split(atlasPath string) error {
	img, err := imaging.Open(atlasPath)
	if err != nil {
		return err
	}

	outputs, err := r.compiler.Split(img)
	if err != nil {
		return fmt.Errorf("failed to split %s: %w", atlasPath, err)
	}
	return r.writeOutputs(r.cfg.SplitDir, outputs)
}

func (r *Runner) merge(layersPath string) error {
	layers, err := atlas.LoadLayers(r.compiler.Registry(), layersPath)
	if err != nil {
		return err
	}

	img, err := r.compiler.Merge(layers)
	if err != nil {
		return fmt.Errorf("failed to merge %s: %w", layersPath, err)
	}

	out := r.cfg.Output.String()
	if err := imaging.Save(img, out); err != nil {
		return err
	}
	log.Printf("Wrote atlas %s (%d textures)", out, layers.Len())
	return nil
}

func (r *Runner) verify(atlasPath, layersPath string) error {
	img, err := imaging.Open(atlasPath)
	if err != nil {
		return err
	}
	layers, err := atlas.LoadLayers(r.compiler.Registry(), layersPath)
	if err != nil {
		return err
	}

	report, err := r.compiler.Verify(img, layers)
	if err != nil {
		return fmt.Errorf("failed to verify %s: %w", atlasPath, err)
	}

	for _, m := range report.Mismatches {
		fmt.Fprintf(r.stdout, "tile %s texture %q: %d of %d pixels differ, mean Lab distance %.4f\n",
			m.Atlas, m.Texture, m.Result.PixelsDifferent, m.Result.TotalPixels, m.Result.AverageColorDiff)
	}
	fmt.Fprintf(r.stdout, "%d tiles checked, %d differ\n", report.Checked, len(report.Mismatches))

	if !report.OK() {
		return fmt.Errorf("%w: %d of %d tiles differ", ErrVerifyFailed, len(report.Mismatches), report.Checked)
	}
	return nil
}

func (r *Runner) tiles(atlasPath string) error {
	img, err := imaging.Open(atlasPath)
	if err != nil {
		return err
	}

	outputs, err := r.compiler.Tiles(img)
	if err != nil {
		return fmt.Errorf("failed to cut %s: %w", atlasPath, err)
	}
	return r.writeOutputs(r.cfg.TilesDir, outputs)
}

// writeOutputs saves each output as <dir>/<name>.png.
func (r *Runner) writeOutputs(dir string, outputs []compiler.Output) error {
	for _, out := range outputs {
		p := config.NewPath(dir, out.Name, config.ImageExt)
		if err := imaging.Save(out.Image, p.String()); err != nil {
			return err
		}
		log.Printf("Wrote %s", p)
	}
	return nil
}
