package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/willbeason/fractal-trees/internal/cli"
	"github.com/willbeason/fractal-trees/internal/presentation"
	"github.com/willbeason/fractal-trees/pkg/render"
	"github.com/willbeason/fractal-trees/pkg/render/frameclock"
	"github.com/willbeason/fractal-trees/pkg/render/raster"
	"github.com/willbeason/fractal-trees/pkg/tree"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"time"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Render a fractal tree to PNG frames",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	cli.AddFlags(cmd)
	cmd.Flags().Int("frames", 1, "number of animation frames to render")
	cmd.Flags().String("out", "out", "directory to write frames to")
	cmd.Flags().Bool("caption", false, "print the parameters on each frame")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("frames") {
		cfg.Animation.Frames, _ = cmd.Flags().GetInt("frames")
	}
	if cmd.Flags().Changed("out") {
		cfg.Output.Dir, _ = cmd.Flags().GetString("out")
	}
	if cmd.Flags().Changed("caption") {
		cfg.Output.Caption, _ = cmd.Flags().GetBool("caption")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	rt, err := cli.NewRuntime(cfg, render.Raster)
	if err != nil {
		return err
	}
	opts, err := rt.HostOptions(cfg)
	if err != nil {
		return err
	}

	registry := raster.NewRegistry()
	canvas := registry.Add(cfg.Surface.ID, cfg.Surface.Width, cfg.Surface.Height)
	canvas.SetCaption(cfg.Output.Caption)

	clock := &frameclock.Clock{}
	host := render.NewHost(registry, clock, opts...)
	defer host.Close()

	host.Init(cfg.Surface.ID)
	if host.State() == render.Uninitialized {
		return fmt.Errorf("surface %q could not be initialized", cfg.Surface.ID)
	}
	host.Update(cfg.Parameters.Iterations, cfg.Parameters.Angle, cfg.Parameters.Length)

	// Only frames of the animation loop are written, not the one Init draws.
	stamp := time.Now().Format("20060102150405")
	var files []string
	var writeErr error
	canvas.OnDraw(func(img *image.RGBA, f render.Frame) {
		if writeErr != nil {
			return
		}
		path := filepath.Join(cfg.Output.Dir, fmt.Sprintf("%s-%04d.png", stamp, len(files)+1))
		writeErr = raster.SavePNG(path, img)
		if writeErr == nil {
			files = append(files, path)
			rt.Logger.Debug("frame written", "frame", f.Number, "path", path)
		}
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	host.Start()
	runErr := clock.Run(ctx, cfg.Animation.FPS, cfg.Animation.Frames-1)
	host.Stop()

	if writeErr != nil {
		return writeErr
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	geometry := host.Geometry()
	presentation.Print(termenv.NewOutput(cmd.OutOrStdout()), presentation.Summary{
		Backend:    render.Raster,
		Surface:    cfg.Surface.ID,
		Parameters: host.Parameters(),
		Segments:   len(geometry),
		Extent:     tree.Extent(geometry),
		Frames:     len(files),
		Rotation:   host.Animation().Rotation,
		Files:      files,
	})

	return rt.Finish()
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
