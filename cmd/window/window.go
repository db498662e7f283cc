package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/fractal-trees/internal/cli"
	"github.com/willbeason/fractal-trees/pkg/render"
	"github.com/willbeason/fractal-trees/pkg/render/window"
	"os"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Animate a fractal tree in a window",
		Long: `Animate a fractal tree in a window.

Keys: Space starts and stops the rotation, Up/Down change the iterations,
Left/Right change the angle, [ and ] change the length, Esc quits.`,
		Args: cobra.ExactArgs(0),
		RunE: runCmd,
	}

	cli.AddFlags(cmd)
	cmd.Flags().String("title", "Fractal Trees", "window title")
	cmd.Flags().Bool("paused", false, "open with the animation stopped")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return err
	}

	rt, err := cli.NewRuntime(cfg, render.Window)
	if err != nil {
		return err
	}
	opts, err := rt.HostOptions(cfg)
	if err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	paused, _ := cmd.Flags().GetBool("paused")

	game := window.New(window.Config{
		SurfaceID: cfg.Surface.ID,
		Width:     cfg.Surface.Width,
		Height:    cfg.Surface.Height,
		Title:     title,
		TPS:       cfg.Animation.FPS,
		Controls:  true,
		HUD:       true,
	}, opts...)

	host := game.Host()
	host.Init(cfg.Surface.ID)
	if host.State() == render.Uninitialized {
		return fmt.Errorf("surface %q could not be initialized", cfg.Surface.ID)
	}
	host.Update(cfg.Parameters.Iterations, cfg.Parameters.Angle, cfg.Parameters.Length)
	if !paused {
		host.Start()
	}

	err = game.Run()
	if err != nil {
		return err
	}

	rt.Logger.Info("window closed", "rotation", host.Animation().Rotation)

	return rt.Finish()
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}
