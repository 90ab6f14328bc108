package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/particles"
	"github.com/gogpu/particles/internal/config"
	"github.com/gogpu/particles/internal/swarm"
	"github.com/gogpu/particles/surface"
)

// tickStep is the simulated time between headless frames.
const tickStep = time.Second / 60

func newRenderCmd() *cobra.Command {
	var (
		frames int
		every  int
		dir    string
		help   bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "render frames headlessly to PNG files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(func(c *config.Config) {
				flags := cmd.Flags()
				if flags.Changed("frames") || c.Frames == 0 {
					c.Frames = frames
				}
				if flags.Changed("every") {
					c.FrameEvery = every
				}
				if flags.Changed("out") || c.FrameDir == "" {
					c.FrameDir = dir
				}
			})
			if err != nil {
				return err
			}
			opts, err := cfg.PipelineOptions()
			if err != nil {
				return err
			}

			s := surface.NewImageSurface()
			p := particles.New(s, opts)
			if err := p.Init(); err != nil {
				return err
			}
			defer p.Close()

			scene := newDemoScene(
				swarm.New(cfg.Particles, rand.New(rand.NewSource(cfg.Seed))),
				frameClock(tickStep),
				p.ResetTrail,
			)
			if help {
				scene.input = func() controls { return controls{help: true} }
			}
			if err := ignoreCanceled(p.Run(cmd.Context(), scene)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rendered %d frames, wrote %d to %s\n", s.Frames(), s.Written(), cfg.FrameDir)
			return nil
		},
	}
	cmd.Flags().IntVarP(&frames, "frames", "n", 120, "frames to render")
	cmd.Flags().IntVar(&every, "every", config.DefaultFrameEvery, "write every n-th frame")
	cmd.Flags().StringVarP(&dir, "out", "o", "frames", "output directory")
	cmd.Flags().BoolVar(&help, "help-overlay", false, "show the help overlay")
	return cmd
}
