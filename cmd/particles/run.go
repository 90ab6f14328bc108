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

func newRunCmd() *cobra.Command {
	var (
		backend string
		count   int
		seed    int64
		scale   int
		fontPth string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "open a window and run the swarm",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(func(c *config.Config) {
				flags := cmd.Flags()
				if flags.Changed("backend") {
					c.Backend = backend
				}
				if flags.Changed("particles") {
					c.Particles = count
				}
				if flags.Changed("seed") {
					c.Seed = seed
				}
				if flags.Changed("scale") {
					c.Scale = scale
				}
				if flags.Changed("font") {
					c.FontPath = fontPth
				}
			})
			if err != nil {
				return err
			}

			s, err := openSurface(cfg.Backend)
			if err != nil {
				return err
			}
			opts, err := cfg.PipelineOptions()
			if err != nil {
				return err
			}

			p := particles.New(s, opts)
			if err := p.Init(); err != nil {
				return err
			}
			defer p.Close()

			start := time.Now()
			scene := newDemoScene(
				swarm.New(cfg.Particles, rand.New(rand.NewSource(cfg.Seed))),
				func() time.Duration { return time.Since(start) },
				p.ResetTrail,
			)
			if _, ok := s.(surface.Driver); ok {
				scene.input = pollEbitenInput
			}
			return ignoreCanceled(p.Run(cmd.Context(), scene))
		},
	}
	cmd.Flags().StringVar(&backend, "backend", config.DefaultBackend, "surface backend (auto, ebiten, image)")
	cmd.Flags().IntVar(&count, "particles", config.DefaultParticles, "number of particles")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&scale, "scale", config.DefaultScale, "window scale factor")
	cmd.Flags().StringVar(&fontPth, "font", "", "overlay font file (default: bundled)")
	return cmd
}

// openSurface returns the named backend, or the best available for "auto".
func openSurface(name string) (surface.Surface, error) {
	if name == "" || name == config.DefaultBackend {
		s, err := surface.NewSurface()
		if err != nil {
			return nil, fmt.Errorf("open surface: %w", err)
		}
		return s, nil
	}
	s, err := surface.NewSurfaceByName(name)
	if err != nil {
		return nil, fmt.Errorf("open surface: %w", err)
	}
	return s, nil
}
