package main

import (
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/gogpu/particles"
	"github.com/gogpu/particles/internal/config"
	"github.com/gogpu/particles/internal/swarm"
	"github.com/gogpu/particles/surface"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

func newBenchCmd() *cobra.Command {
	var frames int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "measure headless frame times",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(func(c *config.Config) {
				c.FrameDir = ""
			})
			if err != nil {
				return err
			}
			opts, err := cfg.PipelineOptions()
			if err != nil {
				return err
			}

			p := particles.New(surface.NewImageSurface(), opts)
			if err := p.Init(); err != nil {
				return err
			}
			defer p.Close()

			scene := newDemoScene(
				swarm.New(cfg.Particles, rand.New(rand.NewSource(cfg.Seed))),
				frameClock(tickStep),
				p.ResetTrail,
			)

			ms := make([]float64, 0, frames)
			for range frames {
				if err := cmd.Context().Err(); err != nil {
					break
				}
				start := time.Now()
				if err := scene.Update(); err != nil {
					return err
				}
				if err := p.Tick(scene); err != nil {
					return err
				}
				ms = append(ms, float64(time.Since(start).Microseconds())/1000)
			}
			writeBenchReport(cmd.OutOrStdout(), cfg, ms)
			return nil
		},
	}
	cmd.Flags().IntVarP(&frames, "frames", "n", 600, "frames to measure")
	return cmd
}

type frameStats struct {
	mean, p95, max float64
}

func summarize(ms []float64) frameStats {
	if len(ms) == 0 {
		return frameStats{}
	}
	sorted := slices.Clone(ms)
	slices.Sort(sorted)
	var sum float64
	for _, v := range sorted {
		sum += v
	}
	return frameStats{
		mean: sum / float64(len(sorted)),
		p95:  sorted[(len(sorted)*95)/100],
		max:  sorted[len(sorted)-1],
	}
}

func writeBenchReport(w io.Writer, cfg *config.Config, ms []float64) {
	if len(ms) == 0 {
		fmt.Fprintln(w, "no frames measured")
		return
	}
	st := summarize(ms)
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%dx%d, %d particles", cfg.Width, cfg.Height, cfg.Particles)))
	fmt.Fprintln(w, asciigraph.Plot(ms,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("frame time (ms)"),
	))
	row := func(label, value string) {
		fmt.Fprintln(w, labelStyle.Render(label)+valueStyle.Render(value))
	}
	row("frames", fmt.Sprint(len(ms)))
	row("mean", fmt.Sprintf("%.3f ms", st.mean))
	row("p95", fmt.Sprintf("%.3f ms", st.p95))
	row("max", fmt.Sprintf("%.3f ms", st.max))
	if st.mean > 0 {
		row("fps", fmt.Sprintf("%.0f", 1000/st.mean))
	}
}
