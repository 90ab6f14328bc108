// Command particles runs the particle trail demo.
//
// Usage:
//
//	particles run               # windowed, best available backend
//	particles render -n 120     # headless, writes PNG frames
//	particles bench -n 600      # headless frame-time benchmark
//	particles config > p.yaml   # print the default configuration
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/gogpu/particles"
	_ "github.com/gogpu/particles/backend/ebiten"
	"github.com/gogpu/particles/internal/config"
)

var (
	configFile string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "particles",
		Short:         "particle swarm with motion-blur trails",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newRunCmd(), newRenderCmd(), newBenchCmd(), newConfigCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "particles:", err)
		stop()
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	particles.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadConfig returns the file configuration, or the defaults when no file
// was given, after applying flag overrides.
func loadConfig(override func(*config.Config)) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if override != nil {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ignoreCanceled treats an interrupt as a clean exit.
func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
