package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/particles/internal/config"
	"github.com/gogpu/particles/surface"
)

func newConfigCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "print or write the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(nil)
			if err != nil {
				return err
			}
			if out != "" {
				if err := config.Save(out, cfg); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), headerStyle.Render("wrote "+out))
				return nil
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			fmt.Fprintln(cmd.ErrOrStderr(), labelStyle.Render("backends")+valueStyle.Render(fmt.Sprint(surface.Available())))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write to file instead of stdout")
	return cmd
}
