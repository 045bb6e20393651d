package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/orchardml/appleseed/pkg/orchestrator"
)

func presetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preset <language>",
		Short: "Print the properties of a language preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := orchestrator.New()
			preset, err := gen.Preset(args[0])
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(preset)
			if err != nil {
				return fmt.Errorf("marshal preset: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
