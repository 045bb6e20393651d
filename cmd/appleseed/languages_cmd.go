package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orchardml/appleseed/pkg/orchestrator"
)

func languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the available language presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := orchestrator.New()
			names, err := gen.Languages()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
