package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orchardml/appleseed/pkg/orchestrator"
	"github.com/orchardml/appleseed/pkg/syntax"
	"github.com/orchardml/appleseed/pkg/tree"
)

type exportCmdConfig struct {
	treePath    string
	language    string
	output      string
	featureMap  string
	classMap    string
	interactive bool
}

func exportCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &exportCmdConfig{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a fitted tree as source code",
		Long: `Reads a tree document (JSON parallel arrays) and renders it as nested
conditionals in the selected language preset. Without --output the code is
printed to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(rootConfig)
			defer logger.Sync()

			t, err := loadTree(config.treePath)
			if err != nil {
				return err
			}

			featureMap, err := loadStringMap(config.featureMap)
			if err != nil {
				return err
			}
			classMap, err := loadStringMap(config.classMap)
			if err != nil {
				return err
			}

			gen := orchestrator.New(orchestrator.WithLogger(logger))

			language := config.language
			if language == "" && config.interactive {
				names, err := gen.Languages()
				if err != nil {
					return err
				}
				language, err = promptLanguage(names)
				if err != nil {
					return err
				}
			}
			if language == "" {
				return errors.New("a language preset is required: pass --language or --interactive")
			}

			text, err := gen.Generate(cmd.Context(), orchestrator.Request{
				Tree:       t,
				Language:   syntax.Named(language),
				FeatureMap: featureMap,
				ClassMap:   classMap,
				Output:     config.output,
			})
			if err != nil {
				return err
			}

			if config.output == "" {
				fmt.Fprint(cmd.OutOrStdout(), text)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "exported tree written to %s\n", config.output)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&config.treePath, "tree", "t", "", "path to the tree document (JSON)")
	cmd.PersistentFlags().StringVarP(&config.language, "language", "l", "", "language preset name")
	cmd.PersistentFlags().StringVarP(&config.output, "output", "o", "", "write the generated code to this file")
	cmd.PersistentFlags().StringVar(&config.featureMap, "feature-map", "", "JSON file remapping tree feature names to display names")
	cmd.PersistentFlags().StringVar(&config.classMap, "class-map", "", "JSON file remapping tree class labels to display labels")
	cmd.PersistentFlags().BoolVarP(&config.interactive, "interactive", "i", false, "pick the language preset interactively")
	cmd.MarkPersistentFlagRequired("tree")
	return cmd
}

func loadTree(path string) (*tree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tree document: %w", err)
	}
	defer f.Close()
	return tree.Decode(f)
}

func loadStringMap(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map file: %w", err)
	}
	mapping := map[string]string{}
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("parse map file %s: %w", path, err)
	}
	return mapping, nil
}
