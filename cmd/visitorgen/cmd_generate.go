package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fast/visitor/gen"
)

var generateFlags = struct {
	configPath string
	pkg        string
	types      []string
	output     string
	mutable    bool
}{}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Traverse implementations for the listed types",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := resolveConfig()
		if err != nil {
			return err
		}
		written, err := gen.Generate(config)
		if err != nil {
			return err
		}
		for _, path := range written {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	},
}

func init() {
	flags := generateCmd.Flags()
	flags.StringVarP(&generateFlags.configPath, "config", "c", "", "YAML config file, overrides the other flags")
	flags.StringVarP(&generateFlags.pkg, "package", "p", "", "package pattern to load")
	flags.StringSliceVarP(&generateFlags.types, "type", "t", nil, "struct type to generate, repeatable")
	flags.StringVarP(&generateFlags.output, "output", "o", "", "single output file relative to the package directory")
	flags.BoolVarP(&generateFlags.mutable, "mutable", "m", false, "also generate TraverseMut implementations")
}

func resolveConfig() (*gen.Config, error) {
	if generateFlags.configPath != "" {
		return gen.LoadConfig(generateFlags.configPath)
	}
	config := &gen.Config{
		Package: generateFlags.pkg,
		Output:  generateFlags.output,
		Mutable: generateFlags.mutable,
	}
	for _, name := range generateFlags.types {
		config.Types = append(config.Types, &gen.TypeConfig{Name: name})
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
