package gen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type (
	// Config drives a visitorgen run.
	Config struct {
		// Package is the package pattern to load, e.g. ./model.
		Package string `yaml:"package"`
		// Dir is the working directory for package loading.
		Dir string `yaml:"dir,omitempty"`
		// Output optionally routes all generated code into a single file,
		// relative to the package directory. When empty each type gets its
		// own <type>_visitor.go file.
		Output string `yaml:"output,omitempty"`
		// Mutable also generates TraverseMut implementations.
		Mutable bool `yaml:"mutable,omitempty"`
		// Types lists the struct types to generate traversal for.
		Types []*TypeConfig `yaml:"types"`
	}

	// TypeConfig holds per type generation settings. In YAML it may be a
	// plain string (the type name) or a mapping with options.
	TypeConfig struct {
		Name string `yaml:"name"`
		// SkipSelf drops the enter and leave events of the type itself;
		// its fields are still traversed.
		SkipSelf bool `yaml:"skipSelf,omitempty"`
	}
)

// UnmarshalYAML accepts both the `- TypeName` shorthand and the full
// mapping form.
func (t *TypeConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&t.Name)
	}
	type raw TypeConfig
	return node.Decode((*raw)(t))
}

// Validate checks config completeness.
func (c *Config) Validate() error {
	if c.Package == "" {
		return fmt.Errorf("config: package was empty")
	}
	if len(c.Types) == 0 {
		return fmt.Errorf("config: no types were listed")
	}
	for _, typeConfig := range c.Types {
		if typeConfig.Name == "" {
			return fmt.Errorf("config: type name was empty")
		}
	}
	return nil
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	config := &Config{}
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", path, err)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
