// Package gen implements the visitorgen pipeline: it loads a package's
// type information, distills the listed struct types into a generation
// plan, and emits Traverse/TraverseMut implementations next to the source,
// so traversal boilerplate is never written by hand.
package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// Generate loads the configured package and writes traversal
// implementations into its directory. It returns the files written.
func Generate(config *Config) ([]string, error) {
	plan, err := Load(config)
	if err != nil {
		return nil, err
	}
	if config.Output != "" {
		path := filepath.Join(plan.Dir, config.Output)
		if err = writePlan(plan, path); err != nil {
			return nil, err
		}
		return []string{path}, nil
	}
	var written []string
	for _, typePlan := range plan.Types {
		path := filepath.Join(plan.Dir, FileName(typePlan.Name))
		typed := &Plan{PkgName: plan.PkgName, Dir: plan.Dir, Types: []*TypePlan{typePlan}}
		if err = writePlan(typed, path); err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writePlan(plan *Plan, path string) error {
	code, err := Emit(plan)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, code, 0644); err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}
	return nil
}
