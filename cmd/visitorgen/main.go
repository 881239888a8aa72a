// visitorgen generates Traverse/TraverseMut implementations for the struct
// types of a package, replacing hand written traversal boilerplate.
//
// Usage:
//
//	visitorgen generate --package ./model --type Node --type Order [--mutable] [--output visitor_gen.go]
//	visitorgen generate --config visitorgen.yaml
//	visitorgen version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fast/visitor"
)

var rootCmd = &cobra.Command{
	Use:   "visitorgen",
	Short: "Generate visitor traversal implementations for Go structs",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.Version = visitor.Version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
