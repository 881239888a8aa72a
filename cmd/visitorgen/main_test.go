package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fast/visitor"
	"github.com/fast/visitor/gen"
)

func Test_ResolveConfig_Flags(t *testing.T) {
	generateFlags.configPath = ""
	generateFlags.pkg = "./model"
	generateFlags.types = []string{"Node", "Order"}
	generateFlags.output = "visitor_gen.go"
	generateFlags.mutable = true

	config, err := resolveConfig()
	if !assert.Nil(t, err) {
		return
	}
	assert.EqualValues(t, &gen.Config{
		Package: "./model",
		Output:  "visitor_gen.go",
		Mutable: true,
		Types:   []*gen.TypeConfig{{Name: "Node"}, {Name: "Order"}},
	}, config)
}

func Test_ResolveConfig_Incomplete(t *testing.T) {
	generateFlags.configPath = ""
	generateFlags.pkg = ""
	generateFlags.types = nil

	_, err := resolveConfig()
	assert.NotNil(t, err)
}

func Test_VersionCommand(t *testing.T) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"version"})

	err := rootCmd.Execute()
	assert.Nil(t, err)
	assert.EqualValues(t, visitor.Version+"\n", out.String())
}
