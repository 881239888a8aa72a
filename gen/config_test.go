package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_LoadConfig(t *testing.T) {
	content := `package: ./testdata/model
mutable: true
types:
  - Node
  - name: Order
    skipSelf: true
`
	path := filepath.Join(t.TempDir(), "visitorgen.yaml")
	if !assert.Nil(t, os.WriteFile(path, []byte(content), 0644)) {
		return
	}
	config, err := LoadConfig(path)
	if !assert.Nil(t, err) {
		return
	}
	assert.EqualValues(t, "./testdata/model", config.Package)
	assert.True(t, config.Mutable)
	if !assert.Len(t, config.Types, 2) {
		return
	}
	assert.EqualValues(t, &TypeConfig{Name: "Node"}, config.Types[0])
	assert.EqualValues(t, &TypeConfig{Name: "Order", SkipSelf: true}, config.Types[1])
}

func Test_Config_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		config      Config
		valid       bool
	}{
		{
			description: "valid",
			config:      Config{Package: "./model", Types: []*TypeConfig{{Name: "Node"}}},
			valid:       true,
		},
		{
			description: "missing package",
			config:      Config{Types: []*TypeConfig{{Name: "Node"}}},
		},
		{
			description: "missing types",
			config:      Config{Package: "./model"},
		},
		{
			description: "empty type name",
			config:      Config{Package: "./model", Types: []*TypeConfig{{}}},
		},
	}

	for _, testCase := range testCases {
		err := testCase.config.Validate()
		if testCase.valid {
			assert.Nil(t, err, testCase.description)
		} else {
			assert.NotNil(t, err, testCase.description)
		}
	}
}
