package visitor

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/mod/modfile"
)

// The go directive in go.mod is the single source of truth for the minimum
// supported Go version; the exported constant must track it exactly.
func Test_MinimumGoVersion(t *testing.T) {
	data, err := os.ReadFile("go.mod")
	if !assert.Nil(t, err) {
		return
	}
	file, err := modfile.Parse("go.mod", data, nil)
	if !assert.Nil(t, err) {
		return
	}
	if !assert.NotNil(t, file.Go) {
		return
	}
	assert.EqualValues(t, MinimumGoVersion, file.Go.Version)
}
