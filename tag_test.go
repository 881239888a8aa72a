package visitor

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseTag(t *testing.T) {
	var testCases = []struct {
		description string
		tag         reflect.StructTag
		expect      Tag
	}{
		{
			description: "no tag",
			tag:         `json:"name"`,
			expect:      Tag{},
		},
		{
			description: "skip",
			tag:         `visit:"skip"`,
			expect:      Tag{Skip: true},
		},
		{
			description: "dash alias",
			tag:         `visit:"-"`,
			expect:      Tag{Skip: true},
		},
		{
			description: "with helper",
			tag:         `visit:"with=TraverseTime"`,
			expect:      Tag{With: "TraverseTime"},
		},
		{
			description: "combined",
			tag:         `visit:"skip, with=Custom"`,
			expect:      Tag{Skip: true, With: "Custom"},
		},
	}

	for _, testCase := range testCases {
		actual := ParseTag(testCase.tag)
		assert.EqualValues(t, &testCase.expect, actual, testCase.description)
	}
}
