package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StructPairs(t *testing.T) {
	type Employee struct {
		ID      int
		Name    string
		Company string
		Secret  string `visit:"skip"`
	}

	emp := &Employee{ID: 1, Name: "John Doe", Company: "Acme", Secret: "x"}
	pairs, err := StructPairs(emp)
	if !assert.Nil(t, err) {
		return
	}
	var clone = &Employee{}
	err = pairs(func(key string, value interface{}) (bool, error) {
		switch key {
		case "ID":
			clone.ID = value.(int)
		case "Name":
			clone.Name = value.(string)
		case "Company":
			clone.Company = value.(string)
		case "Secret":
			t.Fatal("skipped field visited")
		}
		return true, nil
	})
	assert.Nil(t, err)
	assert.EqualValues(t, &Employee{ID: 1, Name: "John Doe", Company: "Acme"}, clone)
}

func Test_StructPairs_NonStruct(t *testing.T) {
	_, err := StructPairs(1)
	assert.NotNil(t, err)
}

func Test_SlicePairs(t *testing.T) {
	var testCases = []struct {
		description string
		input       interface{}
		expect      []interface{}
	}{
		{
			description: "typed string slice",
			input:       []string{"a", "b"},
			expect:      []interface{}{"a", "b"},
		},
		{
			description: "typed int slice",
			input:       []int{1, 2, 3},
			expect:      []interface{}{1, 2, 3},
		},
		{
			description: "reflected slice",
			input:       []struct{ N int }{{N: 1}, {N: 2}},
			expect:      []interface{}{struct{ N int }{N: 1}, struct{ N int }{N: 2}},
		},
	}

	for _, testCase := range testCases {
		pairs, err := SlicePairs(testCase.input)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		var actual []interface{}
		err = pairs(func(key int, element interface{}) (bool, error) {
			assert.EqualValues(t, len(actual), key, testCase.description)
			actual = append(actual, element)
			return true, nil
		})
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func Test_SlicePairs_EarlyStop(t *testing.T) {
	pairs, err := SlicePairs([]int{1, 2, 3})
	if !assert.Nil(t, err) {
		return
	}
	count := 0
	err = pairs(func(key int, element interface{}) (bool, error) {
		count++
		return count < 2, nil
	})
	assert.Nil(t, err)
	assert.EqualValues(t, 2, count)
}

func Test_MapPairs(t *testing.T) {
	pairs, err := MapPairs(map[string]int{"a": 1, "b": 2})
	if !assert.Nil(t, err) {
		return
	}
	actual := map[string]int{}
	err = pairs(func(key, element interface{}) (bool, error) {
		actual[key.(string)] = element.(int)
		return true, nil
	})
	assert.Nil(t, err)
	assert.EqualValues(t, map[string]int{"a": 1, "b": 2}, actual)
}

func Test_MapPairs_Reflected(t *testing.T) {
	pairs, err := MapPairs(map[int]float64{1: 0.5})
	if !assert.Nil(t, err) {
		return
	}
	count := 0
	err = pairs(func(key, element interface{}) (bool, error) {
		count++
		assert.EqualValues(t, 1, key)
		assert.EqualValues(t, 0.5, element)
		return true, nil
	})
	assert.Nil(t, err)
	assert.EqualValues(t, 1, count)
}

func Test_MapPairs_NonMap(t *testing.T) {
	_, err := MapPairs([]int{1})
	assert.NotNil(t, err)
}
