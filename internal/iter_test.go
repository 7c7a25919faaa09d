package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := slices.All([]string{"x", "y"})
	b := slices.All([]string{"z"})

	var keys []int
	var values []string
	for key, value := range IterSeq2Concat(a, b) {
		keys = append(keys, key)
		values = append(values, value)
	}

	assert.Equal([]int{0, 1, 0}, keys)
	assert.Equal([]string{"x", "y", "z"}, values)

	merged := maps.Collect(IterSeq2Concat(maps.All(map[string]int{"a": 1}), maps.All(map[string]int{"b": 2})))
	assert.Equal(map[string]int{"a": 1, "b": 2}, merged)
}

func TestIterSeq2Concat_Stop(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeq2Concat(slices.All([]int{1, 2}), slices.All([]int{3, 4}))

	var values []int
	for _, value := range seq {
		values = append(values, value)
		if value == 3 {
			break
		}
	}

	assert.Equal([]int{1, 2, 3}, values)
}
