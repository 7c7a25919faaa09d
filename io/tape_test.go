package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Poll(t *testing.T) {
	assert := assert.New(t)

	tc := &Tape{Input: strings.NewReader("hi")}

	value, ok := tc.Poll()
	assert.True(ok)
	assert.Equal(byte('h'), value)

	value, ok = tc.Poll()
	assert.True(ok)
	assert.Equal(byte('i'), value)

	value, ok = tc.Poll()
	assert.False(ok)
	assert.Equal(byte(0), value)

	assert.Equal(3, tc.Polls)
}

func TestTape_Poll_NoInput(t *testing.T) {
	assert := assert.New(t)

	tc := &Tape{}
	_, ok := tc.Poll()
	assert.False(ok)
}

func TestTape_Emit(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	tc := &Tape{Output: out}

	for _, r := range "Tiger λ\n" {
		assert.NoError(tc.Emit(r))
	}

	assert.Equal("Tiger λ\n", out.String())
}

func TestTape_Clear(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	tc := &Tape{Output: out}

	assert.NoError(tc.Emit('a'))
	assert.NoError(tc.Clear())
	assert.NoError(tc.Emit('b'))

	assert.Equal(1, tc.Clears)
	assert.Equal("a"+ESC_CLEAR+"b", out.String())
}

func TestTape_Discard(t *testing.T) {
	assert := assert.New(t)

	tc := &Tape{}
	assert.NoError(tc.Emit('x'))
	assert.NoError(tc.Clear())
	assert.Equal(1, tc.Clears)
}
