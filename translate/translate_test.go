package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPrinter(t *testing.T) {
	assert := assert.New(t)

	p := NewPrinter("en-US")
	assert.Equal("1,234,567", p.Sprintf("%d", 1234567))
	assert.Equal("0x0014", p.Sprintf("0x%04x", 0x14))

	p = NewPrinter()
	assert.Equal("tick 7", p.Sprintf("tick %d", 7))
}

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("address 12", From("address %d", 12))
}
