package cvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisassembleSingleInstruction(t *testing.T) {
	p := mustProgram(t, 0, 1, 1, 7, 2, 6, 3, 0, 4, 3, 5, 4, 6, 5, 7, 6)
	want := []string{"adv 1", "bxl 7", "bst C", "jnz 0", "bxc", "out A", "bdv B", "cdv C"}
	require.Equal(t, len(want), p.Len())
	for i, in := range p.Instructions {
		assert.Equal(t, want[i], DisassembleSingleInstruction(in))
	}
}

func TestDisassembleListing(t *testing.T) {
	listing := Disassemble(mustProgram(t, 0, 1, 5, 4, 3, 0))
	assert.Equal(t, "00: adv 1\n01: out A\n02: jnz 0\n", listing)
}
