package program

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInput = `Register A: 729
Register B: 0
Register C: 0

Program: 0,1,5,4,3,0
`

func TestDecodeText(t *testing.T) {
	s, err := DecodeText([]byte(exampleInput))
	require.NoError(t, err)

	assert.Equal(t, uint64(729), s.A)
	assert.Equal(t, uint64(0), s.B)
	assert.Equal(t, uint64(0), s.C)
	require.Equal(t, 3, s.Program.Len())
	assert.Equal(t, []byte{0, 1, 5, 4, 3, 0}, s.Program.Digits())
	assert.Equal(t, "0,1,5,4,3,0", s.Program.String())
}

func TestDecodeTextMissingRegister(t *testing.T) {
	input := "Register A: 1\nRegister C: 0\n\nProgram: 0,1\n"
	_, err := DecodeText([]byte(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Register B")
}

func TestDecodeTextMissingProgram(t *testing.T) {
	input := "Register A: 1\nRegister B: 0\nRegister C: 0\n"
	_, err := DecodeText([]byte(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Program")
}

func TestDecodeTextOddDigitCount(t *testing.T) {
	input := "Register A: 1\nRegister B: 0\nRegister C: 0\n\nProgram: 0,1,5\n"
	_, err := DecodeText([]byte(input))
	assert.Error(t, err)
}

func TestDecodeTextBadOpcode(t *testing.T) {
	// opcode 8 is outside the instruction set and must fail for every caller
	input := "Register A: 1\nRegister B: 0\nRegister C: 0\n\nProgram: 8,0\n"
	_, err := DecodeText([]byte(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opcode 8")
}

func TestProgramAt(t *testing.T) {
	p, err := NewProgram([]byte{0, 3, 5, 4})
	require.NoError(t, err)

	in, ok := p.At(0)
	require.True(t, ok)
	assert.Equal(t, Instruction{Opcode: ADV, Operand: 3}, in)

	_, ok = p.At(2)
	assert.False(t, ok)
}
