package program

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRoundTrip(t *testing.T) {
	// every legal (opcode, operand) pair must survive decode/re-encode unchanged
	for opcode := byte(0); opcode < NumOpcodes; opcode++ {
		for operand := 0; operand <= 255; operand++ {
			in, err := Decode(opcode, byte(operand))
			require.NoError(t, err)
			gotOpcode, gotOperand := in.Pair()
			require.Equal(t, opcode, gotOpcode)
			require.Equal(t, byte(operand), gotOperand)
		}
	}
}

func TestDecodeRejectsUnknownOpcode(t *testing.T) {
	for _, opcode := range []byte{8, 9, 100, 255} {
		_, err := Decode(opcode, 0)
		assert.Error(t, err, "opcode %d must not decode", opcode)
	}
}

func TestOperandKinds(t *testing.T) {
	assert.Equal(t, KindCombo, OperandKindOf(ADV))
	assert.Equal(t, KindLiteral, OperandKindOf(BXL))
	assert.Equal(t, KindCombo, OperandKindOf(BST))
	assert.Equal(t, KindLiteral, OperandKindOf(JNZ))
	assert.Equal(t, KindUnused, OperandKindOf(BXC))
	assert.Equal(t, KindCombo, OperandKindOf(OUT))
	assert.Equal(t, KindCombo, OperandKindOf(BDV))
	assert.Equal(t, KindCombo, OperandKindOf(CDV))
}

func TestOpcodeNamesClosed(t *testing.T) {
	require.Len(t, OpcodeNames, NumOpcodes)
	for opcode := byte(0); opcode < NumOpcodes; opcode++ {
		assert.NotEmpty(t, OpcodeNames[opcode])
	}
}
