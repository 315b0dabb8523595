package program

import "fmt"

// The chronospatial computer is a 3-bit machine: every opcode and every
// operand on the wire is a single base-8 digit.

// Opcodes.
const (
	ADV = 0 // A <- A / 2^combo
	BXL = 1 // B <- B xor literal
	BST = 2 // B <- combo mod 8
	JNZ = 3 // if A != 0: pointer <- literal
	BXC = 4 // B <- B xor C (operand ignored)
	OUT = 5 // emit combo mod 8
	BDV = 6 // B <- A / 2^combo
	CDV = 7 // C <- A / 2^combo
)

// NumOpcodes is the size of the closed opcode set.
const NumOpcodes = 8

// OpcodeNames maps opcode values to their string names
var OpcodeNames = map[byte]string{
	ADV: "adv",
	BXL: "bxl",
	BST: "bst",
	JNZ: "jnz",
	BXC: "bxc",
	OUT: "out",
	BDV: "bdv",
	CDV: "cdv",
}

// OperandKind says how an instruction interprets its operand digit.
type OperandKind uint8

const (
	KindLiteral OperandKind = iota // operand used as its encoded value
	KindCombo                      // 0-3 constant, 4/5/6 register A/B/C, 7 reserved
	KindUnused                     // operand carried but ignored
)

// operandKinds is the fixed opcode -> operand interpretation table.
var operandKinds = [NumOpcodes]OperandKind{
	ADV: KindCombo,
	BXL: KindLiteral,
	BST: KindCombo,
	JNZ: KindLiteral,
	BXC: KindUnused,
	OUT: KindCombo,
	BDV: KindCombo,
	CDV: KindCombo,
}

// OperandKindOf returns the operand interpretation for an opcode. Callers must
// pass an opcode below NumOpcodes; Decode is the validating entry point.
func OperandKindOf(opcode byte) OperandKind {
	return operandKinds[opcode]
}

// Instruction is one decoded (opcode, operand) pair.
type Instruction struct {
	Opcode  byte
	Operand byte
}

// Decode maps an (opcode, operand) pair to an Instruction. Opcodes outside the
// eight-entry set are a decode error. The operand is carried as-is: its range
// is checked where it is resolved, so a reserved combo digit in a
// never-executed slot does not reject the whole program.
func Decode(opcode byte, operand byte) (Instruction, error) {
	if opcode >= NumOpcodes {
		return Instruction{}, fmt.Errorf("cannot decode opcode %d: out of range", opcode)
	}
	return Instruction{Opcode: opcode, Operand: operand}, nil
}

// Pair returns the instruction as the (opcode, operand) digits it was decoded
// from. Decode followed by Pair round-trips.
func (in Instruction) Pair() (byte, byte) {
	return in.Opcode, in.Operand
}

// Kind returns the operand interpretation of the instruction.
func (in Instruction) Kind() OperandKind {
	return OperandKindOf(in.Opcode)
}

func (in Instruction) String() string {
	return fmt.Sprintf("%s %d", OpcodeNames[in.Opcode], in.Operand)
}
