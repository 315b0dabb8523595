package program

import (
	"strconv"
	"strings"
)

// Program is an ordered, immutable-after-load instruction sequence.
type Program struct {
	Instructions []Instruction
}

// NewProgram decodes a flat digit stream (opcode, operand, opcode, operand...)
// into a Program. The digit count must be even.
func NewProgram(digits []byte) (*Program, error) {
	if len(digits)%2 != 0 {
		return nil, errOddDigits(len(digits))
	}
	instructions := make([]Instruction, 0, len(digits)/2)
	for i := 0; i < len(digits); i += 2 {
		in, err := Decode(digits[i], digits[i+1])
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, in)
	}
	return &Program{Instructions: instructions}, nil
}

// Len returns the number of instructions.
func (p *Program) Len() int {
	return len(p.Instructions)
}

// At fetches the instruction at index i, reporting whether i is in range.
func (p *Program) At(i uint64) (Instruction, bool) {
	if i >= uint64(len(p.Instructions)) {
		return Instruction{}, false
	}
	return p.Instructions[i], true
}

// Digits returns the flattened (opcode, operand) digit stream of the program,
// in order. This is the target the quine search must reproduce as output.
func (p *Program) Digits() []byte {
	digits := make([]byte, 0, 2*len(p.Instructions))
	for _, in := range p.Instructions {
		opcode, operand := in.Pair()
		digits = append(digits, opcode, operand)
	}
	return digits
}

// String renders the program in its comma-separated input form, e.g. "0,1,5,4,3,0".
func (p *Program) String() string {
	digits := p.Digits()
	parts := make([]string, len(digits))
	for i, d := range digits {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}
