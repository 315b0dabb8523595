// Disassembles chronospatial programs into human-readable listings.

package cvm

import (
	"fmt"
	"strings"

	"github.com/colorfulnotion/chrono/cvm/program"
)

// comboNames renders combo digits symbolically: constants stay numeric,
// register references become the register letter.
var comboNames = [8]string{"0", "1", "2", "3", "A", "B", "C", "<reserved>"}

// DisassembleSingleInstruction renders one instruction, e.g. "adv 3", "out A",
// "jnz 0".
func DisassembleSingleInstruction(in program.Instruction) string {
	name := program.OpcodeNames[in.Opcode]
	switch in.Kind() {
	case program.KindCombo:
		return fmt.Sprintf("%s %s", name, comboNames[in.Operand&7])
	case program.KindLiteral:
		return fmt.Sprintf("%s %d", name, in.Operand)
	default:
		return name
	}
}

// Disassemble renders the whole program as a numbered listing.
func Disassemble(p *program.Program) string {
	var sb strings.Builder
	for i, in := range p.Instructions {
		fmt.Fprintf(&sb, "%02d: %s\n", i, DisassembleSingleInstruction(in))
	}
	return sb.String()
}
