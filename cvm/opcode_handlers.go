package cvm

import (
	"fmt"

	"github.com/colorfulnotion/chrono/cvm/program"
)

// ComboFault is the corrupted-program condition: a reserved combo digit reached
// the resolver.
type ComboFault struct {
	Operand byte
	PC      uint64
}

func (f *ComboFault) Error() string {
	return fmt.Sprintf("reserved combo operand %d at pc %d", f.Operand, f.PC)
}

type OpcodeHandler func(vm *VM, in program.Instruction)

var dispatchTable [program.NumOpcodes]OpcodeHandler

func init() {
	initDispatchTable()
}

// initDispatchTable wires every opcode of the closed set to its handler.
func initDispatchTable() {
	dispatchTable = [program.NumOpcodes]OpcodeHandler{
		program.ADV: (*VM).handleADV,
		program.BXL: (*VM).handleBXL,
		program.BST: (*VM).handleBST,
		program.JNZ: (*VM).handleJNZ,
		program.BXC: (*VM).handleBXC,
		program.OUT: (*VM).handleOUT,
		program.BDV: (*VM).handleBDV,
		program.CDV: (*VM).handleCDV,
	}
}

func (vm *VM) fault(err error) {
	vm.MachineState = PANIC
	vm.terminated = true
	vm.faultErr = err
}

// shiftDiv divides by 2^exp with truncation toward zero. Exponents at or past
// the register width drain the register to zero.
func shiftDiv(v uint64, exp uint64) uint64 {
	if exp >= 64 {
		return 0
	}
	return v >> exp
}

func (vm *VM) handleADV(in program.Instruction) {
	exp, err := vm.Combo(in.Operand)
	if err != nil {
		vm.fault(err)
		return
	}
	vm.register[RegA] = shiftDiv(vm.register[RegA], exp)
	vm.pc++
}

func (vm *VM) handleBXL(in program.Instruction) {
	vm.register[RegB] ^= uint64(in.Operand)
	vm.pc++
}

func (vm *VM) handleBST(in program.Instruction) {
	v, err := vm.Combo(in.Operand)
	if err != nil {
		vm.fault(err)
		return
	}
	vm.register[RegB] = v % 8
	vm.pc++
}

func (vm *VM) handleJNZ(in program.Instruction) {
	if vm.register[RegA] == 0 {
		vm.pc++
		return
	}
	vm.pc = uint64(in.Operand)
}

func (vm *VM) handleBXC(in program.Instruction) {
	vm.register[RegB] ^= vm.register[RegC]
	vm.pc++
}

func (vm *VM) handleOUT(in program.Instruction) {
	v, err := vm.Combo(in.Operand)
	if err != nil {
		vm.fault(err)
		return
	}
	vm.output = append(vm.output, byte(v%8))
	vm.pc++
}

func (vm *VM) handleBDV(in program.Instruction) {
	exp, err := vm.Combo(in.Operand)
	if err != nil {
		vm.fault(err)
		return
	}
	// numerator is always A, result lands in B
	vm.register[RegB] = shiftDiv(vm.register[RegA], exp)
	vm.pc++
}

func (vm *VM) handleCDV(in program.Instruction) {
	exp, err := vm.Combo(in.Operand)
	if err != nil {
		vm.fault(err)
		return
	}
	// numerator is always A, result lands in C
	vm.register[RegC] = shiftDiv(vm.register[RegA], exp)
	vm.pc++
}
