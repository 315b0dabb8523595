package cvm

import (
	"strconv"
	"strings"

	"github.com/colorfulnotion/chrono/cvm/program"
	"github.com/colorfulnotion/chrono/log"
)

// Machine states.
const (
	RUN   uint8 = iota // executing
	HALT               // pointer left the program normally
	PANIC              // reserved combo operand or equivalent corrupted-program fault
	OOS                // out of steps (budget exhausted)
)

// Register indices.
const (
	RegA = 0
	RegB = 1
	RegC = 2
)

// DefaultMaxSteps bounds a single Execute call. The puzzle programs finish in a
// few hundred steps; anything near the budget is a looping jump.
const DefaultMaxSteps = 1 << 24

// VM is the chronospatial machine: three registers, an instruction pointer, an
// output digit buffer, and a fixed program.
type VM struct {
	program  *program.Program
	register [3]uint64
	pc       uint64
	output   []byte

	MachineState uint8
	terminated   bool
	faultErr     error

	steps    uint64
	maxSteps uint64
	logging  string
}

func NewVM(p *program.Program, a, b, c uint64) *VM {
	return &VM{
		program:  p,
		register: [3]uint64{a, b, c},
		maxSteps: DefaultMaxSteps,
		logging:  log.VMMonitoring,
	}
}

func NewVMFromSnapshot(s *program.Snapshot) *VM {
	return NewVM(s.Program, s.A, s.B, s.C)
}

func (vm *VM) Program() *program.Program {
	return vm.program
}

func (vm *VM) ReadRegister(i int) uint64 {
	return vm.register[i]
}

func (vm *VM) WriteRegister(i int, v uint64) {
	vm.register[i] = v
}

func (vm *VM) ReadRegisters() [3]uint64 {
	return vm.register
}

func (vm *VM) GetPC() uint64 {
	return vm.pc
}

func (vm *VM) SetPC(pc uint64) {
	vm.pc = pc
}

// Steps returns the number of instructions executed by the last Execute call.
func (vm *VM) Steps() uint64 {
	return vm.steps
}

func (vm *VM) SetMaxSteps(n uint64) {
	vm.maxSteps = n
}

// Output returns the digits emitted so far, each in [0,7].
func (vm *VM) Output() []byte {
	return vm.output
}

// OutputString renders the output as comma-joined decimal digits.
func (vm *VM) OutputString() string {
	parts := make([]string, len(vm.output))
	for i, d := range vm.output {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}

// Reset clears the pointer and output and seeds register A for the next trial.
// Registers B and C keep their current contents: the quine search mutates only
// A between candidates, and the reset boundary makes that explicit.
func (vm *VM) Reset(a uint64) {
	vm.pc = 0
	vm.output = vm.output[:0]
	vm.register[RegA] = a
	vm.MachineState = RUN
	vm.terminated = false
	vm.faultErr = nil
	vm.steps = 0
}

// Combo resolves a combo operand against the current registers: 0-3 are the
// operand's own value, 4/5/6 read registers A/B/C. Digit 7 is reserved and
// means the program is corrupted.
func (vm *VM) Combo(operand byte) (uint64, error) {
	switch operand {
	case 0, 1, 2, 3:
		return uint64(operand), nil
	case 4:
		return vm.register[RegA], nil
	case 5:
		return vm.register[RegB], nil
	case 6:
		return vm.register[RegC], nil
	}
	return 0, &ComboFault{Operand: operand, PC: vm.pc}
}
