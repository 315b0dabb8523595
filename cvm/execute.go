package cvm

import (
	"errors"
	"fmt"

	"github.com/colorfulnotion/chrono/cvm/program"
	"github.com/colorfulnotion/chrono/log"
)

// ErrNoOutput reports a single-cycle run that wrapped or exited without
// emitting a digit. A well-formed quine-search target always emits before its
// trailing jump.
var ErrNoOutput = errors.New("single cycle produced no output")

// Execute runs the fetch-decode-execute loop until the pointer leaves the
// program or the machine faults. The step budget turns a looping jump into an
// OOS error instead of an endless run.
func (vm *VM) Execute() error {
	vm.terminated = false
	vm.MachineState = RUN
	vm.faultErr = nil
	vm.steps = 0

	for !vm.terminated {
		in, ok := vm.program.At(vm.pc)
		if !ok {
			break
		}
		if vm.steps >= vm.maxSteps {
			vm.MachineState = OOS
			vm.terminated = true
			vm.faultErr = fmt.Errorf("step budget %d exhausted at pc %d", vm.maxSteps, vm.pc)
			break
		}
		vm.step(in)
		vm.steps++
	}

	if vm.MachineState == RUN {
		vm.MachineState = HALT
	}
	return vm.faultErr
}

func (vm *VM) step(in program.Instruction) {
	log.Trace(vm.logging, "execute", "pc", vm.pc, "inst", DisassembleSingleInstruction(in), "regs", vm.register, "out", len(vm.output))
	dispatchTable[in.Opcode](vm, in)
}

// ExecuteStep executes a single instruction, reporting whether the machine can
// continue. Used by the interactive console.
func (vm *VM) ExecuteStep() (bool, error) {
	if vm.terminated {
		return false, vm.faultErr
	}
	in, ok := vm.program.At(vm.pc)
	if !ok {
		if vm.MachineState == RUN {
			vm.MachineState = HALT
		}
		return false, nil
	}
	vm.step(in)
	vm.steps++
	if vm.terminated {
		return false, vm.faultErr
	}
	return true, nil
}

// Run executes until terminal and returns the output as comma-joined digits.
func (vm *VM) Run() (string, error) {
	if err := vm.Execute(); err != nil {
		return "", err
	}
	return vm.OutputString(), nil
}

// RunOnce resets the pointer and output, then executes until the pointer
// returns to the start or passes the end of the program, returning the digit
// produced by that cycle. Exactly one digit is expected by then; none is a
// fault.
func (vm *VM) RunOnce() (byte, error) {
	vm.pc = 0
	vm.output = vm.output[:0]
	vm.terminated = false
	vm.MachineState = RUN
	vm.faultErr = nil

	end := uint64(vm.program.Len())
	for steps := uint64(0); steps < vm.maxSteps; steps++ {
		in, ok := vm.program.At(vm.pc)
		if !ok {
			break
		}
		vm.step(in)
		if vm.terminated {
			break
		}
		if vm.pc == 0 || vm.pc == end {
			if len(vm.output) == 0 {
				break
			}
			return vm.output[len(vm.output)-1], nil
		}
	}

	if vm.faultErr != nil {
		return 0, vm.faultErr
	}
	return 0, ErrNoOutput
}
