package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/colorfulnotion/chrono/cvm"
	"github.com/colorfulnotion/chrono/log"
)

const consoleHelp = `Commands:
  step [n]   execute the next n instructions (default 1)
  run        execute until the machine halts or faults
  regs       print registers and pointer
  out        print the output digits emitted so far
  disasm     print the program disassembly
  reset <a>  reset pointer/output and seed register A
  help       this text
  quit       leave the console`

// runConsole drives the machine from an interactive readline loop, with arrow
// keys and command history.
func runConsole(vm *cvm.VM) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "chrono> ",
		HistoryFile: "/tmp/chrono_console_history.txt",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Println(consoleHelp)
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "step", "s":
			n := 1
			if len(fields) > 1 {
				if parsed, err := strconv.Atoi(fields[1]); err == nil && parsed > 0 {
					n = parsed
				}
			}
			stepConsole(vm, n)

		case "run":
			if err := vm.Execute(); err != nil {
				fmt.Println("fault:", err)
				continue
			}
			fmt.Printf("halted after %d steps, output: %s\n", vm.Steps(), vm.OutputString())

		case "regs", "r":
			printRegs(vm)

		case "out":
			fmt.Println(vm.OutputString())

		case "disasm", "d":
			fmt.Print(cvm.Disassemble(vm.Program()))

		case "reset":
			if len(fields) < 2 {
				fmt.Println("usage: reset <a>")
				continue
			}
			a, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				fmt.Println("bad register value:", err)
				continue
			}
			vm.Reset(a)
			log.Debug(log.ConsoleMonitoring, "machine reset", "a", a)
			printRegs(vm)

		case "help", "h":
			fmt.Println(consoleHelp)

		case "quit", "q", "exit":
			return nil

		default:
			fmt.Printf("unknown command %q (try 'help')\n", fields[0])
		}
	}
}

func stepConsole(vm *cvm.VM, n int) {
	for i := 0; i < n; i++ {
		cont, err := vm.ExecuteStep()
		if err != nil {
			fmt.Println("fault:", err)
			return
		}
		if !cont {
			fmt.Println("machine halted")
			return
		}
	}
	printRegs(vm)
}

func printRegs(vm *cvm.VM) {
	regs := vm.ReadRegisters()
	fmt.Printf("pc:%d A:%d B:%d C:%d out:[%s]\n", vm.GetPC(), regs[cvm.RegA], regs[cvm.RegB], regs[cvm.RegC], vm.OutputString())
}
