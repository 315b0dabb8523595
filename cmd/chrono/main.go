// Chronospatial computer CLI: runs 3-bit machine programs and reverse-engineers
// their self-reproducing register A value.
package main

import (
	"fmt"
	"os"

	"github.com/colorfulnotion/chrono/cvm"
	"github.com/colorfulnotion/chrono/cvm/program"
	"github.com/colorfulnotion/chrono/cvm/search"
	"github.com/colorfulnotion/chrono/log"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:     "chrono",
		Short:   "Chronospatial 3-bit computer",
		Version: fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime),
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	var (
		logLevel string
		debug    string
		maxSteps uint64
	)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log.level", "info", "Log level (trace, debug, info, warn, error, crit)")
	rootCmd.PersistentFlags().StringVar(&debug, "debug", "", "Comma-separated log modules to enable (vm_mod, decode_mod, search_mod, console_mod)")
	rootCmd.PersistentFlags().Uint64Var(&maxSteps, "max-steps", cvm.DefaultMaxSteps, "Step budget per execution")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		log.InitLogger(logLevel)
		log.EnableModules(debug)
	}

	var runCmd = &cobra.Command{
		Use:   "run <input>",
		Short: "Run the program and print its output digits",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			vm := loadVM(args[0], maxSteps)
			out, err := vm.Run()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Execution failed: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(out)
		},
	}

	var (
		solveTree        bool
		solveVerify      bool
		solveMaxAttempts uint64
	)
	var solveCmd = &cobra.Command{
		Use:   "solve <input>",
		Short: "Find the minimal register A value that makes the program print itself",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			snap := loadSnapshot(args[0])
			solver := search.NewSolver(snap.Program)
			solver.SetMaxAttempts(solveMaxAttempts)
			if solveTree {
				solver.EnableTree()
			}

			a, err := solver.FindQuine()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
				os.Exit(1)
			}
			if solveVerify {
				if err := solver.Verify(a); err != nil {
					fmt.Fprintf(os.Stderr, "Verification failed: %v\n", err)
					os.Exit(1)
				}
			}
			if solveTree {
				fmt.Fprint(os.Stderr, solver.Tree())
			}
			fmt.Println(a)
		},
	}
	solveCmd.Flags().BoolVar(&solveTree, "tree", false, "Print the matched-candidate tree to stderr")
	solveCmd.Flags().BoolVar(&solveVerify, "verify", false, "Re-run the program from the found value and check the output")
	solveCmd.Flags().Uint64Var(&solveMaxAttempts, "max-attempts", search.DefaultMaxAttempts, "Single-cycle trial budget")

	var disasmCmd = &cobra.Command{
		Use:   "disasm <input>",
		Short: "Print the program disassembly",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			snap := loadSnapshot(args[0])
			fmt.Print(cvm.Disassemble(snap.Program))
		},
	}

	var debugCmd = &cobra.Command{
		Use:   "debug <input>",
		Short: "Step the machine interactively",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			vm := loadVM(args[0], maxSteps)
			if err := runConsole(vm); err != nil {
				fmt.Fprintf(os.Stderr, "Console failed: %v\n", err)
				os.Exit(1)
			}
		},
	}

	rootCmd.AddCommand(runCmd, solveCmd, disasmCmd, debugCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadSnapshot(path string) *program.Snapshot {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", path, err)
		os.Exit(1)
	}
	snap, err := program.DecodeText(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode %s: %v\n", path, err)
		os.Exit(1)
	}
	log.Debug(log.DecodeMonitoring, "input decoded", "a", snap.A, "b", snap.B, "c", snap.C, "instructions", snap.Program.Len())
	return snap
}

func loadVM(path string, maxSteps uint64) *cvm.VM {
	vm := cvm.NewVMFromSnapshot(loadSnapshot(path))
	vm.SetMaxSteps(maxSteps)
	return vm
}
