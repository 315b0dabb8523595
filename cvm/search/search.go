// Reverse-engineers the initial value of register A for which the machine
// prints its own instruction encoding (the quine value).
//
// The search works back-to-front over the target digits: each output digit of
// the puzzle programs depends only on the low 3 bits of A before A is shifted
// right by 3, so A can be grown one base-8 digit at a time, most-significant
// digit first. That is a structural assumption about the input program, not a
// general VM inversion, which is why every trial is budgeted.
package search

import (
	"errors"
	"fmt"
	"slices"

	"github.com/colorfulnotion/chrono/cvm"
	"github.com/colorfulnotion/chrono/cvm/program"
	"github.com/colorfulnotion/chrono/log"
	"github.com/xlab/treeprint"
)

var (
	// ErrNoSolution means every branch was exhausted without reproducing the
	// program.
	ErrNoSolution = errors.New("no initial value of register A reproduces the program")

	// ErrBudgetExhausted means the trial budget tripped before the search
	// finished, the guard against programs the digit-local assumption does not
	// hold for.
	ErrBudgetExhausted = errors.New("trial budget exhausted")
)

// DefaultMaxAttempts bounds the number of single-cycle trials. A conforming
// 16-digit program needs at most 8*16 trials on the happy path; even heavy
// backtracking stays far below this.
const DefaultMaxAttempts = 1 << 20

// Solver finds the minimal self-reproducing register A value for one program.
// One machine is reused across trials; Reset is the only state carried between
// candidates.
type Solver struct {
	vm   *cvm.VM
	prog *program.Program

	attempts    uint64
	maxAttempts uint64

	tree treeprint.Tree
}

func NewSolver(p *program.Program) *Solver {
	return &Solver{
		vm:          cvm.NewVM(p, 0, 0, 0),
		prog:        p,
		maxAttempts: DefaultMaxAttempts,
	}
}

func (s *Solver) SetMaxAttempts(n uint64) {
	s.maxAttempts = n
}

// Attempts returns the number of single-cycle trials run by the last FindQuine
// call.
func (s *Solver) Attempts() uint64 {
	return s.attempts
}

// EnableTree records every matched candidate, including dead ends that were
// later backtracked, for rendering with Tree.
func (s *Solver) EnableTree() {
	s.tree = treeprint.New()
	s.tree.SetValue(fmt.Sprintf("target %s", s.prog.String()))
}

// Tree renders the matched-candidate tree of the last FindQuine call.
func (s *Solver) Tree() string {
	if s.tree == nil {
		return ""
	}
	return s.tree.String()
}

// FindQuine returns the minimal nonnegative A for which running the program
// outputs the program's own digit stream. Candidates at each level are tried
// in ascending order, so the first full match is the minimum.
func (s *Solver) FindQuine() (uint64, error) {
	s.attempts = 0
	target := slices.Clone(s.prog.Digits())

	found, a, err := s.reverseEngineer(0, &target, s.tree)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrNoSolution
	}
	log.Debug(log.SearchMonitoring, "quine found", "a", a, "attempts", s.attempts)
	return a, nil
}

// Verify re-runs the program from a and checks that the output equals the
// program's own digit stream.
func (s *Solver) Verify(a uint64) error {
	s.vm.Reset(a)
	out, err := s.vm.Run()
	if err != nil {
		return err
	}
	if want := s.prog.String(); out != want {
		return fmt.Errorf("register A = %d outputs %q, program is %q", a, out, want)
	}
	return nil
}

// reverseEngineer consumes the remaining target digits back to front. Each
// level appends one base-8 digit to registerA (8 candidates) and keeps the
// first candidate whose single-cycle output matches the popped digit. On
// failure the digit is restored so the caller can advance to its next
// candidate.
func (s *Solver) reverseEngineer(registerA uint64, target *[]byte, node treeprint.Tree) (bool, uint64, error) {
	if len(*target) == 0 {
		return true, registerA, nil
	}

	digit := (*target)[len(*target)-1]
	*target = (*target)[:len(*target)-1]

	base := registerA * 8
	for a := base; a < base+8; a++ {
		if s.attempts >= s.maxAttempts {
			return false, 0, fmt.Errorf("%w after %d trials", ErrBudgetExhausted, s.attempts)
		}
		s.attempts++

		s.vm.Reset(a)
		printed, err := s.vm.RunOnce()
		if err != nil {
			return false, 0, err
		}
		if printed != digit {
			continue
		}
		log.Trace(log.SearchMonitoring, "candidate matched", "a", a, "digit", digit, "remaining", len(*target))

		child := node
		if node != nil {
			child = node.AddBranch(fmt.Sprintf("a=%d digit=%d", a, digit))
		}
		found, answer, err := s.reverseEngineer(a, target, child)
		if err != nil {
			return false, 0, err
		}
		if found {
			return true, answer, nil
		}
	}

	*target = append(*target, digit)
	return false, registerA, nil
}
