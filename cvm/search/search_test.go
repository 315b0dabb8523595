package search

import (
	"testing"

	"github.com/colorfulnotion/chrono/cvm"
	"github.com/colorfulnotion/chrono/cvm/program"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quineProgram(t *testing.T) *program.Program {
	t.Helper()
	p, err := program.NewProgram([]byte{0, 3, 5, 4, 3, 0})
	require.NoError(t, err)
	return p
}

func TestFindQuineCanonical(t *testing.T) {
	s := NewSolver(quineProgram(t))
	a, err := s.FindQuine()
	require.NoError(t, err)
	assert.Equal(t, uint64(117440), a)
	require.NoError(t, s.Verify(a))
}

func TestFindQuineIsMinimal(t *testing.T) {
	p := quineProgram(t)
	s := NewSolver(p)
	a, err := s.FindQuine()
	require.NoError(t, err)

	want := p.String()
	vm := cvm.NewVM(p, 0, 0, 0)
	for trial := uint64(0); trial < a; trial++ {
		vm.Reset(trial)
		out, err := vm.Run()
		require.NoError(t, err)
		require.NotEqual(t, want, out, "register A = %d already reproduces the program", trial)
	}
}

func TestFindQuineDeterministic(t *testing.T) {
	p := quineProgram(t)
	first, err := NewSolver(p).FindQuine()
	require.NoError(t, err)
	second, err := NewSolver(p).FindQuine()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFindQuineNoSolution(t *testing.T) {
	// out 0 emits the constant 0 every cycle; the 5 and 3 digits can never match
	p, err := program.NewProgram([]byte{5, 0, 3, 0})
	require.NoError(t, err)

	s := NewSolver(p)
	_, err = s.FindQuine()
	assert.ErrorIs(t, err, ErrNoSolution)
	// one level of full backtracking: 8 roots, 8 children each
	assert.Equal(t, uint64(72), s.Attempts())
}

func TestFindQuineBudget(t *testing.T) {
	s := NewSolver(quineProgram(t))
	s.SetMaxAttempts(1)
	_, err := s.FindQuine()
	assert.ErrorIs(t, err, ErrBudgetExhausted)
}

func TestFindQuineProgramWithoutOutput(t *testing.T) {
	p, err := program.NewProgram([]byte{1, 1})
	require.NoError(t, err)
	_, err = NewSolver(p).FindQuine()
	assert.ErrorIs(t, err, cvm.ErrNoOutput)
}

func TestVerifyRejectsWrongValue(t *testing.T) {
	s := NewSolver(quineProgram(t))
	assert.Error(t, s.Verify(1))
}

func TestCandidateTree(t *testing.T) {
	s := NewSolver(quineProgram(t))
	s.EnableTree()
	a, err := s.FindQuine()
	require.NoError(t, err)
	require.Equal(t, uint64(117440), a)

	tree := s.Tree()
	assert.Contains(t, tree, "target 0,3,5,4,3,0")
	assert.Contains(t, tree, "a=117440")
}
