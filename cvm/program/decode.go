package program

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Text input format:
//
//	Register A: <uint>
//	Register B: <uint>
//	Register C: <uint>
//
//	Program: <opcode>,<operand>,...
var (
	registerARe = regexp.MustCompile(`Register A: (\d+)`)
	registerBRe = regexp.MustCompile(`Register B: (\d+)`)
	registerCRe = regexp.MustCompile(`Register C: (\d+)`)
	programRe   = regexp.MustCompile(`Program: ([0-9,]+)`)
)

// Snapshot is a decoded input: initial register contents plus the program.
type Snapshot struct {
	A, B, C uint64
	Program *Program
}

// DecodeText decodes the text input format. Any missing or malformed field is
// an error; there is no partial result.
func DecodeText(data []byte) (*Snapshot, error) {
	text := string(data)

	a, err := matchRegister(registerARe, text, "A")
	if err != nil {
		return nil, err
	}
	b, err := matchRegister(registerBRe, text, "B")
	if err != nil {
		return nil, err
	}
	c, err := matchRegister(registerCRe, text, "C")
	if err != nil {
		return nil, err
	}

	m := programRe.FindStringSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("no match for Program line")
	}
	fields := strings.Split(m[1], ",")
	digits := make([]byte, 0, len(fields))
	for _, field := range fields {
		d, err := strconv.ParseUint(field, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("cannot parse program digit %q: %w", field, err)
		}
		digits = append(digits, byte(d))
	}

	p, err := NewProgram(digits)
	if err != nil {
		return nil, err
	}
	return &Snapshot{A: a, B: b, C: c, Program: p}, nil
}

func matchRegister(re *regexp.Regexp, text string, name string) (uint64, error) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("no match for Register %s", name)
	}
	v, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse Register %s: %w", name, err)
	}
	return v, nil
}

func errOddDigits(n int) error {
	return fmt.Errorf("program has %d digits: opcode/operand pairs require an even count", n)
}
