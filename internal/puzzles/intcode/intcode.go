// Package intcode implements the small Intcode machine used by 2019 puzzles.
package intcode

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/aoc/internal/input"
)

const (
	opAdd  = 1
	opMul  = 2
	opHalt = 99
)

var (
	ErrUnknownOpcode = errors.New("intcode: unknown opcode")
	ErrOutOfBounds   = errors.New("intcode: address out of bounds")
)

// Program is an immutable Intcode image.
type Program []int

// Parse decodes a comma-separated program; every element must be an integer.
func Parse(in input.Input) (Program, error) {
	p, err := input.DecodeMany(in, ",", input.Int, input.OnElementError(input.Fail), input.Named("intcode"))
	if err != nil {
		return nil, err
	}
	if len(p) == 0 {
		return nil, input.Errorf("intcode", in.Text(), "empty program")
	}
	return Program(p), nil
}

// Machine executes a copy of a Program.
type Machine struct {
	mem []int
	ip  int
}

// New loads a copy of p so the program image is never modified.
func New(p Program) *Machine {
	mem := make([]int, len(p))
	copy(mem, p)
	return &Machine{mem: mem}
}

// Poke writes v at addr before or after a run.
func (m *Machine) Poke(addr, v int) error {
	if addr < 0 || addr >= len(m.mem) {
		return fmt.Errorf("%w: %d", ErrOutOfBounds, addr)
	}
	m.mem[addr] = v
	return nil
}

// Peek reads addr.
func (m *Machine) Peek(addr int) (int, error) {
	if addr < 0 || addr >= len(m.mem) {
		return 0, fmt.Errorf("%w: %d", ErrOutOfBounds, addr)
	}
	return m.mem[addr], nil
}

// Run executes until halt, an error, or ctx is done.
func (m *Machine) Run(ctx context.Context) error {
	for steps := 0; ; steps++ {
		if steps%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		op, err := m.Peek(m.ip)
		if err != nil {
			return err
		}
		switch op {
		case opHalt:
			return nil
		case opAdd, opMul:
			a, err := m.indirect(m.ip + 1)
			if err != nil {
				return err
			}
			b, err := m.indirect(m.ip + 2)
			if err != nil {
				return err
			}
			dst, err := m.Peek(m.ip + 3)
			if err != nil {
				return err
			}
			v := a + b
			if op == opMul {
				v = a * b
			}
			if err := m.Poke(dst, v); err != nil {
				return err
			}
			m.ip += 4
		default:
			return fmt.Errorf("%w %d at %d", ErrUnknownOpcode, op, m.ip)
		}
	}
}

func (m *Machine) indirect(addr int) (int, error) {
	ptr, err := m.Peek(addr)
	if err != nil {
		return 0, err
	}
	return m.Peek(ptr)
}

// Dump renders memory as "[a, b, c]".
func (m *Machine) Dump() string {
	parts := make([]string, len(m.mem))
	for i, v := range m.mem {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
