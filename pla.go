// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// FromPLA builds a BDD from a small subset of the Espresso PLA format:
// one product term per non-blank, non-comment line, written as a
// literal string over {0,1,-} (don't-care) followed by whitespace and
// an output value. Each term becomes the AND of its fixed literals
// (TreeFold, since AND is commutative and associative and this keeps
// the intermediate diagrams small); terms are then combined with OR
// across the file (LeftFold, since the number of terms read is not
// known ahead of time). Lines beginning with '.' are ignored, matching
// PLA's directive syntax (.i, .o, .p, .e) which this reader does not
// otherwise interpret.
func (m *Manager) FromPLA(r io.Reader) (*Node, error) {
	scanner := bufio.NewScanner(r)
	var terms []*Node
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ".") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, m.seterror(wrapf(ErrInvalidArgument, "malformed PLA line: %q", line))
		}
		literals, output := fields[0], fields[1]
		out, err := strconv.ParseInt(output, 10, 32)
		if err != nil {
			return nil, m.seterror(wrapf(ErrInvalidArgument, "malformed PLA output value: %q", output))
		}
		if out == 0 {
			continue
		}
		if int32(len(literals)) != m.varnum {
			return nil, m.seterror(wrapf(ErrInvalidArgument, "term %q has %d literals, want %d", literals, len(literals), m.varnum))
		}
		var factors []*Node
		for level, c := range literals {
			switch c {
			case '0':
				v, err := m.Variable(int32(level))
				if err != nil {
					return nil, err
				}
				lit, err := m.Transform(v, indicatorEq(0))
				if err != nil {
					return nil, err
				}
				factors = append(factors, lit)
			case '1':
				v, err := m.Variable(int32(level))
				if err != nil {
					return nil, err
				}
				lit, err := m.Transform(v, indicatorNeq(0))
				if err != nil {
					return nil, err
				}
				factors = append(factors, lit)
			case '-':
				// don't-care: contributes no factor to the term
			default:
				return nil, m.seterror(wrapf(ErrInvalidArgument, "invalid literal %q in term %q", c, literals))
			}
		}
		if len(factors) == 0 {
			one, err := m.Constant(1)
			if err != nil {
				return nil, err
			}
			terms = append(terms, one)
			continue
		}
		term, err := m.TreeFold(OpAnd, factors)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	if err := scanner.Err(); err != nil {
		return nil, m.seterror(wrapf(ErrInvalidArgument, "reading PLA input: %v", err))
	}
	if len(terms) == 0 {
		return m.Constant(0)
	}
	return m.LeftFold(OpOr, terms)
}
