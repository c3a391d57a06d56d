// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

// Apply evaluates op over a and b, producing the unique diagram for the
// pointwise combination of the functions a and b represent (spec 4.6).
// The recursion follows the standard top-down shared-diagram scheme:
// terminal pairs are resolved directly by op.Fn, an absorbing operand
// short-circuits without recursing into the other operand at all, and
// every other call is memoized in the manager's shared operation cache
// keyed by (op.ID, a, b) so that a diamond in the DAG is only computed
// once.
func (m *Manager) Apply(op Op, a, b *Node) (*Node, error) {
	if op.ID == _OPID_MAXB && !m.isHomogeneous() {
		return nil, m.seterror(wrapf(ErrPrecondViolation, "maxb is only defined on a homogeneous manager"))
	}
	id, err := m.apply(op, m.resolve(a), m.resolve(b))
	if err != nil {
		return nil, m.seterror(err)
	}
	return m.own(id), nil
}

func (m *Manager) isHomogeneous() bool {
	for _, d := range m.domain[1:] {
		if d != m.domain[0] {
			return false
		}
	}
	return true
}

func (m *Manager) isTerminalID(id int32) (int32, bool) {
	n := &m.pool.nodes[id]
	if n.isTerminal() {
		return n.value, true
	}
	return 0, false
}

func (m *Manager) apply(op Op, a, b int32) (int32, error) {
	av, aIsTerm := m.isTerminalID(a)
	bv, bIsTerm := m.isTerminalID(b)
	if aIsTerm && bIsTerm {
		return m.terminal(op.Fn(av, bv))
	}
	if aIsTerm || bIsTerm {
		x, y := Nondetermined, Nondetermined
		if aIsTerm {
			x = av
		} else {
			y = bv
		}
		if r := op.Fn(x, y); r != Nondetermined {
			return m.terminal(r)
		}
	}
	if op.Absorbing != nil {
		if aIsTerm && av == *op.Absorbing {
			return a, nil
		}
		if bIsTerm && bv == *op.Absorbing {
			return b, nil
		}
	}
	if op.Commutative && a > b {
		a, b = b, a
	}
	if r, ok := m.cache.lookup(op.ID, a, b); ok {
		return r, nil
	}

	levelA, levelB := m.pool.nodes[a].level, m.pool.nodes[b].level
	level := levelA
	if levelB < level {
		level = levelB
	}
	domain := m.domain[level]
	sons := make([]int32, domain)
	for i := int32(0); i < domain; i++ {
		sa, sb := a, b
		if levelA == level {
			sa = m.pool.nodes[a].sons[i]
		}
		if levelB == level {
			sb = m.pool.nodes[b].sons[i]
		}
		r, err := m.apply(op, sa, sb)
		if err != nil {
			return -1, err
		}
		sons[i] = r
	}
	id, err := m.makeNode(level, sons)
	if err != nil {
		return -1, err
	}
	m.cache.store(op.ID, a, b, id)
	return id, nil
}

// LeftFold folds op across nodes left to right: op(...op(op(n0, n1), n2)....).
// It is the natural choice when op is not commutative, or when nodes
// arrives already ordered in a way worth preserving.
func (m *Manager) LeftFold(op Op, nodes []*Node) (*Node, error) {
	if len(nodes) == 0 {
		return nil, m.seterror(wrapf(ErrInvalidArgument, "LeftFold needs at least one node"))
	}
	acc := nodes[0]
	for _, n := range nodes[1:] {
		var err error
		acc, err = m.Apply(op, acc, n)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// TreeFold folds op across nodes pairwise, halving the list each round.
// For a commutative, associative op this produces the same result as
// LeftFold but tends to build far fewer intermediate nodes, since each
// round combines diagrams of comparable size instead of growing one
// accumulator against every other operand in turn.
func (m *Manager) TreeFold(op Op, nodes []*Node) (*Node, error) {
	if len(nodes) == 0 {
		return nil, m.seterror(wrapf(ErrInvalidArgument, "TreeFold needs at least one node"))
	}
	work := append([]*Node(nil), nodes...)
	for len(work) > 1 {
		next := make([]*Node, 0, (len(work)+1)/2)
		for i := 0; i < len(work); i += 2 {
			if i+1 == len(work) {
				next = append(next, work[i])
				continue
			}
			r, err := m.Apply(op, work[i], work[i+1])
			if err != nil {
				return nil, err
			}
			next = append(next, r)
		}
		work = next
	}
	return work[0], nil
}
