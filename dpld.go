// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

// VarChange names the before/after values of the variable a Direct
// Partial Logic Derivative (DPLD) perturbs.
type VarChange struct {
	From, To int32
}

// DPLDDelta decides, given the two cofactors of a structure function
// with a variable fixed to vc.From and vc.To, the diagram that is 1
// exactly where the function's value change matches one of the DPLD
// parameterizations (spec 4.11: basic, type-1, type-2, type-3, each
// with an increase/decrease split). f1 and f2 never depend on the
// cofactored variable themselves.
type DPLDDelta func(m *Manager, f1, f2 *Node) (*Node, error)

// DPLDBasic requires the function to move from exactly from to exactly
// to.
func DPLDBasic(from, to int32) DPLDDelta {
	return func(m *Manager, f1, f2 *Node) (*Node, error) {
		ind1, err := m.Transform(f1, indicatorEq(from))
		if err != nil {
			return nil, err
		}
		ind2, err := m.Transform(f2, indicatorEq(to))
		if err != nil {
			return nil, err
		}
		return m.Apply(OpAnd, ind1, ind2)
	}
}

// DPLDType1Increase requires the function to sit exactly at s before the
// perturbation and strictly above s after.
func DPLDType1Increase(s int32) DPLDDelta {
	return func(m *Manager, f1, f2 *Node) (*Node, error) {
		ind1, err := m.Transform(f1, indicatorEq(s))
		if err != nil {
			return nil, err
		}
		ind2, err := m.Transform(f2, indicatorGt(s))
		if err != nil {
			return nil, err
		}
		return m.Apply(OpAnd, ind1, ind2)
	}
}

// DPLDType1Decrease requires the function to sit exactly at s before the
// perturbation and strictly below s after.
func DPLDType1Decrease(s int32) DPLDDelta {
	return func(m *Manager, f1, f2 *Node) (*Node, error) {
		ind1, err := m.Transform(f1, indicatorEq(s))
		if err != nil {
			return nil, err
		}
		ind2, err := m.Transform(f2, indicatorLt(s))
		if err != nil {
			return nil, err
		}
		return m.Apply(OpAnd, ind1, ind2)
	}
}

// DPLDType2Increase requires the function's value after the
// perturbation to be strictly greater than before, with no reference to
// any fixed threshold.
func DPLDType2Increase() DPLDDelta {
	return func(m *Manager, f1, f2 *Node) (*Node, error) {
		return m.Apply(OpLt, f1, f2)
	}
}

// DPLDType2Decrease requires the function's value after the
// perturbation to be strictly less than before.
func DPLDType2Decrease() DPLDDelta {
	return func(m *Manager, f1, f2 *Node) (*Node, error) {
		return m.Apply(OpGt, f1, f2)
	}
}

// DPLDType3Increase requires the function to sit strictly below s before
// the perturbation and at or above s after -- the level-s threshold is
// crossed upward.
func DPLDType3Increase(s int32) DPLDDelta {
	return func(m *Manager, f1, f2 *Node) (*Node, error) {
		ind1, err := m.Transform(f1, indicatorLt(s))
		if err != nil {
			return nil, err
		}
		ind2, err := m.Transform(f2, indicatorGe(s))
		if err != nil {
			return nil, err
		}
		return m.Apply(OpAnd, ind1, ind2)
	}
}

// DPLDType3Decrease requires the function to sit at or above s before
// the perturbation and strictly below s after -- the level-s threshold
// is crossed downward.
func DPLDType3Decrease(s int32) DPLDDelta {
	return func(m *Manager, f1, f2 *Node) (*Node, error) {
		ind1, err := m.Transform(f1, indicatorGe(s))
		if err != nil {
			return nil, err
		}
		ind2, err := m.Transform(f2, indicatorLt(s))
		if err != nil {
			return nil, err
		}
		return m.Apply(OpAnd, ind1, ind2)
	}
}

func indicatorGt(target int32) func(int32) int32 {
	return func(v int32) int32 {
		if v > target {
			return 1
		}
		return 0
	}
}

func indicatorNeq(target int32) func(int32) int32 {
	return func(v int32) int32 {
		if v != target {
			return 1
		}
		return 0
	}
}

// DPLD builds the diagram that is 1 exactly on the assignments of every
// variable other than level under which flipping level from vc.From to
// vc.To changes root's value the way delta describes (spec 4.11). The
// result never itself depends on level: both cofactors eliminate it.
func (m *Manager) DPLD(root *Node, level int32, vc VarChange, delta DPLDDelta) (*Node, error) {
	f1, err := m.Cofactor(root, level, vc.From)
	if err != nil {
		return nil, err
	}
	f2, err := m.Cofactor(root, level, vc.To)
	if err != nil {
		return nil, err
	}
	return delta(m, f1, f2)
}

// effectiveLevel returns the level id would branch on if it had to: its
// own level for an internal node, or a level past the last real one for
// a terminal, so that "does this node's structure reach past level i"
// can be tested uniformly with a single comparison.
func (m *Manager) effectiveLevel(id int32) int32 {
	if m.nodeIsTerminal(id) {
		return m.varnum
	}
	return m.nodeLevel(id)
}

// ToDpldE decorates dpld, a DPLD result that is itself independent of
// level i (both its cofactors eliminated i), with a fresh branch on i:
// the from branch keeps dpld's value, every other branch leads to an
// Undefined terminal. This lets a DPLD that only makes sense "once
// variable i is known to move away from from" be combined with DPLDs
// for other variables without conflating the levels they each speak
// for (spec 4.11). MCVs and MPVs do not use it; they enumerate and
// filter threshold indicators directly.
func (m *Manager) ToDpldE(dpld *Node, i int32, from int32) (*Node, error) {
	und, err := m.terminal(Undefined)
	if err != nil {
		return nil, m.seterror(err)
	}
	id, err := m.toDpldE(m.resolve(dpld), i, from, und, newLocalCache())
	if err != nil {
		return nil, m.seterror(err)
	}
	return m.own(id), nil
}

func (m *Manager) toDpldE(id, i, from, und int32, cache *localCache) (int32, error) {
	if m.effectiveLevel(id) > i {
		sons := make([]int32, m.domain[i])
		for v := range sons {
			if int32(v) == from {
				sons[v] = id
			} else {
				sons[v] = und
			}
		}
		return m.makeNode(i, sons)
	}
	if v, ok := cache.lookup(id); ok {
		return v, nil
	}
	sons := m.nodeSons(id)
	newSons := make([]int32, len(sons))
	for k, s := range sons {
		r, err := m.toDpldE(s, i, from, und, cache)
		if err != nil {
			return -1, err
		}
		newSons[k] = r
	}
	nid, err := m.makeNode(m.nodeLevel(id), newSons)
	if err != nil {
		return -1, err
	}
	cache.store(id, nid)
	return nid, nil
}
