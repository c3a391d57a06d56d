// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

import (
	"math"
	"math/big"
	"sort"
)

func (m *Manager) nodeLevel(id int32) int32    { return m.pool.nodes[id].level }
func (m *Manager) nodeSons(id int32) []int32   { return m.pool.nodes[id].sons }
func (m *Manager) nodeValue(id int32) int32    { return m.pool.nodes[id].value }
func (m *Manager) nodeIsTerminal(id int32) bool { return m.pool.nodes[id].sons == nil }

// Evaluate follows assignment down the diagram and returns the terminal
// value reached. assignment must have one entry per level; entries for
// levels the diagram does not branch on are ignored.
func (m *Manager) Evaluate(root *Node, assignment []int32) (int32, error) {
	if int32(len(assignment)) != m.varnum {
		return 0, m.seterror(wrapf(ErrInvalidArgument, "assignment has %d entries, want %d", len(assignment), m.varnum))
	}
	cur := m.resolve(root)
	for !m.nodeIsTerminal(cur) {
		lvl := m.nodeLevel(cur)
		v := assignment[lvl]
		sons := m.nodeSons(cur)
		if v < 0 || int(v) >= len(sons) {
			return 0, m.seterror(wrapf(ErrInvalidArgument, "value %d outside domain at level %d", v, lvl))
		}
		cur = sons[v]
	}
	return m.nodeValue(cur), nil
}

// Cofactor restricts root to the branch taken when the variable at level
// is fixed to value, the building block behind DPLD (dpld.go) and
// partial evaluation generally.
func (m *Manager) Cofactor(root *Node, level, value int32) (*Node, error) {
	id, err := m.cofactor(m.resolve(root), level, value, newLocalCache())
	if err != nil {
		return nil, m.seterror(err)
	}
	return m.own(id), nil
}

func (m *Manager) cofactor(id, level, value int32, cache *localCache) (int32, error) {
	if m.nodeIsTerminal(id) {
		return id, nil
	}
	lvl := m.nodeLevel(id)
	if lvl > level {
		return id, nil
	}
	sons := m.nodeSons(id)
	if lvl == level {
		if value < 0 || int(value) >= len(sons) {
			return -1, wrapf(ErrInvalidArgument, "value %d outside domain at level %d", value, level)
		}
		return sons[value], nil
	}
	if v, ok := cache.lookup(id); ok {
		return v, nil
	}
	newSons := make([]int32, len(sons))
	for i, s := range sons {
		r, err := m.cofactor(s, level, value, cache)
		if err != nil {
			return -1, err
		}
		newSons[i] = r
	}
	nid, err := m.makeNode(lvl, newSons)
	if err != nil {
		return -1, err
	}
	cache.store(id, nid)
	return nid, nil
}

// CofactorMany applies Cofactor for every (level, value) pair in order.
func (m *Manager) CofactorMany(root *Node, levels, values []int32) (*Node, error) {
	if len(levels) != len(values) {
		return nil, m.seterror(wrapf(ErrInvalidArgument, "levels and values must have the same length"))
	}
	cur := root
	for i, lvl := range levels {
		next, err := m.Cofactor(cur, lvl, values[i])
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Transform rebuilds root with every terminal value v replaced by f(v).
func (m *Manager) Transform(root *Node, f func(int32) int32) (*Node, error) {
	id, err := m.transform(m.resolve(root), f, newLocalCache())
	if err != nil {
		return nil, m.seterror(err)
	}
	return m.own(id), nil
}

func (m *Manager) transform(id int32, f func(int32) int32, cache *localCache) (int32, error) {
	if m.nodeIsTerminal(id) {
		return m.terminal(f(m.nodeValue(id)))
	}
	if v, ok := cache.lookup(id); ok {
		return v, nil
	}
	lvl := m.nodeLevel(id)
	sons := m.nodeSons(id)
	newSons := make([]int32, len(sons))
	for i, s := range sons {
		r, err := m.transform(s, f, cache)
		if err != nil {
			return -1, err
		}
		newSons[i] = r
	}
	nid, err := m.makeNode(lvl, newSons)
	if err != nil {
		return -1, err
	}
	cache.store(id, nid)
	return nid, nil
}

// Reduce rebuilds root through the manager's hash-consing constructor,
// folding together any nodes that happen to represent the same function
// but were not shared, e.g. a diagram assembled node-by-node outside
// makeNode by FromExpr or FromPLA before they settled on it directly.
func (m *Manager) Reduce(root *Node) (*Node, error) {
	id, err := m.reduce(m.resolve(root), newLocalCache())
	if err != nil {
		return nil, m.seterror(err)
	}
	return m.own(id), nil
}

func (m *Manager) reduce(id int32, cache *localCache) (int32, error) {
	if m.nodeIsTerminal(id) {
		return id, nil
	}
	if v, ok := cache.lookup(id); ok {
		return v, nil
	}
	lvl := m.nodeLevel(id)
	sons := m.nodeSons(id)
	newSons := make([]int32, len(sons))
	for i, s := range sons {
		r, err := m.reduce(s, cache)
		if err != nil {
			return -1, err
		}
		newSons[i] = r
	}
	nid, err := m.makeNode(lvl, newSons)
	if err != nil {
		return -1, err
	}
	cache.store(id, nid)
	return nid, nil
}

func (m *Manager) skipFactor(from, to int32) *big.Int {
	f := big.NewInt(1)
	for l := from + 1; l < to; l++ {
		f.Mul(f, big.NewInt(int64(m.domain[l])))
	}
	return f
}

// SatisfyCount returns the exact number of assignments of all varnum
// variables under which root evaluates to j, accounting for the
// variables the diagram skips over (don't-care levels each multiply the
// count by their domain size, the standard satcount adjustment).
func (m *Manager) SatisfyCount(root *Node, j int32) (*big.Int, error) {
	memo := make(map[int32]*big.Int)
	rid := m.resolve(root)
	c := m.satisfyCount(rid, j, memo)
	top := m.skipFactor(-1, m.nodeLevel(rid))
	return new(big.Int).Mul(c, top), nil
}

func (m *Manager) satisfyCount(id, j int32, memo map[int32]*big.Int) *big.Int {
	if v, ok := memo[id]; ok {
		return v
	}
	var result *big.Int
	if m.nodeIsTerminal(id) {
		if m.nodeValue(id) == j {
			result = big.NewInt(1)
		} else {
			result = big.NewInt(0)
		}
	} else {
		lvl := m.nodeLevel(id)
		sum := big.NewInt(0)
		for _, s := range m.nodeSons(id) {
			c := m.satisfyCount(s, j, memo)
			factor := m.skipFactor(lvl, m.nodeLevel(s))
			sum.Add(sum, new(big.Int).Mul(c, factor))
		}
		result = sum
	}
	memo[id] = result
	return result
}

// SatisfyCountLn is the float64 fast path for SatisfyCount on a binary
// (BDD) manager: it sacrifices exactness on diagrams whose count would
// overflow float64 in exchange for avoiding arbitrary-precision
// arithmetic, returning log2 of SatisfyCount(root, 1) so even
// astronomically large counts stay representable.
func (m *Manager) SatisfyCountLn(root *Node) (float64, error) {
	memo := make(map[int32]float64)
	rid := m.resolve(root)
	c := m.satisfyCountLn(rid, memo)
	top := 0.0
	for l := int32(0); l < m.nodeLevel(rid); l++ {
		top += math.Log2(float64(m.domain[l]))
	}
	return c + top, nil
}

func (m *Manager) satisfyCountLn(id int32, memo map[int32]float64) float64 {
	if v, ok := memo[id]; ok {
		return v
	}
	var result float64
	if m.nodeIsTerminal(id) {
		if m.nodeValue(id) == 1 {
			result = 0 // log2(1)
		} else {
			result = math.Inf(-1) // log2(0)
		}
	} else {
		lvl := m.nodeLevel(id)
		var terms []float64
		maxTerm := math.Inf(-1)
		for _, s := range m.nodeSons(id) {
			ln := m.satisfyCountLn(s, memo)
			if math.IsInf(ln, -1) {
				continue
			}
			skip := 0.0
			for l := lvl + 1; l < m.nodeLevel(s); l++ {
				skip += math.Log2(float64(m.domain[l]))
			}
			terms = append(terms, ln+skip)
			maxTerm = math.Max(maxTerm, ln+skip)
		}
		if len(terms) == 0 {
			result = math.Inf(-1)
		} else {
			// log-sum-exp, so the sum is never formed outside log space
			sum := 0.0
			for _, t := range terms {
				sum += math.Exp2(t - maxTerm)
			}
			result = maxTerm + math.Log2(sum)
		}
	}
	memo[id] = result
	return result
}

// SatisfyOne returns one full assignment under which root evaluates to
// j, or ErrPrecondViolation if root never reaches j. Don't-care levels
// are filled with 0.
func (m *Manager) SatisfyOne(root *Node, j int32) ([]int32, error) {
	assignment := make([]int32, m.varnum)
	id := m.resolve(root)
	level := int32(0)
	memo := make(map[int32]bool)
	for !m.nodeIsTerminal(id) {
		lvl := m.nodeLevel(id)
		for ; level < lvl; level++ {
			assignment[level] = 0
		}
		sons := m.nodeSons(id)
		chosen := int32(-1)
		for v, s := range sons {
			if m.hasPathToValue(s, j, memo) {
				chosen = int32(v)
				id = s
				break
			}
		}
		if chosen == -1 {
			return nil, m.seterror(wrapf(ErrPrecondViolation, "diagram never evaluates to %d", j))
		}
		assignment[level] = chosen
		level++
	}
	if m.nodeValue(id) != j {
		return nil, m.seterror(wrapf(ErrPrecondViolation, "diagram never evaluates to %d", j))
	}
	for ; level < m.varnum; level++ {
		assignment[level] = 0
	}
	return assignment, nil
}

func (m *Manager) hasPathToValue(id, j int32, memo map[int32]bool) bool {
	if v, ok := memo[id]; ok {
		return v
	}
	var r bool
	if m.nodeIsTerminal(id) {
		r = m.nodeValue(id) == j
	} else {
		for _, s := range m.nodeSons(id) {
			if m.hasPathToValue(s, j, memo) {
				r = true
				break
			}
		}
	}
	memo[id] = r
	return r
}

// SatisfyAll returns every assignment of all varnum variables under
// which root evaluates to j. For any diagram with meaningful don't-care
// levels this can be large; prefer SatisfyAllFunc when the caller wants
// to stop early or avoid materializing the list.
func (m *Manager) SatisfyAll(root *Node, j int32) ([][]int32, error) {
	var results [][]int32
	err := m.SatisfyAllFunc(root, j, func(a []int32) bool {
		results = append(results, append([]int32(nil), a...))
		return true
	})
	return results, err
}

// SatisfyAllFunc enumerates every assignment of root evaluating to j,
// calling yield with each one (the slice is reused between calls; copy
// it to keep it past the callback). Enumeration stops early if yield
// returns false.
func (m *Manager) SatisfyAllFunc(root *Node, j int32, yield func([]int32) bool) error {
	assignment := make([]int32, m.varnum)
	_, err := m.satisfyAll(m.resolve(root), j, 0, assignment, yield)
	return err
}

func (m *Manager) satisfyAll(id, j, level int32, assignment []int32, yield func([]int32) bool) (bool, error) {
	if m.nodeIsTerminal(id) {
		if m.nodeValue(id) != j {
			return true, nil
		}
		return m.fillRemaining(level, assignment, yield)
	}
	lvl := m.nodeLevel(id)
	if level < lvl {
		for v := int32(0); v < m.domain[level]; v++ {
			assignment[level] = v
			cont, err := m.satisfyAll(id, j, level+1, assignment, yield)
			if err != nil || !cont {
				return cont, err
			}
		}
		return true, nil
	}
	for v, s := range m.nodeSons(id) {
		assignment[level] = int32(v)
		cont, err := m.satisfyAll(s, j, level+1, assignment, yield)
		if err != nil || !cont {
			return cont, err
		}
	}
	return true, nil
}

func (m *Manager) fillRemaining(level int32, assignment []int32, yield func([]int32) bool) (bool, error) {
	if level == m.varnum {
		return yield(assignment), nil
	}
	for v := int32(0); v < m.domain[level]; v++ {
		assignment[level] = v
		cont, err := m.fillRemaining(level+1, assignment, yield)
		if err != nil || !cont {
			return cont, err
		}
	}
	return true, nil
}

// DependencySet returns, in increasing order, the levels root's diagram
// actually branches on.
func (m *Manager) DependencySet(root *Node) ([]int32, error) {
	seen := make(map[int32]bool)
	m.preOrder(m.resolve(root), func(id int32) {
		if !m.nodeIsTerminal(id) {
			seen[m.nodeLevel(id)] = true
		}
	})
	levels := make([]int32, 0, len(seen))
	for l := range seen {
		levels = append(levels, l)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
	return levels, nil
}
