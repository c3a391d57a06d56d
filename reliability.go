// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

import "math/big"

// ProbabilityMatrix gives, for every level, the probability distribution
// of that level's variable: ProbabilityMatrix[level][v] is the
// probability that the component at level is in state v. A component
// with binary state (the common case) has ProbabilityMatrix[level] of
// length 2.
type ProbabilityMatrix [][]float64

// CalculateProbabilities propagates probs bottom-up over root's diagram,
// storing each node's P(reach a value-1-or-greater outcome from here)
// into the node's scratch slot (ddNode.data). This slot is shared across
// every diagram that happens to reference the same hash-consed node, so
// the computation is only ever valid for the probs it was last run
// with; call it again before reading results under a different probs.
func (m *Manager) CalculateProbabilities(root *Node, probs ProbabilityMatrix) error {
	if int32(len(probs)) != m.varnum {
		return m.seterror(wrapf(ErrInvalidArgument, "probability matrix has %d levels, want %d", len(probs), m.varnum))
	}
	m.postOrder(m.resolve(root), func(id int32) {
		n := &m.pool.nodes[id]
		if n.isTerminal() {
			n.data = 0
			if n.value >= 1 {
				n.data = 1
			}
			return
		}
		var p float64
		for v, s := range n.sons {
			p += probs[n.level][v] * m.pool.nodes[s].data
		}
		n.data = p
	})
	return nil
}

// GetProbability returns root's probability as last computed by
// CalculateProbabilities.
func (m *Manager) GetProbability(root *Node) (float64, error) {
	return m.pool.nodes[m.resolve(root)].data, nil
}

// domainProduct returns the size of the whole state space, the product
// of every level's domain size.
func (m *Manager) domainProduct() *big.Int {
	total := big.NewInt(1)
	for _, d := range m.domain {
		total.Mul(total, big.NewInt(int64(d)))
	}
	return total
}

func indicatorEq(target int32) func(int32) int32 {
	return func(v int32) int32 {
		if v == target {
			return 1
		}
		return 0
	}
}

func indicatorGe(j int32) func(int32) int32 {
	return func(v int32) int32 {
		if v >= j {
			return 1
		}
		return 0
	}
}

func indicatorLt(j int32) func(int32) int32 {
	return func(v int32) int32 {
		if v < j {
			return 1
		}
		return 0
	}
}

// Availability returns the probability that root's structure function
// evaluates to a state at or above j, availability(j,P,d) in spec
// terms. It builds the j-threshold indicator of root and runs it
// through CalculateProbabilities, which already computes exactly
// P(reach a 1-valued terminal) on a diagram that has been reduced to
// 0/1 outcomes.
func (m *Manager) Availability(root *Node, j int32, probs ProbabilityMatrix) (float64, error) {
	indicator, err := m.Transform(root, indicatorGe(j))
	if err != nil {
		return 0, err
	}
	if err := m.CalculateProbabilities(indicator, probs); err != nil {
		return 0, err
	}
	return m.GetProbability(indicator)
}

// Unavailability is 1 - Availability(root, j, probs), the probability
// that root's structure function is strictly below j.
func (m *Manager) Unavailability(root *Node, j int32, probs ProbabilityMatrix) (float64, error) {
	a, err := m.Availability(root, j, probs)
	if err != nil {
		return 0, err
	}
	return 1 - a, nil
}

// StateFrequency returns the purely combinatorial fraction of
// assignments under which root's structure function evaluates to
// exactly j: satisfy_count(j,d) / |domain|. It carries no probability
// weighting at all, unlike Availability/Unavailability.
func (m *Manager) StateFrequency(root *Node, j int32) (float64, error) {
	count, err := m.SatisfyCount(root, j)
	if err != nil {
		return 0, err
	}
	f := new(big.Float).Quo(new(big.Float).SetInt(count), new(big.Float).SetInt(m.domainProduct()))
	result, _ := f.Float64()
	return result, nil
}

// StructuralImportance returns the fraction of assignments of every
// variable other than level under which flipping level from 0 to 1 also
// flips root's value from 0 to 1 -- the combinatorial, probability-free
// importance measure.
func (m *Manager) StructuralImportance(root *Node, level int32) (float64, error) {
	d, err := m.DPLD(root, level, VarChange{From: 0, To: 1}, DPLDBasic(0, 1))
	if err != nil {
		return 0, err
	}
	count, err := m.SatisfyCount(d, 1)
	if err != nil {
		return 0, err
	}
	// d does not depend on level, so count already includes every one of
	// level's domain values; dividing by the full domain product gives the
	// fraction over the other variables' assignments.
	total := m.domainProduct()
	f := new(big.Float).Quo(new(big.Float).SetInt(count), new(big.Float).SetInt(total))
	result, _ := f.Float64()
	return result, nil
}

// BirnbaumImportance returns P(flipping level from 0 to 1 also flips
// root's value from 0 to 1) under probs -- the probability-weighted
// sibling of StructuralImportance.
func (m *Manager) BirnbaumImportance(root *Node, level int32, probs ProbabilityMatrix) (float64, error) {
	d, err := m.DPLD(root, level, VarChange{From: 0, To: 1}, DPLDBasic(0, 1))
	if err != nil {
		return 0, err
	}
	return m.Availability(d, 1, probs)
}

// FussellVeseleyImportance returns P(level is in a minimal cut that is
// currently triggered | root is down), the measure of how much level's
// failure contributes to overall system failure. It is computed from
// the minimal cut vectors (MCVs) rather than from Birnbaum's derivative,
// since Fussell-Vesely credits every minimal cut level participates in,
// not just the marginal effect of level alone.
func (m *Manager) FussellVeseleyImportance(root *Node, level int32, probs ProbabilityMatrix) (float64, error) {
	cuts, err := m.MCVs(root, 1)
	if err != nil {
		return 0, err
	}
	systemDown, err := m.Unavailability(root, 1, probs)
	if err != nil {
		return 0, err
	}
	if systemDown == 0 {
		return 0, nil
	}
	var involved float64
	for _, cut := range cuts {
		if cut[level] != 0 {
			continue
		}
		p := 1.0
		for lvl, v := range cut {
			p *= probs[lvl][v]
		}
		involved += p
	}
	return involved / systemDown, nil
}

func leq(a, b []int32) bool {
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}
	return true
}

func equalVec(a, b []int32) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// minimalVectors keeps the componentwise-minimal elements of list, the
// minimal elements of an upward-closed set: used for MPVs.
func minimalVectors(list [][]int32) [][]int32 {
	var result [][]int32
	for i, a := range list {
		minimal := true
		for j, b := range list {
			if i == j {
				continue
			}
			if leq(b, a) && !equalVec(a, b) {
				minimal = false
				break
			}
		}
		if minimal {
			result = append(result, a)
		}
	}
	return result
}

// maximalVectors keeps the componentwise-maximal elements of list, the
// maximal elements of a downward-closed set: used for MCVs.
func maximalVectors(list [][]int32) [][]int32 {
	var result [][]int32
	for i, a := range list {
		maximal := true
		for j, b := range list {
			if i == j {
				continue
			}
			if leq(a, b) && !equalVec(a, b) {
				maximal = false
				break
			}
		}
		if maximal {
			result = append(result, a)
		}
	}
	return result
}

// MCVs returns the minimal cut vectors of root at threshold j: the
// componentwise-largest assignments under which root evaluates to
// strictly less than j. Cut vectors form a downward-closed set, so the
// "minimal" cuts -- fewest components held at their lowest state while
// still causing failure -- are its maximal elements, not its minimal
// ones.
func (m *Manager) MCVs(root *Node, j int32) ([][]int32, error) {
	indicator, err := m.Transform(root, indicatorLt(j))
	if err != nil {
		return nil, err
	}
	all, err := m.SatisfyAll(indicator, 1)
	if err != nil {
		return nil, err
	}
	return maximalVectors(all), nil
}

// MPVs returns the minimal path vectors of root at threshold j: the
// componentwise-smallest assignments under which root evaluates to a
// state at or above j.
func (m *Manager) MPVs(root *Node, j int32) ([][]int32, error) {
	indicator, err := m.Transform(root, indicatorGe(j))
	if err != nil {
		return nil, err
	}
	all, err := m.SatisfyAll(indicator, 1)
	if err != nil {
		return nil, err
	}
	return minimalVectors(all), nil
}
