// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

// SetAutoReorder sets the manager's auto-reorder flag. The flag is only
// recorded: no code path reads it, so the manager never runs a sifting
// pass on its own; ForceReorder must be called explicitly.
func (m *Manager) SetAutoReorder(on bool) {
	m.autoReorder = on
}

// swapAdjacent exchanges the variables at level and level+1, preserving
// the function every node currently represents (spec 4.10, invariant
// I1/I2 must hold again once it returns). Both levels must share the
// same domain size; the manager does not support reordering a
// heterogeneous pair of levels, since doing so would require moving a
// node between unique tables whose domain-keyed unique hash differs in
// shape. Nodes above level are untouched: a node's sons array still
// names the correct ids because this function overwrites ids in place
// wherever the function represented by that id is unchanged, and only
// introduces an id remap (resolved lazily by Node.resolve) when two
// distinct pre-swap ids turn out to represent the same function after
// the exchange.
func (m *Manager) swapAdjacent(level int32) error {
	if level < 0 || level+1 >= m.varnum {
		return wrapf(ErrInvalidArgument, "level %d has no next level to swap with", level)
	}
	if m.domain[level] != m.domain[level+1] {
		return wrapf(ErrPrecondViolation, "swapping levels %d and %d needs equal domain sizes", level, level+1)
	}
	d := m.domain[level]
	tableI := m.tables[level]

	var affected []int32
	for _, head := range tableI.buckets {
		for id := head; id != -1; id = m.pool.nodes[id].next {
			affected = append(affected, id)
		}
	}
	for _, id := range affected {
		tableI.remove(m.pool, id)
	}

	for _, id := range affected {
		sonsA := append([]int32(nil), m.pool.nodes[id].sons...)
		newSons := make([]int32, d)
		for b := int32(0); b < d; b++ {
			innerSons := make([]int32, d)
			for a := int32(0); a < d; a++ {
				sa := sonsA[a]
				if !m.nodeIsTerminal(sa) && m.nodeLevel(sa) == level+1 {
					innerSons[a] = m.nodeSons(sa)[b]
				} else {
					innerSons[a] = sa
				}
			}
			nid, err := m.makeNode(level+1, innerSons)
			if err != nil {
				return err
			}
			newSons[b] = nid
		}
		for _, sa := range sonsA {
			m.pool.nodes[sa].refcou--
		}
		m.installSwapped(id, level, newSons, tableI)
	}

	// The canonical Variable() node cached for level and level+1 (if any)
	// may have been folded into something else above, or had its content
	// rewritten to match whichever variable now occupies that position;
	// either way the cache is stale and must be rebuilt lazily.
	delete(m.vars, level)
	delete(m.vars, level+1)

	m.version++
	m.cache.clear()
	return nil
}

// installSwapped gives id its post-swap content. If some other node
// already represents that exact (level, newSons) combination, id is
// retired in favor of that node and every outstanding Node handle for id
// is transparently redirected the next time it is resolved.
func (m *Manager) installSwapped(id, level int32, newSons []int32, tableI *uniqueTable) {
	if other, ok := tableI.find(m.pool, level, newSons); ok {
		m.remap[id] = other
		m.refs[other] += m.refs[id]
		delete(m.refs, id)
		m.pool.free(id)
		return
	}
	m.pool.nodes[id] = ddNode{level: level, sons: newSons, inUse: true, refcou: m.pool.nodes[id].refcou}
	tableI.insert(m.pool, id)
}

// ForceReorder runs one full top-to-bottom sifting pass: for every
// level, in turn, it walks the level down through the diagram by
// repeated adjacent swaps, keeping whichever position minimized the
// total live node count, then leaves that level there before moving on
// to the next. This is the same "sift to best position" heuristic as
// the teacher's bdd_reorder family, generalized to operate through
// swapAdjacent instead of a pair of fixed bdd_swapvar primitives.
func (m *Manager) ForceReorder() error {
	for level := int32(0); level < m.varnum-1; level++ {
		if m.domain[level] != m.domain[level+1] {
			continue
		}
		bestCost := m.totalLiveNodes()
		bestDepth := 0
		depth := 0
		for l := level; l+1 < m.varnum && m.domain[l] == m.domain[l+1]; l++ {
			if err := m.swapAdjacent(l); err != nil {
				return err
			}
			depth++
			cost := m.totalLiveNodes()
			if cost < bestCost {
				bestCost = cost
				bestDepth = depth
			}
		}
		for depth > bestDepth {
			depth--
			if err := m.swapAdjacent(level + int32(depth)); err != nil {
				return err
			}
		}
	}
	m.logDebugf("reorder pass complete, %d live nodes", m.totalLiveNodes())
	if m.stats != nil {
		m.stats.reorderRuns.Inc()
	}
	m.sample()
	return nil
}

func (m *Manager) totalLiveNodes() int {
	n := 0
	for _, t := range m.tables {
		n += int(t.count)
	}
	return n
}
