// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

// ForceGC reclaims every node unreachable from a live root (spec 4.9).
// Roots are: every node id with a positive external reference count
// (handed out through Node handles or AddRef), plus every cached
// terminal and Variable node, which this package keeps alive for the
// lifetime of the Manager the same way the BuDDy-derived kernel this
// package grew out of stuck its terminals at _MAXREFCOUNT. It is safe
// to call at any time; allocOrGC (used by every node constructor) calls
// it automatically when the manager is configured WithAutoGC(true) and
// the pool runs dry.
func (m *Manager) ForceGC() {
	for id, n := range m.refs {
		if n > 0 {
			m.markLive(id)
		}
	}
	for _, id := range m.vars {
		m.markLive(id)
	}
	for _, id := range m.terminals {
		m.markLive(id)
	}

	for id := range m.pool.nodes {
		n := &m.pool.nodes[id]
		if !n.inUse {
			continue
		}
		if n.mark {
			n.mark = false
			continue
		}
		if n.isTerminal() {
			delete(m.terminals, n.value)
		} else {
			m.tables[n.level].remove(m.pool, int32(id))
		}
		delete(m.refs, int32(id))
		m.pool.free(int32(id))
	}

	if m.pool.needsResize() {
		_ = m.pool.resize()
	}
	for i, t := range m.tables {
		if t.needsRehash() {
			t.rehash(m.pool, int32(i))
		}
	}
	m.cache.removeUnused(func(id int32) bool {
		if id < 0 || int(id) >= len(m.pool.nodes) {
			return false
		}
		return m.pool.nodes[id].inUse
	})
	if m.stats != nil {
		m.stats.gcRuns.Inc()
	}
	m.sample()
}

func (m *Manager) markLive(id int32) {
	n := &m.pool.nodes[id]
	if n.mark {
		return
	}
	n.mark = true
	if !n.isTerminal() {
		for _, s := range n.sons {
			m.markLive(s)
		}
	}
}
