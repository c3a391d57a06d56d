// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

import "fmt"

// Stats returns a short textual report on the manager's node pool,
// operation cache, and reference bookkeeping. It is meant for humans at
// a debug prompt, not machine parsing; use WithMetrics for anything
// that needs to be scraped.
func (m *Manager) Stats() string {
	used := m.pool.used()
	size := m.pool.size()
	var free float64
	if size > 0 {
		free = float64(size-used) / float64(size) * 100
	}
	res := fmt.Sprintf("Varnum:     %d\n", m.varnum)
	res += fmt.Sprintf("Allocated:  %d\n", size)
	res += fmt.Sprintf("Used:       %d  (%.3g %%)\n", used, 100-free)
	res += fmt.Sprintf("Free:       %d  (%.3g %%)\n", size-used, free)
	res += fmt.Sprintf("Produced:   %d\n", m.pool.produced)
	res += fmt.Sprintf("Reclaimed:  %d\n", m.pool.reclaimed)
	res += fmt.Sprintf("Ext. refs:  %d\n", len(m.refs))
	res += "==============\n"
	res += fmt.Sprintf("Cache hits: %d\n", m.cache.hits)
	res += fmt.Sprintf("Cache miss: %d\n", m.cache.miss)
	return res
}
