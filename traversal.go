// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

// Pre/post/level-order traversal (C7), all built on ddNode.mark the same
// way: a recursive pass sets the bit on first visit, an explicit
// companion pass clears it again so the next traversal starts from a
// clean slate. Nothing here allocates a separate "visited" set.
func (m *Manager) preOrder(root int32, visit func(id int32)) {
	m.walkPre(root, visit)
	m.unmark(root)
}

func (m *Manager) walkPre(id int32, visit func(id int32)) {
	n := &m.pool.nodes[id]
	if n.mark {
		return
	}
	n.mark = true
	visit(id)
	if !n.isTerminal() {
		for _, s := range n.sons {
			m.walkPre(s, visit)
		}
	}
}

func (m *Manager) postOrder(root int32, visit func(id int32)) {
	m.walkPost(root, visit)
	m.unmark(root)
}

func (m *Manager) walkPost(id int32, visit func(id int32)) {
	n := &m.pool.nodes[id]
	if n.mark {
		return
	}
	n.mark = true
	if !n.isTerminal() {
		for _, s := range n.sons {
			m.walkPost(s, visit)
		}
	}
	visit(id)
}

func (m *Manager) unmark(id int32) {
	n := &m.pool.nodes[id]
	if !n.mark {
		return
	}
	n.mark = false
	if !n.isTerminal() {
		for _, s := range n.sons {
			m.unmark(s)
		}
	}
}

// levelOrder visits every node reachable from root in breadth-first
// order starting at root. Nothing in the package
// calls it at present; Stats in stdio.go does not walk diagrams.
func (m *Manager) levelOrder(root int32, visit func(id int32)) {
	queue := []int32{root}
	m.pool.nodes[root].mark = true
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visit(id)
		n := &m.pool.nodes[id]
		if n.isTerminal() {
			continue
		}
		for _, s := range n.sons {
			if !m.pool.nodes[s].mark {
				m.pool.nodes[s].mark = true
				queue = append(queue, s)
			}
		}
	}
	m.unmark(root)
}

// GetNodeCount returns the number of distinct nodes reachable from
// root, including terminals.
func (m *Manager) GetNodeCount(root *Node) int {
	count := 0
	m.preOrder(m.resolve(root), func(int32) { count++ })
	return count
}

// GetManagerNodeCount returns the total number of live nodes held by
// the manager across every level's unique table, regardless of which
// diagrams reference them -- the manager-wide get_node_count(), as
// opposed to GetNodeCount's diagram-scoped get_node_count(d).
func (m *Manager) GetManagerNodeCount() int {
	return m.totalLiveNodes()
}
