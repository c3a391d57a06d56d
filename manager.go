// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

import (
	"fmt"
	"runtime"
)

// Manager owns one hash-consed node pool and every diagram built from
// it (spec 4.1). A single Manager type serves BDDs, homogeneous MDDs and
// heterogeneous MDDs alike: degree/value polymorphism is resolved at
// runtime through domain, a per-level domain-size vector, rather than at
// compile time, since Go generics cannot tie an array length to a value
// only known at construction time. A BDD is a Manager whose domain is
// all 2s; a homogeneous MDD's domain is all the same P; a heterogeneous
// MDD's domain is a free vector.
type Manager struct {
	domain []int32 // domain[level] == number of children a node at level has
	varnum int32

	pool   *nodePool
	tables []*uniqueTable // one per level, 0..varnum-1
	cache  *opCache

	terminals map[int32]int32 // value -> node id, for terminal nodes
	vars      map[int32]int32 // level -> node id of the canonical Variable node

	refs map[int32]int32 // external reference counts keyed by node id

	autoReorder bool
	autoGC      bool

	// remap and version back the self-healing Node handles used across a
	// ForceReorder pass (reorder.go): reordering can discover that two
	// nodes now represent the same function and fold one into the other,
	// which would otherwise strand any external handle still holding the
	// discarded id.
	remap   map[int32]int32
	version int64

	err    error
	logger *managerLogger
	stats  *metricsRecorder
}

// Option configures a Manager at construction time, the functional
// option idiom this package's config.go grew out of, generalized to
// cover the ambient stack (logging, metrics) as well as sizing.
type Option func(*Manager)

// WithAutoReorder sets the manager's auto-reorder flag. The flag is only
// recorded: no code path reads it, so no reordering pass ever runs
// automatically and ForceReorder must be called explicitly.
func WithAutoReorder(on bool) Option {
	return func(m *Manager) { m.autoReorder = on }
}

// WithAutoGC enables calling ForceGC automatically when the node pool
// cannot satisfy an allocation outright (spec 4.9).
func WithAutoGC(on bool) Option {
	return func(m *Manager) { m.autoGC = on }
}

// WithCacheSize sets the capacity of the shared operation cache.
func WithCacheSize(n int) Option {
	return func(m *Manager) { m.cache = newOpCache(n) }
}

// WithNodeLimits bounds how large the node pool is allowed to grow, and
// how much it grows per resize (spec 4.1, Maxnodesize/Maxnodeincrease).
func WithNodeLimits(maxSize, maxIncrease int) Option {
	return func(m *Manager) {
		m.pool.maxSize = maxSize
		m.pool.maxNodeIncrease = maxIncrease
	}
}

func newManager(domain []int32, opts ...Option) (*Manager, error) {
	if len(domain) == 0 {
		return nil, wrapf(ErrInvalidArgument, "domain must have at least one level")
	}
	for _, d := range domain {
		if d < 2 {
			return nil, wrapf(ErrInvalidArgument, "domain size %d must be >= 2", d)
		}
	}
	n := int32(len(domain))
	m := &Manager{
		domain:      append([]int32(nil), domain...),
		varnum:      n,
		pool:        newNodePool(1024, 0, _DEFAULTMAXNODEINC, _MINFREENODES),
		tables:      make([]*uniqueTable, n+1), // +1: leaf level; stays empty, terminals live in m.terminals
		cache:       newOpCache(10007),
		terminals:   make(map[int32]int32),
		vars:        make(map[int32]int32),
		refs:        make(map[int32]int32),
		remap:       make(map[int32]int32),
		autoGC:      true,
	}
	for i := range m.tables {
		m.tables[i] = newUniqueTable(64)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// NewBDD builds a Manager over nvars boolean variables: domain[i] == 2
// for every level.
func NewBDD(nvars int32, opts ...Option) (*Manager, error) {
	if nvars <= 0 || nvars > _MAXVAR {
		return nil, wrapf(ErrInvalidArgument, "nvars out of range: %d", nvars)
	}
	domain := make([]int32, nvars)
	for i := range domain {
		domain[i] = 2
	}
	return newManager(domain, opts...)
}

// NewHomogeneousMDD builds a Manager over nvars variables sharing the
// same domain size p (a homogeneous MDD).
func NewHomogeneousMDD(nvars, p int32, opts ...Option) (*Manager, error) {
	if p < 2 {
		return nil, wrapf(ErrInvalidArgument, "domain size %d must be >= 2", p)
	}
	if nvars <= 0 || nvars > _MAXVAR {
		return nil, wrapf(ErrInvalidArgument, "nvars out of range: %d", nvars)
	}
	domain := make([]int32, nvars)
	for i := range domain {
		domain[i] = p
	}
	return newManager(domain, opts...)
}

// NewMDD builds a Manager over a free per-level domain vector (a
// heterogeneous MDD).
func NewMDD(domain []int32, opts ...Option) (*Manager, error) {
	return newManager(domain, opts...)
}

// Varnum returns the number of decision levels the manager was built
// with.
func (m *Manager) Varnum() int32 { return m.varnum }

// Domain returns the domain size of the given level.
func (m *Manager) Domain(level int32) (int32, error) {
	if level < 0 || level >= m.varnum {
		return 0, wrapf(ErrInvalidArgument, "level out of range: %d", level)
	}
	return m.domain[level], nil
}

// Node is an external handle onto a diagram node (spec 4.2). Handles are
// reference-counted: Copy hands out a new handle sharing the node and
// bumps the count, Drop releases one reference. A finalizer backstops
// callers who let a handle become unreachable without calling Drop,
// mirroring the runtime.SetFinalizer discipline the BuDDy-derived
// manager this package grew out of used for its external references.
type Node struct {
	m       *Manager
	id      int32
	version int64
}

func (m *Manager) own(id int32) *Node {
	m.refs[id]++
	n := &Node{m: m, id: id, version: m.version}
	runtime.SetFinalizer(n, (*Node).finalize)
	return n
}

// resolve returns n's current node id, first following m.remap if a
// ForceReorder pass folded n's node into another since n was last used.
func (m *Manager) resolve(n *Node) int32 {
	if n.version != m.version {
		cur := n.id
		for next, ok := m.remap[cur]; ok; next, ok = m.remap[cur] {
			cur = next
		}
		n.id = cur
		n.version = m.version
	}
	return n.id
}

func (n *Node) finalize() {
	n.m.DelRef(n.m.resolve(n))
}

// Copy returns a new handle to the same node, incrementing its external
// reference count.
func (n *Node) Copy() *Node {
	return n.m.own(n.m.resolve(n))
}

// Drop releases this handle's reference. Using n after Drop is a
// programmer error.
func (n *Node) Drop() {
	runtime.SetFinalizer(n, nil)
	n.m.DelRef(n.m.resolve(n))
}

func (n *Node) String() string {
	return fmt.Sprintf("Node(%d)", n.m.resolve(n))
}

// terminal returns (creating it if necessary) the node id for constant
// value v.
func (m *Manager) terminal(v int32) (int32, error) {
	if id, ok := m.terminals[v]; ok {
		return id, nil
	}
	id := m.allocOrGC()
	if id < 0 {
		return -1, ErrOutOfNodes
	}
	m.pool.nodes[id] = ddNode{level: leafLevel(m.varnum), value: v, inUse: true, refcou: _MAXREFCOUNT}
	m.terminals[v] = id
	return id, nil
}

// Constant returns a handle to the terminal node for value v.
func (m *Manager) Constant(v int32) (*Node, error) {
	id, err := m.terminal(v)
	if err != nil {
		return nil, m.seterror(err)
	}
	return m.own(id), nil
}

// allocOrGC tries to allocate a fresh node slot. When the free list is
// empty it first runs a garbage collection if the manager is configured
// WithAutoGC, then falls back to a pool resize (spec 4.9). It panics-free on exhaustion: callers
// that need an error must check ErrOutOfNodes from seterror instead,
// matching the teacher's sticky-error idiom.
func (m *Manager) allocOrGC() int32 {
	id, err := m.pool.alloc()
	if err == nil {
		return id
	}
	if m.autoGC {
		m.ForceGC()
		if id, err = m.pool.alloc(); err == nil {
			return id
		}
	}
	if err = m.pool.resize(); err == nil {
		id, _ = m.pool.alloc()
		return id
	}
	m.seterror(ErrOutOfNodes)
	return -1
}

// makeNode is the hash-consing constructor at the heart of the node
// pool (spec 4.1, invariants I1/I2): it returns the unique node for
// (level, sons), creating one only if none exists yet, and collapses to
// sons[0] directly when every son is identical (the redundancy-removal
// half of reduction).
func (m *Manager) makeNode(level int32, sons []int32) (int32, error) {
	allSame := true
	for _, s := range sons[1:] {
		if s != sons[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return sons[0], nil
	}
	t := m.tables[level]
	if id, ok := t.find(m.pool, level, sons); ok {
		return id, nil
	}
	id := m.allocOrGC()
	if id < 0 {
		return -1, ErrOutOfNodes
	}
	m.pool.nodes[id] = ddNode{level: level, sons: append([]int32(nil), sons...), inUse: true}
	for _, s := range sons {
		m.pool.nodes[s].refcou++
	}
	t.insert(m.pool, id)
	if t.needsRehash() {
		t.rehash(m.pool, level)
	}
	return id, nil
}

// Variable returns the canonical decision node at level: the node whose
// i-th son is the terminal for value i. Building blocks like FromExpr
// compose larger diagrams out of these.
func (m *Manager) Variable(level int32) (*Node, error) {
	if level < 0 || level >= m.varnum {
		return nil, wrapf(ErrInvalidArgument, "level out of range: %d", level)
	}
	if id, ok := m.vars[level]; ok {
		return m.own(id), nil
	}
	sons := make([]int32, m.domain[level])
	for v := range sons {
		sid, err := m.terminal(int32(v))
		if err != nil {
			return nil, m.seterror(err)
		}
		sons[v] = sid
	}
	id, err := m.makeNode(level, sons)
	if err != nil {
		return nil, m.seterror(err)
	}
	m.vars[level] = id
	return m.own(id), nil
}

// AddRef increments the external reference count of a node id directly,
// used by algorithms that build intermediate results without handing
// out a Node handle for every one.
func (m *Manager) AddRef(id int32) {
	m.refs[id]++
}

// DelRef decrements the external reference count of id. It does not
// reclaim memory by itself; ForceGC sweeps the nodes that are not
// reachable from any node with a positive external count (or from a
// terminal or canonical Variable node).
func (m *Manager) DelRef(id int32) {
	if m.refs[id] > 0 {
		m.refs[id]--
		if m.refs[id] == 0 {
			delete(m.refs, id)
		}
	}
}
