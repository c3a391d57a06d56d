// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

// nodePool is a slab allocator for ddNode values (C1). It never returns
// memory to the OS; allocation pops the free list in O(1), free pushes
// onto it in O(1). This mirrors the free-list discipline of the
// BuDDy-derived makenode/noderesize this package grew out of, adapted to
// a single growable slice standing in for "primary slab plus overflow
// slabs" (growth is capped the same way: maxNodeIncrease per step,
// maxSize overall).
type nodePool struct {
	nodes           []ddNode
	freeHead        int32
	freeCount       int32
	maxSize         int // 0 == unlimited
	maxNodeIncrease int // 0 == unlimited
	minFreePercent  int
	produced        int64
	reclaimed       int64
}

func newNodePool(size, maxSize, maxNodeIncrease, minFreePercent int) *nodePool {
	p := &nodePool{
		maxSize:         maxSize,
		maxNodeIncrease: maxNodeIncrease,
		minFreePercent:  minFreePercent,
	}
	p.grow(size)
	return p
}

// grow appends freshly-initialized slots and threads them onto the free
// list. It does not check maxSize; callers decide whether growth is
// still permitted.
func (p *nodePool) grow(extra int) {
	old := len(p.nodes)
	newSize := old + extra
	tmp := make([]ddNode, newSize)
	copy(tmp, p.nodes)
	p.nodes = tmp
	for i := old; i < newSize; i++ {
		p.nodes[i] = ddNode{next: int32(i + 1)}
	}
	p.nodes[newSize-1].next = p.freeHead
	p.freeHead = int32(old)
	p.freeCount += int32(extra)
}

// alloc pops one slot off the free list, or returns ErrOutOfNodes if the
// free list is empty; it never grows the pool itself. Callers are expected to have already
// tried garbage collection (gc.go) and resize (resize below) before
// treating this as fatal.
func (p *nodePool) alloc() (int32, error) {
	if p.freeCount == 0 {
		return -1, ErrOutOfNodes
	}
	id := p.freeHead
	p.freeHead = p.nodes[id].next
	p.freeCount--
	p.nodes[id] = ddNode{inUse: true}
	p.produced++
	return id, nil
}

func (p *nodePool) free(id int32) {
	p.nodes[id] = ddNode{next: p.freeHead}
	p.freeHead = id
	p.freeCount++
	p.reclaimed++
}

// needsResize reports whether fewer than minFreePercent% of the pool is
// free, the trigger for noderesize in the teacher's gbc/makenode pair.
func (p *nodePool) needsResize() bool {
	if len(p.nodes) == 0 {
		return true
	}
	return (int(p.freeCount)*100)/len(p.nodes) <= p.minFreePercent
}

// resize doubles the pool (bounded by maxNodeIncrease and maxSize), or
// reports ErrOutOfNodes if no further growth is permitted.
func (p *nodePool) resize() error {
	old := len(p.nodes)
	if p.maxSize > 0 && old >= p.maxSize {
		return ErrOutOfNodes
	}
	extra := old
	if extra == 0 {
		extra = 64
	}
	if p.maxNodeIncrease > 0 && extra > p.maxNodeIncrease {
		extra = p.maxNodeIncrease
	}
	if p.maxSize > 0 && old+extra > p.maxSize {
		extra = p.maxSize - old
	}
	if extra <= 0 {
		return ErrOutOfNodes
	}
	p.grow(extra)
	return nil
}

func (p *nodePool) size() int {
	return len(p.nodes)
}

func (p *nodePool) used() int {
	return len(p.nodes) - int(p.freeCount)
}
