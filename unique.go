// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

// uniqueTable is the hash-consing table for one variable level (C2): it
// maps a son tuple to the single node id representing it, the mechanism
// that keeps a reduced diagram reduced (invariant I1). Buckets are
// open-chained through ddNode.next, the same field the node pool uses
// for its free list -- an internal node is always either on the pool
// free list or linked into exactly one unique-table bucket, never both.
// Terminal nodes sit in neither; Manager.terminals tracks them.
type uniqueTable struct {
	buckets []int32 // bucket head, -1 if empty
	count   int32
}

func newUniqueTable(size int) *uniqueTable {
	t := &uniqueTable{buckets: make([]int32, primeGte(size))}
	for i := range t.buckets {
		t.buckets[i] = -1
	}
	return t
}

func (t *uniqueTable) bucketFor(h uint32) int32 {
	return int32(h % uint32(len(t.buckets)))
}

func sameSons(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// find looks up a node with the given level and son tuple, returning its
// id and true if present.
func (t *uniqueTable) find(pool *nodePool, level int32, sons []int32) (int32, bool) {
	h := hashSons(level, sons)
	id := t.buckets[t.bucketFor(h)]
	for id != -1 {
		n := &pool.nodes[id]
		if n.level == level && sameSons(n.sons, sons) {
			return id, true
		}
		id = n.next
	}
	return -1, false
}

// insert links id, already populated in pool with level/sons, into its
// bucket. Callers must have already confirmed no equal node exists
// (normally via a failed find).
func (t *uniqueTable) insert(pool *nodePool, id int32) {
	n := &pool.nodes[id]
	b := t.bucketFor(hashSons(n.level, n.sons))
	n.next = t.buckets[b]
	t.buckets[b] = id
	t.count++
}

// remove unlinks id from its bucket, used by garbage collection before
// the node is returned to the free list.
func (t *uniqueTable) remove(pool *nodePool, id int32) {
	n := &pool.nodes[id]
	b := t.bucketFor(hashSons(n.level, n.sons))
	cur := t.buckets[b]
	if cur == id {
		t.buckets[b] = n.next
		t.count--
		return
	}
	for cur != -1 {
		prev := &pool.nodes[cur]
		if prev.next == id {
			prev.next = n.next
			t.count--
			return
		}
		cur = prev.next
	}
}

// needsRehash reports whether the table has grown past a 3/4 load
// factor, the same threshold the teacher's hash table used before a
// resize.
func (t *uniqueTable) needsRehash() bool {
	return int(t.count)*4 >= len(t.buckets)*3
}

// rehash grows the bucket array to the next prime at least twice the
// current size and relinks every node currently stored under level.
func (t *uniqueTable) rehash(pool *nodePool, level int32) {
	old := t.buckets
	t.buckets = make([]int32, primeGte(len(old)*2))
	for i := range t.buckets {
		t.buckets[i] = -1
	}
	for _, head := range old {
		id := head
		for id != -1 {
			next := pool.nodes[id].next
			b := t.bucketFor(hashSons(pool.nodes[id].level, pool.nodes[id].sons))
			pool.nodes[id].next = t.buckets[b]
			t.buckets[b] = id
			id = next
		}
	}
}
