// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

// Pairing and mixing functions ported from the BuDDy-derived
// unique-table hash this package grew out of. _PAIR combines two
// already-hashed values; _TRIPLE folds a third in. hashSons generalizes
// both to the n-ary son tuple that ddNode carries, since a heterogeneous
// MDD node may have any number of sons, not just two or three.
func _PAIR(a, b int32) uint32 {
	ua, ub := uint32(a), uint32(b)
	return (ua + ub) * (ua + ub + 1) / 2 + ub
}

func _TRIPLE(a, b, c int32) uint32 {
	return _PAIR(int32(_PAIR(a, b)), c)
}

// hashSons folds a variable's level and its full son tuple into one
// table bucket hash. level is included so that nodes at different
// levels never collide even if their son ids coincide numerically.
func hashSons(level int32, sons []int32) uint32 {
	h := uint32(level)
	for _, s := range sons {
		h = _PAIR(int32(h), s)
	}
	return h
}
