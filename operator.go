// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

// Op describes a binary operation usable with Manager.Apply. It carries
// everything the apply engine (C6) needs: a stable numeric id for the
// operation cache, the total function over concrete values and the
// sentinels Nondetermined/Undefined, and optional shortcuts.
//
// Op.Fn must be total: called with two values that are either real
// terminal values (>= 0) or one of Nondetermined/Undefined, it must
// always return a value. Returning anything other than Nondetermined
// tells the apply engine the result is fully determined without further
// recursion.
type Op struct {
	ID          uint8
	Name        string
	Commutative bool
	// Absorbing, when non-nil, names a terminal value such that
	// Op(Absorbing, x) == Op(x, Absorbing) == Absorbing for every x. The
	// apply engine checks this before calling Fn (spec 4.6, "absorbing
	// shortcut").
	Absorbing *int32
	Fn        func(a, b int32) int32
}

func absorb(v int32) *int32 { return &v }

// Binary boolean operators, ported from the switch-based shortcuts of the
// BuDDy-derived apply()/appquant() this package grew out of.
var (
	OpAnd = Op{ID: 0, Name: "and", Commutative: true, Absorbing: absorb(0), Fn: func(a, b int32) int32 {
		if a == 1 && b == 1 {
			return 1
		}
		if a == 0 || b == 0 {
			return 0
		}
		return Nondetermined
	}}
	OpOr = Op{ID: 1, Name: "or", Commutative: true, Absorbing: absorb(1), Fn: func(a, b int32) int32 {
		if a == 1 || b == 1 {
			return 1
		}
		if a == 0 && b == 0 {
			return 0
		}
		return Nondetermined
	}}
	OpXor = Op{ID: 2, Name: "xor", Commutative: true, Fn: func(a, b int32) int32 {
		if a == Nondetermined || b == Nondetermined {
			return Nondetermined
		}
		if a == b {
			return 0
		}
		return 1
	}}
	OpXnor = Op{ID: 3, Name: "xnor", Commutative: true, Fn: func(a, b int32) int32 {
		if a == Nondetermined || b == Nondetermined {
			return Nondetermined
		}
		if a == b {
			return 1
		}
		return 0
	}}
	OpNand = Op{ID: 4, Name: "nand", Commutative: true, Fn: func(a, b int32) int32 {
		if a == 0 || b == 0 {
			return 1
		}
		if a == 1 && b == 1 {
			return 0
		}
		return Nondetermined
	}}
	OpNor = Op{ID: 5, Name: "nor", Commutative: true, Fn: func(a, b int32) int32 {
		if a == 1 || b == 1 {
			return 0
		}
		if a == 0 && b == 0 {
			return 1
		}
		return Nondetermined
	}}
	OpImplies = Op{ID: 6, Name: "implies", Fn: func(a, b int32) int32 {
		if a == 0 {
			return 1
		}
		if b == 1 {
			return 1
		}
		if a == 1 {
			if b == Nondetermined {
				return Nondetermined
			}
			return b
		}
		return Nondetermined
	}}
	OpEq = Op{ID: 7, Name: "eq", Commutative: true, Fn: func(a, b int32) int32 {
		if a == Nondetermined || b == Nondetermined {
			return Nondetermined
		}
		if a == b {
			return 1
		}
		return 0
	}}
	OpNeq = Op{ID: 8, Name: "neq", Commutative: true, Fn: func(a, b int32) int32 {
		if a == Nondetermined || b == Nondetermined {
			return Nondetermined
		}
		if a != b {
			return 1
		}
		return 0
	}}
	OpLt = Op{ID: 9, Name: "lt", Fn: cmpFn(func(a, b int32) bool { return a < b })}
	OpLe = Op{ID: 10, Name: "le", Fn: cmpFn(func(a, b int32) bool { return a <= b })}
	OpGt = Op{ID: 11, Name: "gt", Fn: cmpFn(func(a, b int32) bool { return a > b })}
	OpGe = Op{ID: 12, Name: "ge", Fn: cmpFn(func(a, b int32) bool { return a >= b })}
	OpMin = Op{ID: 13, Name: "min", Commutative: true, Absorbing: absorb(0), Fn: func(a, b int32) int32 {
		if a == Nondetermined || b == Nondetermined {
			return Nondetermined
		}
		if a < b {
			return a
		}
		return b
	}}
	OpMax = Op{ID: 14, Name: "max", Commutative: true, Fn: func(a, b int32) int32 {
		if a == Nondetermined || b == Nondetermined {
			return Nondetermined
		}
		if a > b {
			return a
		}
		return b
	}}
)

// _OPID_MAXB is OpMaxBounded's op id, checked by apply.go without having
// to construct a throwaway Op just to read its ID field.
const _OPID_MAXB uint8 = 18

func cmpFn(pred func(a, b int32) bool) func(a, b int32) int32 {
	return func(a, b int32) int32 {
		if a == Nondetermined || b == Nondetermined {
			return Nondetermined
		}
		if pred(a, b) {
			return 1
		}
		return 0
	}
}

// OpPlusMod returns the modular addition operator PLUS<mod>, absorbing
// nothing (wraparound addition has no absorbing element in general).
func OpPlusMod(mod int32) Op {
	return Op{ID: 16, Name: "plusmod", Commutative: true, Fn: func(a, b int32) int32 {
		if a == Nondetermined || b == Nondetermined {
			return Nondetermined
		}
		return (a + b) % mod
	}}
}

// OpTimesMod returns the modular multiplication operator MULTIPLIES<mod>.
// Zero is absorbing.
func OpTimesMod(mod int32) Op {
	return Op{ID: 17, Name: "timesmod", Commutative: true, Absorbing: absorb(0), Fn: func(a, b int32) int32 {
		if a == Nondetermined || b == Nondetermined {
			return Nondetermined
		}
		return (a * b) % mod
	}}
}

// OpMaxBounded returns the bounded-MAX operator MAXB<bound>, which
// short-circuits to bound as soon as it is reached. Per spec 9, this
// shortcut is only meaningful for homogeneous (fixed-domain) managers;
// Manager.Apply rejects it on heterogeneous managers.
func OpMaxBounded(bound int32) Op {
	return Op{ID: 18, Name: "maxb", Commutative: true, Absorbing: absorb(bound), Fn: func(a, b int32) int32 {
		if a == Nondetermined || b == Nondetermined {
			return Nondetermined
		}
		if a > b {
			return a
		}
		return b
	}}
}
