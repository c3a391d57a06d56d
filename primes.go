// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

import "math/big"

// primeGte and primeLte port the teacher's prime-sized capacity search,
// used to pick unique-table bucket counts: a prime capacity spreads
// hashSons collisions better than a power of two once the table is
// rehashed a few times.
func primeGte(n int) int {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}
	for !isPrime(n) {
		n += 2
	}
	return n
}

func primeLte(n int) int {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n--
	}
	for n > 2 && !isPrime(n) {
		n -= 2
	}
	return n
}

func isPrime(n int) bool {
	return big.NewInt(int64(n)).ProbablyPrime(20)
}
