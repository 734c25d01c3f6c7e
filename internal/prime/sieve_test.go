package prime_test

import (
	"testing"

	"libprime/internal/prime"
)

func TestSieve_Small(t *testing.T) {
	table := prime.Sieve(30)
	var got []int
	for i, p := range table {
		if p {
			got = append(got, i)
		}
	}
	want := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	if len(got) != len(want) {
		t.Fatalf("primes <= 30: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("primes <= 30: got %v, want %v", got, want)
		}
	}
}

func TestSieve_Degenerate(t *testing.T) {
	if n := len(prime.Sieve(-1)); n != 0 {
		t.Fatalf("Sieve(-1) has %d entries, want 0", n)
	}
	if table := prime.Sieve(1); len(table) != 2 || table[0] || table[1] {
		t.Fatalf("Sieve(1) = %v, want [false false]", table)
	}
}

func TestSieve_PrimeCount(t *testing.T) {
	count := 0
	for _, p := range prime.Sieve(10000) {
		if p {
			count++
		}
	}
	if count != 1229 {
		t.Fatalf("pi(10000) = %d, want 1229", count)
	}
}
