package prime

// Sieve returns a table t of length limit+1 where t[i] reports whether i is
// prime. A negative limit yields an empty table.
func Sieve(limit int) []bool {
	if limit < 0 {
		return []bool{}
	}
	table := make([]bool, limit+1)
	for i := 2; i <= limit; i++ {
		table[i] = true
	}
	for i := 2; i*i <= limit; i++ {
		if !table[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			table[j] = false
		}
	}
	return table
}
