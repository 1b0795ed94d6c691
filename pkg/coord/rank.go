package coord

// binomial[n][k] is n choose k for n < 12, k <= 4; zero when k > n.
var binomial = func() (b [12][5]int) {
	for n := range b {
		b[n][0] = 1
		for k := 1; k < len(b[n]) && k <= n; k++ {
			b[n][k] = b[n-1][k-1]
			if k < n {
				b[n][k] += b[n-1][k]
			}
		}
	}
	return b
}()

// permRank returns the Lehmer rank of the relative order of p. The sorted
// order ranks 0; any n distinct values rank below n!.
func permRank[T ~uint8](p []T) int {
	v := 0
	for i := range p {
		smaller := 0
		for j := i + 1; j < len(p); j++ {
			if p[j] < p[i] {
				smaller++
			}
		}
		v = v*(len(p)-i) + smaller
	}
	return v
}

// permUnrank writes the permutation of 0..len(out)-1 with rank v to out.
func permUnrank(v int, out []int) {
	n := len(out)
	var digits, pool [12]int
	for i := n - 1; i >= 0; i-- {
		digits[i] = v % (n - i)
		v /= n - i
	}
	for i := 0; i < n; i++ {
		pool[i] = i
	}
	size := n
	for i := 0; i < n; i++ {
		d := digits[i]
		out[i] = pool[d]
		copy(pool[d:size-1], pool[d+1:size])
		size--
	}
}
