package poly

import "sync"

// smallBinomial precomputes C(n, k) for n, k <= maxPrecomputed so that the
// common low-degree Taylor shifts used by the isolator never touch the
// cache at all.
const maxPrecomputed = 10

var smallBinomial [maxPrecomputed + 1][maxPrecomputed + 1]float64

func init() {
	for n := 0; n <= maxPrecomputed; n++ {
		smallBinomial[n][0] = 1
		for k := 1; k <= n; k++ {
			smallBinomial[n][k] = smallBinomial[n-1][k-1]
			if k <= n-1 {
				smallBinomial[n][k] += smallBinomial[n-1][k]
			}
		}
	}
}

// binomialCache memoizes C(n, k) for n beyond the precomputed table. Entries
// are write-once: computed once, never invalidated (§5). Every load and
// store takes the mutex, so concurrent callers contend on hits as well as
// misses.
type binomialCache struct {
	sync.Mutex
	table map[[2]int]float64
}

var globalBinomialCache = &binomialCache{table: make(map[[2]int]float64)}

func (c *binomialCache) load(n, k int) (float64, bool) {
	c.Lock()
	defer c.Unlock()

	v, ok := c.table[[2]int{n, k}]

	return v, ok
}

func (c *binomialCache) store(n, k int, v float64) {
	c.Lock()
	defer c.Unlock()

	c.table[[2]int{n, k}] = v
}

// binomial returns C(n, k), using the precomputed table for small n and the
// process-wide cache (backed by the recurrence C(n,k) = C(n-1,k-1) +
// C(n-1,k)) otherwise.
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}

	if n <= maxPrecomputed {
		return smallBinomial[n][k]
	}

	if v, ok := globalBinomialCache.load(n, k); ok {
		return v
	}

	v := binomial(n-1, k-1) + binomial(n-1, k)
	globalBinomialCache.store(n, k, v)

	return v
}
