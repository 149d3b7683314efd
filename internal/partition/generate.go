package partition

import (
	"fmt"
	"iter"
)

// Generate returns a lazy sequence over every partition of n.
//
// The sequence starts at [n] and repeatedly takes the rightmost part greater
// than one, decrements it, and refills the tail with copies of the new value
// (plus a smaller remainder), which keeps every partition non-increasing. It
// stops after the all-ones partition. n == 0 yields one empty partition.
//
// Each call returns a fresh sequence. Every yielded Partition is a new slice
// owned by the caller.
func Generate(n int) (iter.Seq[Partition], error) {
	if n < 0 {
		return nil, NewArgumentError("Generate", fmt.Sprintf("n must be non-negative, got %d", n))
	}

	return func(yield func(Partition) bool) {
		if n == 0 {
			yield(Partition{})
			return
		}

		parts := make([]int, 1, n)
		parts[0] = n
		// ones counts the trailing 1s so the scan for the rightmost part > 1
		// is O(1) amortised.
		ones := 0
		if n == 1 {
			ones = 1
		}

		for {
			if !yield(Partition(parts).Clone()) {
				return
			}
			if ones == len(parts) {
				return
			}

			k := len(parts) - ones - 1
			v := parts[k] - 1
			rem := ones + 1
			parts[k] = v
			parts = parts[:k+1]
			ones = 0
			if v == 1 {
				ones = 1
			}

			for rem > 0 {
				next := min(v, rem)
				parts = append(parts, next)
				rem -= next
				if next == 1 {
					ones++
				}
			}
		}
	}, nil
}

// All materialises every partition of n in generator order.
func All(n int) ([]Partition, error) {
	seq, err := Generate(n)
	if err != nil {
		return nil, err
	}
	var out []Partition
	for p := range seq {
		out = append(out, p)
	}
	return out, nil
}

// Count returns p(n), the number of partitions of n.
//
// It uses the recursive decomposition: partitions of n with parts <= k are
// those containing a part k (and a partition of n-k with parts <= k) plus
// those with parts <= k-1.
func Count(n int) (int, error) {
	if n < 0 {
		return 0, NewArgumentError("Count", fmt.Sprintf("n must be non-negative, got %d", n))
	}
	// ways[i] = partitions of i using the parts considered so far.
	ways := make([]int, n+1)
	ways[0] = 1
	for k := 1; k <= n; k++ {
		for i := k; i <= n; i++ {
			ways[i] += ways[i-k]
		}
	}
	return ways[n], nil
}
