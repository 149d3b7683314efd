// Package partition enumerates integer partitions.
//
// A partition of n is a multiset of positive integers summing to n. This
// package represents each partition as a non-increasing Partition slice and
// produces them lazily through iter.Seq, so a consumer can stop pulling at
// any point.
//
// The generator starts at the trivial partition [n] and ends at the all-ones
// partition. Between the two it visits every partition exactly once in
// reverse lexicographic order:
//
//	[4] [3 1] [2 2] [2 1 1] [1 1 1 1]
//
// partition imports nothing internal. Packages that validate partitions
// (constraint, cage) report bad input with *ArgumentError from this package.
package partition
