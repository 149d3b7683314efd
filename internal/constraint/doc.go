// Package constraint decides which partitions satisfy a cage's rules.
//
// Four pure predicates are exported so each can be tested on its own:
//
//   - HasDuplicates: any value appears more than once
//   - ContainsGreaterThan: any part exceeds a threshold
//   - ContainsAny: any part is in an excluded DigitSet
//   - SizeEquals: the part count equals n
//
// ContainsGreaterThan and ContainsAny refuse nil or empty partitions with a
// *partition.ArgumentError instead of treating "no elements" as "no
// violation". Callers must handle the empty case before asking.
//
// Rules bundles a cage's configuration and exposes the composite acceptance
// rule as a Chain of named Rule values, evaluated as a short-circuit AND.
package constraint
