// Package harness runs cage scenarios as executable regression tests.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: twenty_in_four
//	description: "Classic cage with two excluded digits"
//	run_id: test-run-001
//	max_digit: 9
//	cages:
//	  - name: top-left
//	    sum: 20
//	    digits: 4
//	    exclude: [2, 7]
//	    expect:
//	      combinations: [[8, 5, 4, 3], [8, 6, 5, 1], [9, 6, 4, 1]]
//	  - name: impossible
//	    sum: -1
//	    digits: 1
//	    expect:
//	      invalid: true
//	assertions:
//	  - type: result_order
//	    cage: top-left
//	    combinations: [[9, 6, 4, 1], [8, 5, 4, 3]]
//
// Expected combinations compare as sets of multisets: neither the order of
// the combinations nor the order of digits inside one matters. Assertions
// inspect the trace, the ordered list of every accepted combination.
//
// # Assertion Types
//
//   - result_contains: a cage produced the given combination
//   - result_order: the given combinations appear in this relative order
//   - result_count: a cage produced exactly count combinations
//
// # Golden Snapshots
//
// A trace is serialised as canonical JSON, so identical runs produce
// byte-identical snapshots. RunWithGolden compares a scenario's snapshot with
// testdata/golden/<name>.golden.
package harness
