// Package cage runs the partition pipeline for Killer Sudoku cages.
//
// A Solver asks the partition generator for every partition of a cage's sum
// and keeps the ones that pass the constraint chain, preserving generator
// order. Results are streamed through iter.Seq or collected into a slice,
// and WriteText renders them one per line:
//
//	[9, 6, 4, 1]
//	[8, 6, 5, 1]
//	[8, 5, 4, 3]
package cage
