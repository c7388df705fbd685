// Package element provides the static element table used by the visualizer.
//
// The table covers atomic numbers 1 through 30:
//
//   - [Lookup]: record (name, symbol, relative atomic mass) by atomic number
//   - [ShellOccupancy]: greedy electron fill of the K, L and M shells
//   - [ParseAtomicNumber]: validation gate for user-typed atomic numbers
//
// # Example
//
//	rec, err := element.Lookup(6)
//	shells := element.ShellOccupancy(rec.Protons()) // [2 4]
//
// Everything in this package is pure and safe for concurrent use.
package element
