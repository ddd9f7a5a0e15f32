// Package region partitions grid cells into Boundary, Outside and Enclosed
// relative to a closed loop.
//
// The loop is given as a set of cells plus a LinkFunc saying which adjacent
// loop cells are actually joined. Classification floods a doubled-resolution
// overlay from the grid border, so cells "squeezed" between two touching but
// unjoined loop segments are correctly found to be Outside.
//
//	original 3×3         overlay 7×7
//	  . . .            . . . . . . .
//	  . # .            . o . o . o .
//	  . . .            . . . . . . .
//	                   . o . # . o .
//	                   . . . . . . .
//	                   . o . o . o .
//	                   . . . . . . .
//
// Errors:
//
//   - ErrNilBounds: Classify called without extents.
//   - grid.ErrOutOfBounds: a loop cell lies outside the extents.
//   - ErrShortCycle, ErrBrokenCycle: FromCycle given an invalid path.
package region
