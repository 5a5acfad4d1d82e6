// Package datablock serializes numeric columns into gnuplot inline data.
//
// A named block looks like:
//
//	$aB3dE9xQ << EOD
//	1 4
//	2 5
//	3 6
//	EOD
//
// Later commands reference the block by name ("plot $aB3dE9xQ using 1:2").
// Inline encodes the same rows for the older "plot '-'" convention, where the
// data follows the command and ends with a line holding a single "e".
package datablock
