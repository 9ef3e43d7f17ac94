// Package output chooses where solver results are written.
//
// The result file for an input sits next to it with the extension replaced
// by ".out". If that file exists it is left alone and "_1", "_2", ... is
// inserted before the extension until a free name is found:
//
//	puzzle.txt -> puzzle.out -> puzzle_1.out -> puzzle_2.out
//
// Every attempt opens the candidate with O_CREATE|O_EXCL, so checking and
// creating happen in one step and concurrent writers never share a file.
package output
