// Package process runs gnuplot as a child process fed through its stdin.
//
// The pipe is one-way: commands go in, nothing is read back. gnuplot's
// output is either redirected to a file supplied by the caller, streamed to
// a line callback, or discarded.
package process
