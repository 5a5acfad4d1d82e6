// Package logcapture stores gnuplot's output in a file and reads it back.
//
// gnuplot writes "print" results to stderr and some terminal output to
// stdout; both are pointed at the same file. Reading is heuristic: the
// reader sleeps for a settle delay so gnuplot can flush, then reads the
// whole file. There is no handshake with the external process.
package logcapture
