// Package frame encodes and decodes snapshots of a [lax.Grid].
//
// The text encoding writes one record per line, "<index> <value>\n", with
// the value in fixed six-place decimal notation, and terminates every frame
// with two newlines. This is the block format gnuplot's "index" keyword
// understands, so a file written by [TextSink] can be plotted directly.
package frame
