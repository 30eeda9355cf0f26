// Package bench drives renderers through a sequential timing loop and reports
// the mean cost per call.
//
// Run validates its input, runs every entry's Setup, and only then starts the
// timed loops, one entry after another. Any failure aborts the whole run and
// no partial results are returned: an average over an interrupted loop would
// be misleading.
package bench
