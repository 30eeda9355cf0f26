// Package harness wires the table generator, the renderer registry and the
// benchmark driver into a single entry point. Defaults reproduce the classic
// run: a 1000x10 table, ten iterations, direct then template.
package harness
