// Package table holds the synthetic fixture rendered by every benchmark
// renderer: an ordered sequence of rows whose cells keep their column order.
//
// A Table is generated once and then shared read-only. Renderers must not
// mutate it; every row owns its own cell slice so a misbehaving renderer
// cannot corrupt its neighbours.
package table
