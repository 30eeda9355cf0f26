// Package direct renders tables to HTML by hand, with no template engine in
// between. It is the baseline the templated path is measured against.
//
// Three strategies are provided. They produce byte-identical output and
// differ only in how the fragments are accumulated:
//
//	StrategyBuilder  strings.Builder (the default)
//	StrategyBuffer   bytes.Buffer
//	StrategyJoin     slice of fragments joined once at the end
package direct
