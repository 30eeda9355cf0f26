// Package template defines the seam between the benchmark and a template
// engine. The harness only ever locates, compiles and executes templates
// through TemplateRenderer; caching and expression semantics stay inside the
// engine.
package template
