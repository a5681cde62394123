// Package properties implements a command-line property lifecycle service:
// raw argv tokens become strongly-typed, validated, dependency-ordered
// configuration values served through a Service context.
//
// Property kinds are declared as identity -> factory bindings (see Bind) and
// registered on a Service. Parsing resolves every registered identity and its
// transitive dependencies, matches tokens against the instantiated
// properties, and runs each property through a parse -> default-override ->
// compute -> validate -> side-effect pipeline on first access.
//
// A process-wide default Service is available through Default for
// applications that want the classic global surface; tests should construct
// isolated instances with New instead.
package properties
