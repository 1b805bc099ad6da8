package confparse

import "gopkg.in/yaml.v2"

// Result is the per-parse aggregate: the diagnostic stream Parse
// produced. Semantic output is not accumulated here — it flows through
// Handler.Out into whatever sink the caller supplied.
type Result struct {
	Diagnostics []Diagnostic
}

// HasErrors reports whether any syntax-error diagnostic was emitted.
func (r *Result) HasErrors() bool {
	return len(r.Diagnostics) > 0
}

// YAML renders the diagnostic stream as YAML, using the Diagnostic
// struct's own field names and tags. Tooling that wants to snapshot or
// diff a parser's error output (editors, CI lint checks, the confdump
// command) uses this rather than reimplementing the record shape.
func (r *Result) YAML() ([]byte, error) {
	return yaml.Marshal(r.Diagnostics)
}
