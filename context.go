package confparse

// ParseContext is the caller-supplied mutable record a Parse call runs
// against: the core does not own it, only mutates the fields documented
// here. Create one
// with NewParseContext per Parse call; reusing a ParseContext across
// concurrent Parse calls is not supported any more than reusing the
// input buffer would be.
type ParseContext struct {
	// Filename names the source for diagnostics; it never affects
	// parsing behavior.
	Filename string

	// HasErrors is true iff at least one syntax-error diagnostic was
	// emitted during the parse.
	HasErrors bool

	// LatestLine holds the text of the most recent line a diagnostic was
	// reported on, a convenience snapshot for callers that display a
	// single most-recent error without re-reading Result.Diagnostics.
	LatestLine string

	// Out is threaded through to every Handler.Out for this parse. It is
	// the caller's semantic output sink; the core never inspects it.
	Out any

	// line and col hold the position of the most recently reported
	// syntax error; a fatal grammar-bug Error reports them as its
	// location. They are updated only when a syntax error is reported,
	// so an overflow Error carries the last syntax error's position, or
	// none if there was none. They are not part of the documented
	// contract other packages rely on and are not exported.
	line int
	col  int
}

// NewParseContext returns a fresh ParseContext naming filename as the
// diagnostic source.
func NewParseContext(filename string) *ParseContext {
	return &ParseContext{Filename: filename}
}
