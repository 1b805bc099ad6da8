package confparse

// Parse runs grammar's state machine over input, dispatching __CALL
// transitions to handlers and recording syntax errors into the
// returned Result instead of aborting. ctx carries the caller's
// filename and output sink and accumulates HasErrors/LatestLine as the
// parse proceeds.
//
// Parse returns a non-nil error only for a HandlerSet that lacks a
// handler for one of grammar's call ids (checked before any input is
// read) or for fatal, grammar-level conditions — captured-value or
// state-trail overflow, or a recovery walk that finds no <error>
// descriptor — never for an ordinary syntax error in input, which is
// reported as a Diagnostic in the returned Result instead.
//
// grammar is read-only from Parse's perspective and may be shared
// across concurrent calls; ctx and input must not be.
func Parse(input []byte, ctx *ParseContext, grammar *Grammar, handlers HandlerSet) (*Result, error) {
	if err := handlers.resolve(grammar); err != nil {
		return nil, err
	}
	p := newParser(grammar, handlers, ctx, input)
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.result, nil
}
