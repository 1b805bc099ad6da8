package confparse

import "github.com/juju/errors"

// Handler is the boundary exposed to semantic callbacks. It lets
// a handler read values captured since the last reset, and carries
// Out — an arbitrary, caller-supplied sink a handler type-asserts to
// mutate whatever semantic state it owns. The core imposes no policy on
// Out's shape; it is never read or written by the driver itself.
type Handler struct {
	values *valueStack
	ctx    *ParseContext

	// Out is the caller-supplied output sink, passed through from
	// ParseContext.Out. Handlers own whatever lives behind it.
	Out any
}

// GetString returns the string captured under id, and whether it was
// captured at all.
func (h *Handler) GetString(id string) (string, bool) {
	return h.values.getString(id)
}

// GetLong returns the integer captured under id, or 0 if absent, by
// contract. An absent id and a captured zero both read as 0; GetString
// does not tell them apart either, since it never returns an integer
// capture.
func (h *Handler) GetLong(id string) int64 {
	return h.values.getLong(id)
}

// Context returns the parse context the handler is running under,
// primarily so a handler can inspect Filename for its own diagnostics.
func (h *Handler) Context() *ParseContext {
	return h.ctx
}

// HandlerFunc is a semantic callback: it reads captured values off h and
// returns the state the driver should adopt next, typically Initial or
// an enclosing block's idle state.
type HandlerFunc func(h *Handler) State

// HandlerSet maps a grammar's call identifiers to the concrete,
// caller-supplied handler implementations. The handlers themselves — the
// window-manager state mutators — live outside this package entirely;
// the core owns only the CallID -> name resolution baked into the
// Grammar and this registry's lookup.
type HandlerSet map[CallID]HandlerFunc

// resolve checks that set implements every CallID g's tables reference.
// A missing handler is a caller configuration error discovered once, at
// Parse start, rather than silently skipped per-directive.
func (set HandlerSet) resolve(g *Grammar) error {
	var missing []CallID
	for _, id := range g.CallIDs() {
		if _, ok := set[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return errors.Errorf("confparse: HandlerSet missing handlers for call ids %v", missing)
}
