package confparse

// Kind identifies which lexer primitive recognizes a Descriptor's token.
type Kind int

const (
	// KindLiteral matches a fixed, case-insensitive spelling (e.g. 'bindsym).
	KindLiteral Kind = iota
	// KindWord matches an unquoted bareword or a quoted string.
	KindWord
	// KindString matches a quoted string, or the remainder of the line if unquoted.
	KindString
	// KindNumber matches a signed decimal integer.
	KindNumber
	// KindLine matches the remainder of the current line plus one line
	// terminator; the captured value excludes the terminator.
	KindLine
	// KindEnd matches end-of-line or end-of-input without consuming content.
	KindEnd
	// KindError is never attempted by the driver; only recovery consults it.
	KindError
)

// String names a Kind the way it appears in grammar source and in
// "Expected one of these tokens" messages (see Descriptor.expected).
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindWord:
		return "word"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindLine:
		return "line"
	case KindEnd:
		return "end"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// State is an opaque identifier for one node of the grammar's state
// machine. Grammars built with NewGrammar mint their own State values by
// name; a generated grammar would instead emit these as a closed Go enum.
type State string

// CallState is the sentinel next-state meaning "invoke a handler and
// adopt its returned state", i.e. the grammar text's __CALL.
const CallState State = "__CALL"

// Initial is the distinguished starting state of every grammar.
const Initial State = "INITIAL"

// CallID selects a handler in a HandlerSet. It is meaningful only on a
// Descriptor whose Next is CallState.
type CallID string

// Descriptor is one entry in a state's ordered token table. Order is
// semantically significant: the driver tries descriptors in table order
// and the first match wins.
type Descriptor struct {
	Kind Kind

	// Literal holds the case-insensitive spelling to match when Kind is
	// KindLiteral (without the grammar's leading apostrophe).
	Literal string

	// Identifier is the capture slot name. Empty means "match but don't
	// capture".
	Identifier string

	// Next is the transition target, or CallState to invoke a handler.
	Next State

	// Call selects the handler when Next == CallState.
	Call CallID
}

// expected renders d the way the error reporter lists it in "Expected
// one of these tokens: ...". KindError is never rendered; callers
// filter it out before joining.
func (d Descriptor) expected() string {
	if d.Kind == KindLiteral {
		return "'" + d.Literal + "'"
	}
	return "<" + d.Kind.String() + ">"
}
