package confparse

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/juju/errors"
	"github.com/tilecfg/confparse/internal/logctx"
)

// errOverflow is the sentinel cause of both captured-value-stack and
// state-trail capacity exhaustion. It never reaches a caller directly;
// Parse always wraps it in an Error first.
var errOverflow = stderrors.New("capacity exceeded")

// errNoRecoveryState is the cause of a recovery-invariant violation: no
// state on the trail admits an <error> descriptor. Build already
// guarantees INITIAL has one, so this only fires if a caller
// hand-assembled a Grammar bypassing GrammarBuilder.
var errNoRecoveryState = stderrors.New("no <error> descriptor reachable during recovery")

// Error addresses a fatal, grammar-level failure. It is never produced
// for an ordinary syntax error in user input — those are reported as
// Diagnostics in Result, not as a Go error, because the parse continues
// past them. An Error, by contrast, always terminates Parse: it means
// the grammar tables themselves are untrustworthy.
type Error struct {
	Filename  string
	Line      int
	Column    int
	Sender    string
	OrigError error
}

// Error renders e as a bracketed location/sender prefix followed by
// the underlying cause.
func (e *Error) Error() string {
	s := "[confparse"
	if e.Sender != "" {
		s += " (where: " + e.Sender + ")"
	}
	if e.Filename != "" {
		s += " in " + e.Filename
	}
	if e.Line > 0 {
		s += fmt.Sprintf(" | Line %d Col %d", e.Line, e.Column)
	}
	s += "] "
	if e.OrigError != nil {
		s += e.OrigError.Error()
	}
	return s
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.OrigError }

// fatal builds an *Error for one of the grammar-bug conditions and
// annotates it with juju/errors so the returned error carries a trace
// of where the fault was detected, not just what it was.
func fatal(ctx *ParseContext, sender string, cause error) error {
	e := &Error{
		Filename:  ctx.Filename,
		Line:      ctx.line,
		Column:    ctx.col,
		Sender:    sender,
		OrigError: cause,
	}
	err := errors.Annotatef(errors.Trace(e), "confparse: fatal grammar error (%s)", sender)
	logctx.Errorf("%s", err)
	return err
}

// Diagnostic is the structured, machine-readable error record: one per
// unrecoverable syntax error. Field names and yaml-serialized keys
// match the exported record shape consumers of the YAML stream (see
// Result.YAML) expect.
type Diagnostic struct {
	Success       bool   `yaml:"success"`
	ParseError    bool   `yaml:"parse_error"`
	ErrorMsg      string `yaml:"error"`
	Input         string `yaml:"input"`
	ErrorPosition string `yaml:"errorposition"`
}

// expectedList renders table's matchable descriptors as the
// comma-separated "Expected one of these tokens: ..." body.
// <error> descriptors are never listed — they are never directly
// attempted by the driver, only consulted by recovery.
func expectedList(table []Descriptor) string {
	parts := make([]string, 0, len(table))
	for _, d := range table {
		if d.Kind == KindError {
			continue
		}
		parts = append(parts, d.expected())
	}
	return strings.Join(parts, ", ")
}

// lineBounds returns the byte offsets of the start and end of the line
// containing pos. Start is the byte after the most recent CR or LF (or
// 0); end is the offset of the next CR or LF (or len(input)).
func lineBounds(input []byte, pos int) (start, end int) {
	start = 0
	for i := pos - 1; i >= 0; i-- {
		if input[i] == '\n' || input[i] == '\r' {
			start = i + 1
			break
		}
	}
	end = len(input)
	for i := pos; i < len(input); i++ {
		if input[i] == '\n' || input[i] == '\r' {
			end = i
			break
		}
	}
	return start, end
}

// caretUnderline renders the caret underline: spaces (tabs preserved as
// tabs) up to cursor, carets from cursor to end of line.
func caretUnderline(input []byte, start, cursor, end int) string {
	if cursor > end {
		cursor = end
	}
	var b strings.Builder
	for i := start; i < cursor; i++ {
		if input[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	for i := cursor; i < end; i++ {
		b.WriteByte('^')
	}
	if cursor >= end {
		// Error landed exactly at end-of-line (e.g. a directive cut
		// short by a newline): still show one caret so the message
		// points at something.
		b.WriteByte('^')
	}
	return b.String()
}

// sourceContext renders the offending line together with up to two
// lines before and after it, each prefixed with its 1-based line
// number, for the human log.
// lineNum is the 1-based number of the offending line itself.
func sourceContext(input []byte, lineNum int, start, end int) []string {
	lines := strings.Split(string(input), "\n")
	var out []string
	for i := lineNum - 2; i <= lineNum+2; i++ {
		if i < 1 || i > len(lines) {
			continue
		}
		out = append(out, fmt.Sprintf("%4d | %s", i, lines[i-1]))
	}
	return out
}
