package confparse

import "github.com/tilecfg/confparse/internal/logctx"

// Parser is the per-call driving engine. It is never shared across
// goroutines: Parse constructs one per call over the caller's Grammar,
// which is itself immutable and safe to share across concurrent calls.
type Parser struct {
	grammar  *Grammar
	handlers HandlerSet
	ctx      *ParseContext
	input    []byte

	pos    int
	state  State
	values valueStack
	trail  stateTrail
	result *Result
}

func newParser(grammar *Grammar, handlers HandlerSet, ctx *ParseContext, input []byte) *Parser {
	p := &Parser{
		grammar:  grammar,
		handlers: handlers,
		ctx:      ctx,
		input:    input,
		state:    Initial,
		result:   &Result{},
	}
	p.trail.reset()
	return p
}

// run drives the parse to completion. It processes every cursor
// position from 0 through len(input) inclusive —
// the trailing position is the logical end-of-input token — and returns
// only once that final position has been handled, either by a match or
// by recovery.
func (p *Parser) run() error {
	for {
		p.pos = skipHSpace(p.input, p.pos)
		atFinalPosition := p.pos >= len(p.input)

		d, consumed, value, captured, matched := p.tryMatch()
		if !matched {
			if err := p.recover(); err != nil {
				return err
			}
		} else {
			if captured {
				if err := p.values.push(d.Identifier, value); err != nil {
					return fatal(p.ctx, "captured-value stack", err)
				}
			}
			p.pos += consumed
			logctx.Tracef("confparse: matched %s in state %s, %d bytes consumed", d.Kind, p.state, consumed)
			if err := p.transition(d); err != nil {
				return err
			}
		}

		if atFinalPosition {
			return nil
		}
	}
}

// tryMatch attempts every non-<error> descriptor of the current state's
// table, in order, returning the first that matches.
func (p *Parser) tryMatch() (d Descriptor, consumed int, value Value, captured bool, matched bool) {
	table := p.grammar.Table(p.state)
	for _, cand := range table {
		switch cand.Kind {
		case KindError:
			continue

		case KindLiteral:
			if n, ok := matchLiteral(p.input, p.pos, cand.Literal); ok {
				if cand.Identifier != "" {
					return cand, n, stringValue(cand.Literal), true, true
				}
				return cand, n, Value{}, false, true
			}

		case KindNumber:
			if n, v, ok := matchNumber(p.input, p.pos); ok {
				if cand.Identifier != "" {
					return cand, n, intValue(v), true, true
				}
				return cand, n, Value{}, false, true
			}

		case KindString:
			if n, s, ok := matchString(p.input, p.pos); ok {
				if cand.Identifier != "" {
					return cand, n, stringValue(s), true, true
				}
				return cand, n, Value{}, false, true
			}

		case KindWord:
			if n, s, ok := matchWord(p.input, p.pos); ok {
				if cand.Identifier != "" {
					return cand, n, stringValue(s), true, true
				}
				return cand, n, Value{}, false, true
			}

		case KindLine:
			// Line always matches, even against an empty remainder.
			n, s := matchLine(p.input, p.pos)
			if cand.Identifier != "" {
				return cand, n, stringValue(s), true, true
			}
			return cand, n, Value{}, false, true

		case KindEnd:
			if n, ok := matchEnd(p.input, p.pos); ok {
				return cand, n, Value{}, false, true
			}
		}
	}
	return Descriptor{}, 0, Value{}, false, false
}

// transition commits d's transition: a __CALL descriptor invokes its
// handler and adopts the state it returns, clearing the captured-value
// stack; any transition landing on INITIAL also clears it; and an `end`
// match fires a handler-boundary reset so a directive's captures never
// bleed into the next line. The state trail is updated last, after the
// landing state is final.
func (p *Parser) transition(d Descriptor) error {
	next := d.Next

	if next == CallState {
		fn := p.handlers[d.Call] // resolve() already guaranteed presence
		h := &Handler{values: &p.values, ctx: p.ctx, Out: p.ctx.Out}
		next = fn(h)
		p.values.clear()
		logctx.Debugf("confparse: call %s -> %s", d.Call, next)
	}

	p.state = next

	if next == Initial {
		p.values.clear()
	}
	if d.Kind == KindEnd {
		p.values.clear()
	}

	if err := p.trail.enter(next); err != nil {
		return fatal(p.ctx, "state trail", err)
	}
	logctx.Tracef("confparse: state -> %s (trail depth %d)", next, p.trail.len())
	return nil
}

// recover implements line-granular recovery: report the syntax error,
// discard whatever was captured for the broken directive, walk the
// state trail outward for the nearest enclosing <error> descriptor,
// transition into it, and resynchronize the cursor at the next line.
func (p *Parser) recover() error {
	p.reportSyntaxError()
	p.values.clear()

	var landing Descriptor
	found := false
	p.trail.walkBack(func(s State) bool {
		if d, ok := p.grammar.hasErrorDescriptor(s); ok {
			landing = d
			found = true
			return true
		}
		return false
	})
	if !found {
		return fatal(p.ctx, "recovery", errNoRecoveryState)
	}

	if err := p.transition(landing); err != nil {
		return err
	}
	p.pos = advanceToNextLine(p.input, p.pos)
	return nil
}

// advanceToNextLine moves pos past the next LF, or to end-of-input if
// none remains.
func advanceToNextLine(input []byte, pos int) int {
	i := pos
	for i < len(input) && input[i] != '\n' {
		i++
	}
	if i < len(input) {
		i++
	}
	return i
}

// lineNumberAt returns the 1-based line number containing pos, counting
// LFs seen before it.
func lineNumberAt(input []byte, pos int) int {
	line := 1
	limit := pos
	if limit > len(input) {
		limit = len(input)
	}
	for i := 0; i < limit; i++ {
		if input[i] == '\n' {
			line++
		}
	}
	return line
}

// reportSyntaxError renders and records the diagnostic for an
// unmatched position: the expected-tokens message, the
// machine-readable Diagnostic appended to Result, and the human log
// line via logctx.
func (p *Parser) reportSyntaxError() {
	table := p.grammar.Table(p.state)
	msg := "Expected one of these tokens: " + expectedList(table)

	start, end := lineBounds(p.input, p.pos)
	underline := caretUnderline(p.input, start, p.pos, end)
	lineNum := lineNumberAt(p.input, p.pos)

	offendingLine := string(p.input[start:end])

	p.result.Diagnostics = append(p.result.Diagnostics, Diagnostic{
		Success:       false,
		ParseError:    true,
		ErrorMsg:      msg,
		Input:         string(p.input),
		ErrorPosition: underline,
	})

	p.ctx.HasErrors = true
	p.ctx.LatestLine = offendingLine
	p.ctx.line = lineNum
	p.ctx.col = p.pos - start + 1

	for _, l := range sourceContext(p.input, lineNum, start, end) {
		logctx.Errorf("%s", l)
	}
	logctx.Errorf("%s: %s", p.ctx.Filename, msg)
	logctx.Errorf("%s", offendingLine)
	logctx.Errorf("%s", underline)
}
