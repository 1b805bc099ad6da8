package confparse

import (
	"strconv"
	"strings"
)

// This file implements the lexer primitives. Unlike a conventional
// lexer that tokenizes the whole input ahead of parsing, confparse's
// primitives are tried on demand, one Descriptor at a time, at
// whatever cursor position the driver is currently at — the grammar
// table, not a fixed token grammar, decides which primitive is even
// attempted. Each primitive reports how many bytes it consumed and,
// where relevant, the Value it captured.

// isHSpace reports whether b is horizontal whitespace: the driver skips
// runs of it before every match attempt, but never skips CR/LF, which
// are meaningful to the grammar.
func isHSpace(b byte) bool { return b == ' ' || b == '\t' }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// skipHSpace advances pos past a run of spaces and tabs.
func skipHSpace(input []byte, pos int) int {
	for pos < len(input) && isHSpace(input[pos]) {
		pos++
	}
	return pos
}

// matchLiteral matches spelling case-insensitively as a plain prefix of
// input at pos, with no word-boundary check: matching "workspace5"
// against the literal "workspace" does succeed, consuming only
// "workspace" and leaving "5" for the next descriptor to deal with.
func matchLiteral(input []byte, pos int, spelling string) (consumed int, ok bool) {
	if pos+len(spelling) > len(input) {
		return 0, false
	}
	if !strings.EqualFold(string(input[pos:pos+len(spelling)]), spelling) {
		return 0, false
	}
	return len(spelling), true
}

// matchNumber matches a signed decimal integer: an optional sign, then
// at least one digit, rejecting anything that would overflow an int64.
func matchNumber(input []byte, pos int) (consumed int, value int64, ok bool) {
	i := pos
	if i < len(input) && (input[i] == '+' || input[i] == '-') {
		i++
	}
	digitsStart := i
	for i < len(input) && isDigit(input[i]) {
		i++
	}
	if i == digitsStart {
		return 0, 0, false
	}
	n, err := strconv.ParseInt(string(input[pos:i]), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return i - pos, n, true
}

// matchQuotedBody matches a double-quoted string starting at the
// opening quote (input[pos] == '"'). It returns the bytes consumed
// (including both quotes) and the unescaped value.
//
// The terminating-quote scan and the escape-unescaping are two
// deliberately separate passes, because the scan for the closing quote
// has a documented quirk: it decides a '"' is escaped by looking only
// at the single byte immediately before it, rather than counting a run
// of backslashes. A
// lone '\"' is correctly seen as an escaped quote (string stays open),
// but a doubled '\\"' — an escaped backslash followed by a real closing
// quote — is misread the same way, since the byte right before the
// quote is still a backslash. That quirk is preserved verbatim below;
// see TestStringDoubleBackslashQuirk for the pinned behavior.
func matchQuotedBody(input []byte, pos int) (consumed int, value string, ok bool) {
	i := pos + 1 // past the opening quote
	bodyStart := i
	for i < len(input) {
		if input[i] == '"' {
			if i > bodyStart && input[i-1] == '\\' {
				// Single-byte lookback quirk: treated as escaped, so the
				// string is still open even if this is really a closing
				// quote preceded by an escaped backslash.
				i++
				continue
			}
			raw := input[bodyStart:i]
			i++ // consume the closing quote
			return i - pos, unescapeDoubleQuote(raw), true
		}
		i++
	}
	return 0, "", false
}

// unescapeDoubleQuote replaces every `\"` with a literal `"`. All other
// backslashes — including runs of them — pass through untouched, so
// that captured values remain compatible with regex-bearing arguments.
func unescapeDoubleQuote(raw []byte) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) && raw[i+1] == '"' {
			b.WriteByte('"')
			i++
			continue
		}
		b.WriteByte(raw[i])
	}
	return b.String()
}

// matchString matches a quoted string via matchQuotedBody, or, if the
// next byte isn't '"', the remainder of the line. At least one byte of
// content is required in the unquoted form.
func matchString(input []byte, pos int) (consumed int, value string, ok bool) {
	if pos < len(input) && input[pos] == '"' {
		return matchQuotedBody(input, pos)
	}
	i := pos
	for i < len(input) && input[i] != '\r' && input[i] != '\n' {
		i++
	}
	if i == pos {
		return 0, "", false
	}
	return i - pos, string(input[pos:i]), true
}

// isWordTerminator reports whether b ends an unquoted word: whitespace,
// ']', ',', ';', or a line terminator.
func isWordTerminator(b byte) bool {
	switch b {
	case ' ', '\t', ']', ',', ';', '\r', '\n':
		return true
	default:
		return false
	}
}

// matchWord matches a quoted string (identical to matchString's quoted
// form) or an unquoted bareword terminated by whitespace, ']', ',', ';',
// or a line terminator. At least one byte of content is required in the
// unquoted form.
func matchWord(input []byte, pos int) (consumed int, value string, ok bool) {
	if pos < len(input) && input[pos] == '"' {
		return matchQuotedBody(input, pos)
	}
	i := pos
	for i < len(input) && !isWordTerminator(input[i]) {
		i++
	}
	if i == pos {
		return 0, "", false
	}
	return i - pos, string(input[pos:i]), true
}

// matchLine matches everything up to (not including) the next CR/LF,
// then consumes one line-terminator byte if present. It always matches,
// even on an empty remainder, so grammars must only use
// it where a preceding descriptor already guaranteed forward progress
// (DefaultGrammar always puts a literal, such as '#', or a word before
// a `line` descriptor).
func matchLine(input []byte, pos int) (consumed int, value string) {
	i := pos
	for i < len(input) && input[i] != '\r' && input[i] != '\n' {
		i++
	}
	value = string(input[pos:i])
	if i < len(input) {
		i++
	}
	return i - pos, value
}

// matchEnd matches end-of-line or end-of-input without consuming
// content beyond a single terminator byte: it succeeds at a CR, an LF,
// or at the logical end-of-input position (pos == len(input)), which is
// a legitimate cursor position for the driver to sit at.
func matchEnd(input []byte, pos int) (consumed int, ok bool) {
	if pos >= len(input) {
		return 0, true
	}
	if input[pos] == '\r' || input[pos] == '\n' {
		return 1, true
	}
	return 0, false
}
