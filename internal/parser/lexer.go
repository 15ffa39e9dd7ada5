package parser

import (
	"fmt"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString  // decoded literal in lit
	tokFString // formatted string literal, never decoded
	tokNumber  // int64 or float64 in lit
	tokOp      // punctuation and operators, text in lexeme
)

type token struct {
	kind   tokenKind
	lexeme string
	lit    any
	line   int
}

func (t token) isOp(op string) bool {
	return t.kind == tokOp && t.lexeme == op
}

// lexer is a line-tracking scanner over Python source. It produces only the
// token shapes the call parser needs; indentation is not significant here
// because the parser never interprets statements.
type lexer struct {
	src  string
	pos  int
	line int
}

// lex scans the whole source into a token slice terminated by tokEOF.
func lex(src string) ([]token, error) {
	l := &lexer{src: src, line: 1}
	var toks []token
	for {
		t, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, t)
		if t.kind == tokEOF {
			return toks, nil
		}
	}
}

func (l *lexer) next() (token, error) {
	l.skipSpaceAndComments()
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, line: l.line}, nil
	}

	c := l.src[l.pos]
	switch {
	case isIdentStart(c):
		return l.scanIdentOrString()
	case c >= '0' && c <= '9' || c == '.' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1]):
		return l.scanNumber()
	case c == '"' || c == '\'':
		return l.scanString("", l.line)
	default:
		return l.scanOp()
	}
}

func (l *lexer) skipSpaceAndComments() {
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; {
		case c == '\n':
			l.line++
			l.pos++
		case c == ' ' || c == '\t' || c == '\r' || c == '\f':
			l.pos++
		case c == '\\' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '\n':
			// explicit line continuation
			l.line++
			l.pos += 2
		case c == '#':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

// scanIdentOrString handles identifiers, keywords, and prefixed string
// literals such as r"..." or f"...".
func (l *lexer) scanIdentOrString() (token, error) {
	start := l.pos
	for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
		l.pos++
	}
	word := l.src[start:l.pos]

	// A short identifier immediately followed by a quote is a string prefix.
	if len(word) <= 2 && l.pos < len(l.src) && (l.src[l.pos] == '"' || l.src[l.pos] == '\'') {
		if isStringPrefix(word) {
			return l.scanString(strings.ToLower(word), l.line)
		}
	}

	return token{kind: tokIdent, lexeme: word, line: l.line}, nil
}

func isStringPrefix(word string) bool {
	for _, r := range strings.ToLower(word) {
		switch r {
		case 'r', 'b', 'u', 'f':
		default:
			return false
		}
	}
	return true
}

// scanString consumes a quoted literal, honoring triple quotes and escape
// sequences. Raw strings keep backslashes verbatim.
func (l *lexer) scanString(prefix string, line int) (token, error) {
	quote := l.src[l.pos]
	raw := strings.Contains(prefix, "r")
	formatted := strings.Contains(prefix, "f")

	triple := strings.HasPrefix(l.src[l.pos:], strings.Repeat(string(quote), 3))
	delim := string(quote)
	if triple {
		delim = strings.Repeat(string(quote), 3)
	}
	l.pos += len(delim)

	var b strings.Builder
	for {
		if l.pos >= len(l.src) {
			return token{}, fmt.Errorf("line %d: unterminated string literal", line)
		}
		if strings.HasPrefix(l.src[l.pos:], delim) {
			l.pos += len(delim)
			break
		}
		c := l.src[l.pos]
		if c == '\n' {
			if !triple {
				return token{}, fmt.Errorf("line %d: unterminated string literal", line)
			}
			l.line++
			b.WriteByte(c)
			l.pos++
			continue
		}
		if c == '\\' && !raw && l.pos+1 < len(l.src) {
			l.pos++
			b.WriteString(decodeEscape(l))
			continue
		}
		b.WriteByte(c)
		l.pos++
	}

	kind := tokString
	if formatted {
		kind = tokFString
	}
	return token{kind: kind, lit: b.String(), line: line}, nil
}

// decodeEscape decodes the escape sequence starting at l.pos (the character
// after the backslash). Unknown escapes keep the backslash, matching the
// source language.
func decodeEscape(l *lexer) string {
	c := l.src[l.pos]
	l.pos++
	switch c {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case '0':
		return "\x00"
	case '\\', '\'', '"':
		return string(c)
	case '\n':
		l.line++
		return ""
	case 'x', 'u', 'U':
		width := map[byte]int{'x': 2, 'u': 4, 'U': 8}[c]
		if l.pos+width <= len(l.src) {
			if n, err := strconv.ParseUint(l.src[l.pos:l.pos+width], 16, 32); err == nil {
				l.pos += width
				return string(rune(n))
			}
		}
		return "\\" + string(c)
	default:
		return "\\" + string(c)
	}
}

func (l *lexer) scanNumber() (token, error) {
	start := l.pos
	seenDot, seenExp := false, false
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case isDigit(c) || c == '_':
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
		case (c == 'e' || c == 'E') && !seenExp && l.pos > start:
			seenExp = true
			if l.pos+1 < len(l.src) && (l.src[l.pos+1] == '+' || l.src[l.pos+1] == '-') {
				l.pos++
			}
		case (c == 'x' || c == 'X' || c == 'o' || c == 'O' || c == 'b' || c == 'B') && l.pos == start+1 && l.src[start] == '0':
			// hex/octal/binary literal
		case isIdentPart(c):
			// digits of a non-decimal base
			if !strings.ContainsAny(l.src[start:l.pos], "xXoObB") {
				return token{}, fmt.Errorf("line %d: malformed number literal", l.line)
			}
		default:
			goto done
		}
		l.pos++
	}
done:
	text := strings.ReplaceAll(l.src[start:l.pos], "_", "")
	if !seenDot && !seenExp {
		if n, err := strconv.ParseInt(text, 0, 64); err == nil {
			return token{kind: tokNumber, lit: n, line: l.line}, nil
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, fmt.Errorf("line %d: malformed number literal %q", l.line, text)
	}
	return token{kind: tokNumber, lit: f, line: l.line}, nil
}

// multi-character operators that must not be split; "==" in particular keeps
// the call parser from mistaking a comparison for a keyword argument.
var longOps = []string{"**", "==", "!=", "<=", ">=", "//", "->", ":=", "+=", "-=", "*=", "/="}

func (l *lexer) scanOp() (token, error) {
	for _, op := range longOps {
		if strings.HasPrefix(l.src[l.pos:], op) {
			l.pos += len(op)
			return token{kind: tokOp, lexeme: op, line: l.line}, nil
		}
	}
	c := l.src[l.pos]
	l.pos++
	return token{kind: tokOp, lexeme: string(c), line: l.line}, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= 0x80
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }
