package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSetupCall reports that the source contains no setup(...) invocation.
// Callers treat this as a reportable condition, not a failure.
var ErrNoSetupCall = errors.New("no setup call found")

// FindSetupCall scans source text for the first call whose callee is the
// identifier setup, bare or attribute-qualified (setuptools.setup). Returns
// ErrNoSetupCall when the file contains no such call; any other error is a
// lexical error in the source itself.
func FindSetupCall(src string) (*Call, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, fmt.Errorf("scanning source: %w", err)
	}

	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.kind != tokIdent || t.lexeme != "setup" {
			continue
		}
		if i+1 >= len(toks) || !toks[i+1].isOp("(") {
			continue
		}
		// "def setup(" declares a function rather than calling one.
		if i > 0 && toks[i-1].kind == tokIdent && toks[i-1].lexeme == "def" {
			continue
		}

		call := &Call{Callee: calleePath(toks, i)}
		p := &argParser{toks: toks, pos: i + 2}
		if err := p.parseArgs(call); err != nil {
			return nil, err
		}
		return call, nil
	}
	return nil, ErrNoSetupCall
}

// calleePath walks backwards over a dotted chain (pkg.mod.setup) to rebuild
// the callee as written.
func calleePath(toks []token, i int) string {
	parts := []string{toks[i].lexeme}
	for i >= 2 && toks[i-1].isOp(".") && toks[i-2].kind == tokIdent {
		i -= 2
		parts = append([]string{toks[i].lexeme}, parts...)
	}
	return strings.Join(parts, ".")
}

// argParser consumes the argument list of a single call, starting just after
// the opening parenthesis.
type argParser struct {
	toks []token
	pos  int
}

func (p *argParser) peek() token { return p.toks[p.pos] }

func (p *argParser) advance() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *argParser) parseArgs(call *Call) error {
	for {
		switch t := p.peek(); {
		case t.kind == tokEOF:
			return fmt.Errorf("line %d: unterminated call argument list", t.line)
		case t.isOp(")"):
			p.advance()
			return nil
		case t.isOp(","):
			p.advance()
		case t.isOp("**"):
			// **kwargs has no keyword name; surface it so the extractor
			// can report it instead of silently losing it.
			p.advance()
			v := p.parseValue()
			call.Keywords = append(call.Keywords, Keyword{Name: "", Value: v})
		case t.kind == tokIdent && p.toks[p.pos+1].isOp("="):
			name := p.advance().lexeme
			p.advance() // "="
			v := p.parseValue()
			call.Keywords = append(call.Keywords, Keyword{Name: name, Value: v})
		default:
			// positional argument: not part of the recognized shape
			p.skipExpr()
		}
	}
}

// parseValue parses one argument value. A primary shape followed by trailing
// operators (string concatenation with "+", conditionals, arithmetic) is
// demoted to Unsupported as a whole.
func (p *argParser) parseValue() Value {
	start := p.pos
	v := p.parsePrimary()
	if t := p.peek(); !t.isOp(",") && !t.isOp(")") && !t.isOp("]") && !t.isOp("}") && t.kind != tokEOF {
		p.pos = start
		p.skipExpr()
		return Unsupported{Reason: "computed expression"}
	}
	return v
}

func (p *argParser) parsePrimary() Value {
	switch t := p.peek(); {
	case t.kind == tokString:
		return p.parseStringConcat()
	case t.kind == tokFString:
		p.skipExpr()
		return Unsupported{Reason: "formatted string literal"}
	case t.kind == tokNumber:
		p.advance()
		return Scalar{Value: t.lit}
	case t.kind == tokIdent:
		switch t.lexeme {
		case "True":
			p.advance()
			return Scalar{Value: true}
		case "False":
			p.advance()
			return Scalar{Value: false}
		case "None":
			p.advance()
			return Scalar{Value: nil}
		}
		if next := p.toks[p.pos+1]; next.isOp("(") || next.isOp(".") || next.isOp("[") {
			p.skipExpr()
			return Unsupported{Reason: "call or attribute expression"}
		}
		p.advance()
		return Name{Ident: t.lexeme}
	case t.isOp("[") || t.isOp("("):
		return p.parseSequence()
	case t.isOp("{"):
		p.skipExpr()
		return Unsupported{Reason: "dict or set literal"}
	default:
		p.skipExpr()
		return Unsupported{Reason: "operator expression"}
	}
}

// parseStringConcat folds adjacent string literals into one, the way the
// source language concatenates them. A formatted literal in the run poisons
// the whole value.
func (p *argParser) parseStringConcat() Value {
	var b strings.Builder
	for {
		t := p.peek()
		if t.kind == tokString {
			b.WriteString(t.lit.(string))
			p.advance()
			continue
		}
		if t.kind == tokFString {
			p.skipExpr()
			return Unsupported{Reason: "formatted string literal"}
		}
		return String{Text: b.String()}
	}
}

func (p *argParser) parseSequence() Value {
	open := p.advance().lexeme
	closer := map[string]string{"[": "]", "(": ")"}[open]

	seq := Sequence{}
	sawComma := false
	for {
		switch t := p.peek(); {
		case t.kind == tokEOF:
			return Unsupported{Reason: "unterminated sequence literal"}
		case t.isOp(closer):
			p.advance()
			// a parenthesized value without a comma is grouping, not a tuple
			if open == "(" && !sawComma && len(seq.Elems) == 1 {
				return seq.Elems[0]
			}
			return seq
		case t.isOp(","):
			sawComma = true
			p.advance()
		default:
			seq.Elems = append(seq.Elems, p.parseValue())
		}
	}
}

// skipExpr consumes a balanced expression up to, but not including, the next
// comma or closer at the current nesting depth.
func (p *argParser) skipExpr() {
	depth := 0
	for {
		t := p.peek()
		switch {
		case t.kind == tokEOF:
			return
		case t.isOp("(") || t.isOp("[") || t.isOp("{"):
			depth++
		case t.isOp(")") || t.isOp("]") || t.isOp("}"):
			if depth == 0 {
				return
			}
			depth--
		case t.isOp(","):
			if depth == 0 {
				return
			}
		}
		p.advance()
	}
}
