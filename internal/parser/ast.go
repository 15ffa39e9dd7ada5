// Package parser locates a setup(...) call in Python source text and parses
// its keyword arguments into a small tree of tagged values. It recognizes one
// call shape only; everything else in the file is ignored.
package parser

// Call is a matched setup(...) invocation.
type Call struct {
	// Callee is the callee as written, e.g. "setup" or "setuptools.setup".
	Callee string

	// Keywords are the name=value arguments in source order. A Keyword with
	// an empty Name comes from a **kwargs-style argument.
	Keywords []Keyword
}

// Keyword is a single keyword argument of the call.
type Keyword struct {
	Name  string
	Value Value
}

// Value is a keyword argument value reduced to a closed set of shapes.
// Expressions the tool cannot represent parse as Unsupported instead of
// being dropped during scanning, so the extractor decides what to do
// with them.
type Value interface {
	valueNode()
}

// String is a decoded string literal. Adjacent literals are concatenated
// the way the source language joins them.
type String struct {
	Text string
}

// Sequence is a list or tuple literal. Elements keep their own shapes.
type Sequence struct {
	Elems []Value
}

// Name is a bare identifier reference. The tool performs no evaluation;
// the identifier text itself stands in for the value.
type Name struct {
	Ident string
}

// Scalar is a non-string constant: int64, float64, bool, or nil for None.
type Scalar struct {
	Value any
}

// Unsupported is any expression shape the tool does not model: calls,
// dicts, comprehensions, operators, formatted strings.
type Unsupported struct {
	// Reason is a short human-readable description of the shape.
	Reason string
}

func (String) valueNode()      {}
func (Sequence) valueNode()    {}
func (Name) valueNode()        {}
func (Scalar) valueNode()      {}
func (Unsupported) valueNode() {}
