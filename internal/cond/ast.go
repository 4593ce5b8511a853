// Package cond implements the condition mini-language used by
// :drop/:take/:drop while/:take while (spec.md §4.4): a small
// recursive-descent parser producing an AST, evaluated by a pure
// function from record to boolean. The Node interface follows the same
// shape as the teacher's internal/llmsh/parser.Node (a small tagged-union
// interface, one struct per case) with an Eval method in place of the
// teacher's String-only rendering.
package cond

import "github.com/oyealex/rp/internal/record"

// Node is one condition AST leaf. The language has no boolean
// combinators (and/or/not-of-subexpression) — each :drop/:take argument
// compiles to exactly one Node, per spec.md §3/§4.4.
type Node interface {
	// Eval reports whether r satisfies the condition. It returns an
	// updated Record because evaluating a numeric condition may
	// populate the record's lazily-cached numeric view.
	Eval(r record.Record) (record.Record, bool, error)
}

// NumKind enumerates the "is a number of this kind" classifications.
type NumKind int

const (
	KindAny NumKind = iota
	KindInteger
	KindFloat
)

// LenRange is `len MIN,MAX [!]`.
type LenRange struct {
	Min, Max *int
	Negated  bool
}

// LenEq is `len =N [!]`.
type LenEq struct {
	N       int
	Negated bool
}

// NumRange is `num MIN,MAX [!]`.
type NumRange struct {
	Min, Max *float64
	Negated  bool
}

// NumEq is `num =V [!]`.
type NumEq struct {
	Value   float64
	Negated bool
}

// NumKindNode is `num` / `num integer` / `num float` [!].
type NumKindNode struct {
	Kind    NumKind
	Negated bool
}

// Upper is `upper`.
type Upper struct{}

// Lower is `lower`.
type Lower struct{}

// Empty is `empty`.
type Empty struct{}

// Blank is `blank`.
type Blank struct{}
