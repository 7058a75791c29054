package rpncalc

import (
	"io"
	"math/big"
	"strings"
)

// Eval reads an expression to the end of src and evaluates it. Each call is
// independent, so Eval is safe to call concurrently.
func Eval(src io.RuneReader, opts ...Option) (*big.Float, error) {
	cfg := newConfig(opts)
	toks, err := tokenize(src, cfg.strict)
	if err != nil {
		return nil, err
	}
	p := parser{toks: toks, prec: cfg.prec, depth: cfg.depth}
	r, k, err := p.parse(0)
	if err != nil {
		return nil, err
	}
	if end := toks[k]; end.kind != tokenEOF {
		// The outermost group can only end early on a close bracket.
		return nil, &BracketError{Col: end.pos, Right: end.text}
	}
	return r, nil
}

// Evaluate is a shortcut to evaluate a string expression.
func Evaluate(src string, opts ...Option) (*big.Float, error) {
	return Eval(strings.NewReader(src), opts...)
}

// EvaluateFloat64 evaluates a string expression and rounds the result to the
// nearest float64.
func EvaluateFloat64(src string, opts ...Option) (float64, error) {
	r, err := Evaluate(src, opts...)
	if err != nil {
		return 0, err
	}
	f, _ := r.Float64()
	return f, nil
}
