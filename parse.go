package rpncalc

import (
	"math/big"
)

// Expr = num | Add | Sub | Mul | Div | '(' Expr ')'
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr

// parser evaluates a token sequence. Each bracketed group is arranged into
// reverse Polish notation and reduced as soon as its close bracket is found.
type parser struct {
	toks []lexToken
	// prec is the precision of numbers.
	prec uint
	// depth is the maximum bracket nesting depth, or 0 for no limit.
	depth int
}

// frame is the state of one bracketed group. Frames form an explicit stack
// rather than using recursion so that nesting depth is bounded only by memory.
type frame struct {
	// out is the group's RPN sequence so far.
	out []cell
	// ops is the stack of operators waiting for their right operands.
	ops []cell
	// open is the bracket that opened the group. It is a tokenNone token for
	// the outermost group.
	open lexToken
}

// operator adds a binary operator to the frame. Pending operators which bind
// at least as tightly are moved to the output first, so that operators of
// equal precedence associate to the left.
func (f *frame) operator(tok lexToken) {
	o := binop(tok.text)
	if o.sym == 0 {
		panic("rpncalc: unknown operator token " + tok.String())
	}
	for len(f.ops) > 0 {
		top := f.ops[len(f.ops)-1]
		if o.moreBinding(top.op) {
			break
		}
		f.out = append(f.out, top)
		f.ops = f.ops[:len(f.ops)-1]
	}
	f.ops = append(f.ops, cell{kind: cellOp, op: o, pos: tok.pos})
}

// close moves all pending operators to the output, last pushed first, and
// reduces the result.
func (f *frame) close(prec uint, end lexToken) (*big.Float, error) {
	for i := len(f.ops) - 1; i >= 0; i-- {
		f.out = append(f.out, f.ops[i])
	}
	f.ops = f.ops[:0]
	return reduce(f.out, prec, end)
}

// parse evaluates the group beginning at toks[start]. The group ends at EOF or
// at a close bracket that has no matching open bracket after start. The
// second result is the index of the token that ended the group; that token is
// not consumed, so it is either EOF or a close bracket.
func (p *parser) parse(start int) (*big.Float, int, error) {
	stack := []frame{{}}
	i := start
	for {
		tok := p.toks[i]
		f := &stack[len(stack)-1]
		switch tok.kind {
		case tokenNum:
			x, _, err := new(big.Float).SetPrec(p.prec).Parse(tok.text, 10)
			if err != nil {
				return nil, i, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
			}
			f.out = append(f.out, cell{kind: cellNum, num: x, pos: tok.pos})
		case tokenOp:
			f.operator(tok)
		case tokenOpen:
			if p.depth > 0 && len(stack) > p.depth {
				return nil, i, &DepthError{Col: tok.pos, Max: p.depth}
			}
			stack = append(stack, frame{open: tok})
		case tokenClose, tokenEOF:
			if len(stack) == 1 {
				r, err := f.close(p.prec, tok)
				return r, i, err
			}
			if tok.kind == tokenEOF {
				return nil, i, &BracketError{Col: f.open.pos, Left: f.open.text}
			}
			r, err := f.close(p.prec, tok)
			if err != nil {
				return nil, i, err
			}
			open := f.open
			stack = stack[:len(stack)-1]
			g := &stack[len(stack)-1]
			g.out = append(g.out, cell{kind: cellNum, num: r, pos: open.pos})
		default:
			panic("rpncalc: unknown token: " + tok.String())
		}
		i++
	}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// sym is the operator's symbol.
	sym byte
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has a sym of 0.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, '+'}
	case "-":
		return operator{1, false, '-'}
	case "*":
		return operator{5, false, '*'}
	case "/":
		return operator{5, false, '/'}
	default:
		return operator{}
	}
}
