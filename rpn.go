package rpncalc

import (
	"math/big"
	"strings"
)

// cell is an element of a sequence in reverse Polish notation. It is either
// an operand or an operator.
type cell struct {
	kind cellKind
	// num is the value of an operand.
	num *big.Float
	// op is the operator of an operator cell.
	op operator
	// pos is the position of the token that produced the cell.
	pos int
}

type cellKind int8

const (
	cellNone cellKind = iota
	cellNum           // push num
	cellOp            // pop two, apply op, push
)

//go:generate go run golang.org/x/tools/cmd/stringer@v0.1.0 -type=cellKind -trimprefix=cell

func (c cell) String() string {
	switch c.kind {
	case cellNum:
		return c.num.Text('g', -1)
	case cellOp:
		return string(c.op.sym)
	default:
		return "$" + c.kind.String() + "$"
	}
}

// rpnString formats a sequence of cells separated by spaces.
func rpnString(cells []cell) string {
	var b strings.Builder
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}

// reduce evaluates a sequence of cells in reverse Polish notation. end is the
// token that ended the sequence, used to position errors for sequences which
// do not leave exactly one value.
func reduce(cells []cell, prec uint, end lexToken) (*big.Float, error) {
	stack := make([]*big.Float, 0, len(cells)/2+1)
	for _, c := range cells {
		switch c.kind {
		case cellNum:
			stack = append(stack, c.num)
		case cellOp:
			if len(stack) < 2 {
				return nil, &UnderflowError{Col: c.pos, Operator: string(c.op.sym), Have: len(stack)}
			}
			y := stack[len(stack)-1]
			x := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			r, err := c.op.eval(x, y, prec, c.pos)
			if err != nil {
				return nil, err
			}
			stack = append(stack, r)
		default:
			panic("rpncalc: invalid cell " + c.String() + " in " + rpnString(cells))
		}
	}
	switch len(stack) {
	case 0:
		return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
	case 1:
		return stack[0], nil
	default:
		return nil, &OperandError{Col: end.pos, Count: len(stack)}
	}
}

// eval computes x op y in a new value with the given precision. If the result
// would be NaN, the result is a DomainError instead.
func (o operator) eval(x, y *big.Float, prec uint, pos int) (r *big.Float, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if _, ok := p.(big.ErrNaN); !ok {
			panic(p)
		}
		r, err = nil, DomainError{X: y, Func: string(o.sym), Col: pos}
	}()
	r = new(big.Float).SetPrec(prec)
	switch o.sym {
	case '+':
		r.Add(x, y)
	case '-':
		r.Sub(x, y)
	case '*':
		r.Mul(x, y)
	case '/':
		r.Quo(x, y)
	default:
		panic("rpncalc: invalid operator " + string(o.sym))
	}
	return r, nil
}
