package rpncalc

import (
	"math/big"
	"strconv"
)

// DefaultPrec is the precision of calculations when no Prec option is given.
const DefaultPrec = 64

// Option is an option for evaluation.
type Option interface {
	option(config) config
}

type (
	precopt   uint
	strictopt struct{}
	depthopt  int
)

// config holds the settings for one evaluation.
type config struct {
	// prec is the mantissa precision of every number and intermediate result.
	prec uint
	// strict indicates that unrecognized characters are errors rather than
	// being ignored.
	strict bool
	// depth is the maximum bracket nesting depth, or 0 for no limit.
	depth int
}

func newConfig(opts []Option) config {
	c := config{prec: DefaultPrec}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.option(c)
	}
	return c
}

// Prec sets the precision of calculations in bits. Panics if prec is 0 or
// greater than big.MaxPrec.
func Prec(prec uint) Option {
	if prec == 0 || prec > big.MaxPrec {
		panic("rpncalc: invalid precision " + strconv.FormatUint(uint64(prec), 10))
	}
	return precopt(prec)
}

func (o precopt) option(c config) config {
	c.prec = uint(o)
	return c
}

// Strict makes characters other than digits, periods, operators, brackets,
// and whitespace into errors. By default, such characters are ignored apart
// from ending any number before them, so that e.g. "2x+3" evaluates as 5.
func Strict() Option {
	return strictopt{}
}

func (strictopt) option(c config) config {
	c.strict = true
	return c
}

// MaxDepth limits the nesting depth of brackets. "(1)" has depth 1. If n is
// not positive, there is no limit, which is the default.
func MaxDepth(n int) Option {
	if n < 0 {
		n = 0
	}
	return depthopt(n)
}

func (o depthopt) option(c config) config {
	c.depth = int(o)
	return c
}
