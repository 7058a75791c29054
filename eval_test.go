package rpncalc_test

import (
	"errors"
	"math"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/zephyrtronium/rpncalc"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"multidigit", "9876543210", 9876543210},
		{"decimal", "12.5", 12.5},
		{"leading-dot", ".5", 0.5},
		{"trailing-dot", "5.", 5},
		{"add", "4+5+6", 4 + 5 + 6},
		{"sub", "10-2-3", 5},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"div", "8/2/2", 2},
		{"div-mul", "8/2*2", 8},
		{"mul-div", "3*4/6", 2},
		{"sub-add", "10-2+3", 11},
		{"precedence", "2+3*4", 14},
		{"precedence-rhs", "2*3+4", 10},
		{"precedence-mixed", "1+2*3-4/2", 5},
		{"group", "(2+3)*4", 20},
		{"group-rhs", "2*(3+4)", 14},
		{"nested", "((1+2)*(3+4))", 21},
		{"deep", "((((((1))))))", 1},
		{"group-sub", "10-(2-3)", 11},
		{"decimal-mul", "1.5*2", 3},
		{"spaces", " 1 + 2 ", 3},
		{"tabs", "\t(1\t+\t2)\t*\t3", 9},
		{"ignored", "2a+b3", 5},
		{"quarter", "1/4", 0.25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := rpncalc.Evaluate(c.src)
			if err != nil {
				t.Fatalf("evaluating %q: %v", c.src, err)
			}
			if r == nil {
				t.Fatal("nil result")
			}
			if f, _ := r.Float64(); f != c.r {
				t.Errorf("evaluating %q: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	for _, src := range []string{"2+3*4", "(1.5+2.25)/3", "1/3"} {
		a, err := rpncalc.Evaluate(src)
		if err != nil {
			t.Fatal(err)
		}
		b, err := rpncalc.Evaluate(src)
		if err != nil {
			t.Fatal(err)
		}
		if a.Cmp(b) != 0 {
			t.Errorf("evaluating %q twice gave %g and %g", src, a, b)
		}
		if a == b {
			t.Errorf("evaluating %q twice returned the same value", src)
		}
	}
}

func TestEvaluateWhitespace(t *testing.T) {
	pairs := [][2]string{
		{"1+2", "1 + 2"},
		{"(2+3)*4", " ( 2 + 3 ) * 4 "},
		{"1.5*2", "1.5\t*\n2"},
	}
	for _, p := range pairs {
		a, err := rpncalc.Evaluate(p[0])
		if err != nil {
			t.Fatal(err)
		}
		b, err := rpncalc.Evaluate(p[1])
		if err != nil {
			t.Fatal(err)
		}
		if a.Cmp(b) != 0 {
			t.Errorf("%q gave %g but %q gave %g", p[0], a, p[1], b)
		}
	}
}

func TestEvaluateDivideByZero(t *testing.T) {
	cases := []struct {
		src string
		neg bool
	}{
		{"5/0", false},
		{"5/(2-2)", false},
		{"0-5/0", true},
		{"1/0*2", false},
		{"1/0+1/0", false},
	}
	for _, c := range cases {
		r, err := rpncalc.Evaluate(c.src)
		if err != nil {
			t.Errorf("evaluating %q: %v", c.src, err)
			continue
		}
		if !r.IsInf() || r.Signbit() != c.neg {
			t.Errorf("evaluating %q: want infinity with sign bit %t, got %g", c.src, c.neg, r)
		}
	}
	f, err := rpncalc.EvaluateFloat64("5/0")
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(f, 1) {
		t.Errorf("want +Inf, got %g", f)
	}
}

func TestEvaluateErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		is   error
		col  int
		msg  string
	}{
		{"empty", "", rpncalc.ErrMalformed, 1, `(?i)\bno expression\b`},
		{"blank", "   ", rpncalc.ErrMalformed, 4, `(?i)\bno expression\b`},
		{"underflow", "+5", rpncalc.ErrUnderflow, 1, `(?i)\boperands\b`},
		{"underflow-end", "5*", rpncalc.ErrUnderflow, 2, `(?i)\boperands\b`},
		{"underflow-double", "1+*2", rpncalc.ErrUnderflow, 2, `\+`},
		{"number", "1.2.3+4", rpncalc.ErrNumber, 1, `1\.2\.3`},
		{"dot", "3*.", rpncalc.ErrNumber, 3, `(?i)\bnumber\b`},
		{"zero-by-zero", "0/0", rpncalc.ErrDomain, 2, `(?i)\bdomain\b`},
		{"inf-minus-inf", "1/0-1/0", rpncalc.ErrDomain, 4, `(?i)\bdomain\b`},
		{"unclosed", "2*(3+4", rpncalc.ErrMalformed, 3, `(?i)\bno close bracket\b`},
		{"unopened", "2+3*4)", rpncalc.ErrMalformed, 6, `(?i)\bno open bracket\b`},
		{"unopened-early", "1)+5", rpncalc.ErrMalformed, 2, `(?i)\bno open bracket\b`},
		{"empty-group", "2*()", rpncalc.ErrMalformed, 4, `(?i)\bno expression\b`},
		{"operands", "1 2", rpncalc.ErrMalformed, 4, `(?i)\bmissing operator\b`},
		{"implicit-mul", "2(3)", rpncalc.ErrMalformed, 5, `(?i)\bmissing operator\b`},
		{"letters", "sair", rpncalc.ErrMalformed, 5, `(?i)\bno expression\b`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := rpncalc.Evaluate(c.src)
			if r != nil {
				t.Errorf("evaluating %q gave non-nil result %g", c.src, r)
			}
			if err == nil {
				t.Fatalf("evaluating %q gave no error", c.src)
			}
			if !errors.Is(err, c.is) {
				t.Errorf("evaluating %q: %v is not %v", c.src, err, c.is)
			}
			var ie rpncalc.InputError
			if !errors.As(err, &ie) {
				t.Fatalf("evaluating %q: %#v is not an InputError", c.src, err)
			}
			if ie.Pos() != c.col {
				t.Errorf("evaluating %q: error at %d, want %d", c.src, ie.Pos(), c.col)
			}
			if !regexp.MustCompile(c.msg).MatchString(err.Error()) {
				t.Errorf("evaluating %q: %q doesn't match %s", c.src, err.Error(), c.msg)
			}
		})
	}
}

func TestEvaluateStrict(t *testing.T) {
	if _, err := rpncalc.Evaluate(" (1 + 2) * 3 ", rpncalc.Strict()); err != nil {
		t.Errorf("strict evaluation of valid input failed: %v", err)
	}
	_, err := rpncalc.Evaluate("2x3", rpncalc.Strict())
	var le *rpncalc.LexError
	if !errors.As(err, &le) {
		t.Fatalf("want LexError, got %v", err)
	}
	if le.Col != 2 || le.Text != "x" {
		t.Errorf("wrong error %+v", le)
	}
	if !errors.Is(err, rpncalc.ErrCharacter) {
		t.Errorf("%v is not ErrCharacter", err)
	}
	// Without Strict, x is dropped, but it still ends the literal before it.
	r, err := rpncalc.EvaluateFloat64("2x+3")
	if err != nil {
		t.Fatal(err)
	}
	if r != 5 {
		t.Errorf("want 5, got %g", r)
	}
	_, err = rpncalc.Evaluate("2x3")
	if !errors.Is(err, rpncalc.ErrMalformed) {
		t.Errorf("want ErrMalformed, got %v", err)
	}
}

func TestEvaluateMaxDepth(t *testing.T) {
	src := strings.Repeat("(", 10) + "1" + strings.Repeat(")", 10)
	if _, err := rpncalc.Evaluate(src, rpncalc.MaxDepth(10)); err != nil {
		t.Errorf("depth 10 at limit 10: %v", err)
	}
	_, err := rpncalc.Evaluate(src, rpncalc.MaxDepth(9))
	if !errors.Is(err, rpncalc.ErrTooDeep) {
		t.Errorf("depth 10 at limit 9: want ErrTooDeep, got %v", err)
	}
	// Without a limit, nesting is bounded by memory rather than the goroutine
	// stack.
	deep := strings.Repeat("(", 100000) + "1+1" + strings.Repeat(")", 100000)
	r, err := rpncalc.EvaluateFloat64(deep)
	if err != nil {
		t.Fatal(err)
	}
	if r != 2 {
		t.Errorf("want 2, got %g", r)
	}
}

func TestEvaluatePrec(t *testing.T) {
	r, err := rpncalc.Evaluate("1/3", rpncalc.Prec(200))
	if err != nil {
		t.Fatal(err)
	}
	if r.Prec() != 200 {
		t.Errorf("want prec 200, got %d", r.Prec())
	}
	d, err := rpncalc.Evaluate("1/3")
	if err != nil {
		t.Fatal(err)
	}
	if d.Prec() != rpncalc.DefaultPrec {
		t.Errorf("want default prec %d, got %d", rpncalc.DefaultPrec, d.Prec())
	}
	// 0.1 is not exact in binary, so precision shows in the sum.
	lo, _ := rpncalc.Evaluate("0.1+0.2", rpncalc.Prec(8))
	hi, _ := rpncalc.Evaluate("0.1+0.2", rpncalc.Prec(100))
	if lo.Cmp(hi) == 0 {
		t.Errorf("precision made no difference: %g", lo)
	}
}

func TestPrecPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Prec(0) did not panic")
		}
	}()
	rpncalc.Prec(0)
}

func TestEvaluateConcurrent(t *testing.T) {
	cases := map[string]float64{
		"2+3*4":         14,
		"(2+3)*4":       20,
		"10-2-3":        5,
		"((1+2)*(3+4))": 21,
	}
	var wg sync.WaitGroup
	for src, want := range cases {
		src, want := src, want
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					f, err := rpncalc.EvaluateFloat64(src)
					if err != nil {
						t.Errorf("evaluating %q: %v", src, err)
						return
					}
					if f != want {
						t.Errorf("evaluating %q: want %g, got %g", src, want, f)
						return
					}
				}
			}()
		}
	}
	wg.Wait()
}
