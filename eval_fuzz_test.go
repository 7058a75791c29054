package rpncalc_test

import (
	"testing"

	"github.com/zephyrtronium/rpncalc"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("2+3*4")
	f.Add("((1+2)*(3+4))")
	f.Add("1.2.3/(0-0)")
	f.Add("0/0")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := rpncalc.Evaluate(s)
		if (r == nil) == (err == nil) {
			t.Errorf("evaluating %q gave result %v and error %v", s, r, err)
		}
		if err != nil {
			return
		}
		again, err := rpncalc.Evaluate(s)
		if err != nil {
			t.Fatalf("evaluating %q again gave error %v", s, err)
		}
		if again.Cmp(r) != 0 {
			t.Errorf("evaluating %q gave %v then %v", s, r, again)
		}
		f, err := rpncalc.EvaluateFloat64(s)
		if err != nil {
			t.Fatalf("evaluating %q as float64 gave error %v", s, err)
		}
		if want, _ := r.Float64(); f != want {
			t.Errorf("evaluating %q as float64 gave %v, want %v", s, f, want)
		}
	})
}
