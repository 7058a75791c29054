package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/zephyrtronium/rpncalc"
)

const (
	// prompt is shown before each line when reading from a terminal.
	prompt = "Digite a expressão matemática (ou 'sair' para terminar): "
	// sentinel is the line that ends the input loop, compared without case
	// or surrounding whitespace.
	sentinel = "sair"
	// maxLine is the longest line evaluated. Longer lines are reported and skipped.
	maxLine = 1 << 20
)

// shell evaluates expressions and prints their results. A failed evaluation
// prints a message and never stops the shell.
type shell struct {
	out    io.Writer
	prompt string
	verb   string
	opts   []rpncalc.Option
	log    *slog.Logger
}

// run evaluates each line of in until EOF, the sentinel line, or the context
// is done. Cancelling the context stops run even while it waits for input.
func (sh *shell) run(ctx context.Context, in io.Reader) error {
	if err := ctx.Err(); err != nil {
		sh.log.Debug("stopping", "reason", err)
		return nil
	}
	lines := readLines(ctx, in)
	for {
		fmt.Fprint(sh.out, sh.prompt)
		var l line
		var ok bool
		select {
		case <-ctx.Done():
			sh.log.Debug("stopping", "reason", ctx.Err())
			return nil
		case l, ok = <-lines:
		}
		switch {
		case !ok:
			return nil
		case l.err != nil:
			return errors.Wrap(l.err, "reading input")
		case l.long:
			sh.log.Debug("line too long", "limit", maxLine)
			fmt.Fprintf(sh.out, "Erro: line longer than %d bytes\n", maxLine)
			continue
		}
		if strings.EqualFold(strings.TrimSpace(l.text), sentinel) {
			return nil
		}
		sh.eval(l.text)
	}
}

// line is one line of input, or the error that ended the input.
type line struct {
	text string
	// long indicates that the line exceeded maxLine. Its text is discarded.
	long bool
	err  error
}

// readLines sends each line of in on the returned channel until EOF, a read
// error, or ctx is done, then closes the channel. A read that is blocked when
// ctx ends is not interrupted; its goroutine exits once the read returns.
func readLines(ctx context.Context, in io.Reader) <-chan line {
	ch := make(chan line)
	go func() {
		defer close(ch)
		r := bufio.NewReader(in)
		for {
			l, err := readLine(r)
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				l.err = err
			}
			select {
			case ch <- l:
			case <-ctx.Done():
				return
			}
			if l.err != nil {
				return
			}
		}
	}()
	return ch
}

// readLine reads one line without its line ending. A line longer than maxLine
// is read to its end but returned empty and marked long. The error is non-nil
// only if no line could be read.
func readLine(r *bufio.Reader) (line, error) {
	var l line
	var b []byte
	for {
		frag, more, err := r.ReadLine()
		if err != nil {
			return line{}, err
		}
		if !l.long {
			if len(b)+len(frag) > maxLine {
				l.long = true
				b = nil
			} else {
				b = append(b, frag...)
			}
		}
		if !more {
			l.text = string(b)
			return l, nil
		}
	}
}

// evalAll evaluates each of srcs. The result is an error if any evaluation
// failed.
func (sh *shell) evalAll(ctx context.Context, srcs []string) error {
	failed := 0
	for _, src := range srcs {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "interrupted")
		}
		if !sh.eval(src) {
			failed++
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d expressions failed", failed, len(srcs))
	}
	return nil
}

// eval evaluates one expression and prints its result or error. It reports
// whether evaluation succeeded.
func (sh *shell) eval(src string) bool {
	r, err := rpncalc.Evaluate(src, sh.opts...)
	if err != nil {
		sh.log.Debug("evaluation failed", "expr", src, "error", err)
		fmt.Fprintf(sh.out, "Erro: %v\n", err)
		return false
	}
	sh.log.Debug("evaluated", "expr", src, "result", r.Text('g', -1))
	fmt.Fprintf(sh.out, "Resultado: %s\n", fmt.Sprintf(sh.verb, r))
	return true
}

// checkVerb reports an error if verb does not format exactly one result,
// e.g. "%g %g" or "x".
func checkVerb(verb string) error {
	if s := fmt.Sprintf(verb, big.NewFloat(1)); strings.Contains(s, "%!") {
		return errors.Errorf("invalid result format %q: formats as %q", verb, s)
	}
	return nil
}
