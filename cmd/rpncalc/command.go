package main

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/zephyrtronium/rpncalc"
)

// newRootCommand returns the rpncalc command. With arguments, it evaluates
// each one; otherwise it reads expressions from its input line by line.
func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:      "rpncalc",
		Usage:     "Evaluate arithmetic expressions",
		ArgsUsage: "[expression ...]",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:    "prec",
				Aliases: []string{"p"},
				Usage:   "precision of calculations in bits",
				Value:   rpncalc.DefaultPrec,
				Sources: cli.EnvVars("RPNCALC_PREC"),
			},
			&cli.BoolFlag{
				Name:    "strict",
				Usage:   "reject unrecognized characters instead of ignoring them",
				Sources: cli.EnvVars("RPNCALC_STRICT"),
			},
			&cli.IntFlag{
				Name:    "max-depth",
				Usage:   "maximum bracket nesting depth (0 for no limit)",
				Sources: cli.EnvVars("RPNCALC_MAX_DEPTH"),
			},
			&cli.StringFlag{
				Name:  "fmt",
				Usage: "result formatting verb",
				Value: "%g",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Action: runRoot,
	}
}

func runRoot(ctx context.Context, cmd *cli.Command) error {
	level := slog.LevelWarn
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(orWriter(cmd.ErrWriter, os.Stderr), &slog.HandlerOptions{Level: level}))

	prec := uint(cmd.Uint("prec"))
	if prec == 0 || prec > big.MaxPrec {
		return errors.Errorf("precision (%d) must be between 1 and %d", prec, uint(big.MaxPrec))
	}
	verb := cmd.String("fmt")
	if err := checkVerb(verb); err != nil {
		return err
	}
	opts := []rpncalc.Option{
		rpncalc.Prec(prec),
		rpncalc.MaxDepth(int(cmd.Int("max-depth"))),
	}
	if cmd.Bool("strict") {
		opts = append(opts, rpncalc.Strict())
	}
	sh := &shell{
		out:  orWriter(cmd.Writer, os.Stdout),
		verb: verb,
		opts: opts,
		log:  log,
	}
	log.Debug("starting", "prec", prec, "strict", cmd.Bool("strict"), "args", cmd.Args().Len())

	if cmd.Args().Len() > 0 {
		return sh.evalAll(ctx, cmd.Args().Slice())
	}
	var in io.Reader = os.Stdin
	if cmd.Reader != nil {
		in = cmd.Reader
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		sh.prompt = prompt
	}
	return sh.run(ctx, in)
}

func orWriter(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
