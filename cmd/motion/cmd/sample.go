package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-drift/motion/pkg/animation"
)

func init() {
	RegisterCommand(&Command{
		Name:  "sample",
		Short: "Tabulate a timing curve",
		Long: `Print the output progress of a timing curve at evenly spaced input times.

The solver precision is derived from the duration, exactly as for a running
animation of that length.

Flags:
  --steps N         Number of intervals (default 10)
  --duration D      Animation duration used for precision (default from motion.yaml)
  --inverse         Tabulate the inverse curve instead`,
		Usage: "motion sample <curve> [--steps N] [--duration D] [--inverse]",
		Run:   runSample,
	})
}

type sampleOptions struct {
	steps    int
	duration time.Duration
	inverse  bool
}

func runSample(args []string) error {
	if len(args) == 0 || strings.HasPrefix(args[0], "--") {
		return fmt.Errorf("curve is required\n\nUsage: motion sample <curve>")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	tf, err := lookupCurve(cfg, args[0])
	if err != nil {
		return err
	}

	opts := sampleOptions{steps: 10, duration: cfg.Duration}
	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "--steps":
			v, err := flagValue(args, i)
			if err != nil {
				return err
			}
			if opts.steps, err = parsePositiveInt("--steps", v); err != nil {
				return err
			}
			i++
		case "--duration":
			v, err := flagValue(args, i)
			if err != nil {
				return err
			}
			if opts.duration, err = parseDuration("--duration", v); err != nil {
				return err
			}
			i++
		case "--inverse":
			opts.inverse = true
		default:
			return fmt.Errorf("unknown flag %q", args[i])
		}
	}

	eps := animation.EpsilonForDuration(opts.duration)
	fmt.Fprintf(stdout, "%s (%v)\n", tf, opts.duration)
	for i := 0; i <= opts.steps; i++ {
		x := float64(i) / float64(opts.steps)
		var y float64
		if opts.inverse {
			y = tf.Inverse(x, eps)
		} else {
			y = tf.Solve(x, eps)
		}
		fmt.Fprintf(stdout, "  %.3f  %.4f\n", x, y)
	}
	return nil
}
