package cmd

import (
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/animation"
)

func init() {
	RegisterCommand(&Command{
		Name:  "retarget",
		Short: "Compute a retargeted duration",
		Long: `Compute how long an animation from <from> towards <old> should take once it
is retargeted to <new>, by mapping the position of <new> back through the
timing curve.

Flags:
  --curve NAME      Timing curve (default from motion.yaml)
  --duration D      Duration before retargeting (default from motion.yaml)`,
		Usage: "motion retarget <from> <old> <new> [--curve NAME] [--duration D]",
		Run:   runRetarget,
	})
}

func runRetarget(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("from, old and new are required\n\nUsage: motion retarget <from> <old> <new>")
	}
	var vectors [3]animation.Vector
	for i := range vectors {
		v, err := parseVector(args[i])
		if err != nil {
			return err
		}
		vectors[i] = v
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	tf := cfg.Curve
	duration := cfg.Duration
	for i := 3; i < len(args); i++ {
		switch args[i] {
		case "--curve":
			v, err := flagValue(args, i)
			if err != nil {
				return err
			}
			if tf, err = lookupCurve(cfg, v); err != nil {
				return err
			}
			i++
		case "--duration":
			v, err := flagValue(args, i)
			if err != nil {
				return err
			}
			if duration, err = parseDuration("--duration", v); err != nil {
				return err
			}
			i++
		default:
			return fmt.Errorf("unknown flag %q", args[i])
		}
	}

	d, ok := animation.ComputeRetargetedDuration(vectors[0], vectors[1], vectors[2], duration, tf)
	if !ok {
		fmt.Fprintf(stdout, "unchanged: %v (no component can be mapped through %s)\n", duration, tf)
		return nil
	}
	fmt.Fprintf(stdout, "%v -> %v\n", duration, d.Round(time.Microsecond))
	return nil
}
