package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/motion/pkg/animation"
)

func init() {
	RegisterCommand(&Command{
		Name:  "simulate",
		Short: "Print every frame of an animation",
		Long: `Run an animation from <from> to <to> on a frame driver and print the value
reported for every frame. Vectors are comma-separated components, e.g. 0,0.

Flags:
  --curve NAME          Timing curve (default from motion.yaml)
  --duration D          Duration of one pass (default from motion.yaml)
  --fps N               Frames per second (default 60)
  --repeat              Repeat indefinitely
  --autoreverse         Alternate direction when repeating
  --integral            Round the final value to the pixel grid
  --scale S             Device pixels per unit for --integral
  --retarget V@FRAME    Retarget to V before FRAME
  --reverse-at FRAME    Reverse direction before FRAME
  --stop-at FRAME       Stop in place before FRAME
  --max-frames N        Give up after N frames (default 600)`,
		Usage: "motion simulate <from> <to> [flags]",
		Run:   runSimulate,
	})
}

type retargetStep struct {
	frame  int
	target animation.Vector
}

type simulateOptions struct {
	curve       string
	duration    time.Duration
	fps         int
	repeat      bool
	autoreverse bool
	integral    bool
	scale       float64
	retargets   []retargetStep
	reverseAt   int
	stopAt      int
	maxFrames   int
}

func runSimulate(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("from and to are required\n\nUsage: motion simulate <from> <to> [flags]")
	}
	from, err := parseVector(args[0])
	if err != nil {
		return err
	}
	to, err := parseVector(args[1])
	if err != nil {
		return err
	}
	if len(from) != len(to) {
		return fmt.Errorf("from and to must have the same number of components (%d != %d)", len(from), len(to))
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := parseSimulateOptions(args[2:])
	if err != nil {
		return err
	}

	a := cfg.NewAnimation(from, to)
	if opts.curve != "" {
		if a.Timing, err = lookupCurve(cfg, opts.curve); err != nil {
			return err
		}
	}
	if opts.duration >= 0 {
		a.Duration = opts.duration
	}
	if opts.integral {
		a.IntegralizeValues = true
	}
	if opts.scale > 0 {
		a.PixelScale = opts.scale
	}
	a.SetRepeats(opts.repeat)
	a.SetAutoreverses(opts.autoreverse)

	frame := time.Second / time.Duration(opts.fps)
	n := 0
	a.ValueChanged = func(v animation.Vector) {
		fmt.Fprintf(stdout, "%4d  %8v  %v\n", n, time.Duration(n)*frame, v)
	}
	a.Completion = func(e animation.Event) {
		fmt.Fprintf(stdout, "%4d  %8v  %v\n", n, time.Duration(n)*frame, e)
	}

	fmt.Fprintf(stdout, "%s over %v at %d fps\n", a.Timing, a.Duration, opts.fps)

	driver := animation.NewFrameDriver(nil)
	a.Start(driver, 0)
	for n = 1; n <= opts.maxFrames; n++ {
		for _, r := range opts.retargets {
			if r.frame == n {
				a.Retarget(r.target)
			}
		}
		if opts.reverseAt == n {
			a.SetReversed(!a.IsReversed())
		}
		if opts.stopAt == n {
			a.Stop(false)
		}
		driver.Step(frame)
		if !driver.HasActive() {
			fmt.Fprintf(stdout, "settled after %d frames (%s)\n", n, a.State())
			return nil
		}
	}
	fmt.Fprintf(stdout, "still %s after %d frames\n", a.State(), opts.maxFrames)
	return nil
}

func parseSimulateOptions(args []string) (simulateOptions, error) {
	opts := simulateOptions{duration: -1, fps: 60, maxFrames: 600}
	for i := 0; i < len(args); i++ {
		flag := args[i]
		switch flag {
		case "--repeat":
			opts.repeat = true
			continue
		case "--autoreverse":
			opts.autoreverse = true
			continue
		case "--integral":
			opts.integral = true
			continue
		}

		v, err := flagValue(args, i)
		if err != nil {
			return opts, err
		}
		i++
		switch flag {
		case "--curve":
			opts.curve = v
		case "--duration":
			opts.duration, err = parseDuration(flag, v)
		case "--fps":
			opts.fps, err = parsePositiveInt(flag, v)
		case "--scale":
			opts.scale, err = strconv.ParseFloat(v, 64)
			if err == nil && opts.scale <= 0 {
				err = fmt.Errorf("--scale must be positive (got %s)", v)
			}
		case "--retarget":
			var r retargetStep
			r, err = parseRetargetStep(v)
			opts.retargets = append(opts.retargets, r)
		case "--reverse-at":
			opts.reverseAt, err = parsePositiveInt(flag, v)
		case "--stop-at":
			opts.stopAt, err = parsePositiveInt(flag, v)
		case "--max-frames":
			opts.maxFrames, err = parsePositiveInt(flag, v)
		default:
			return opts, fmt.Errorf("unknown flag %q", flag)
		}
		if err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// parseRetargetStep parses "V@FRAME".
func parseRetargetStep(s string) (retargetStep, error) {
	value, frame, ok := strings.Cut(s, "@")
	if !ok {
		return retargetStep{}, fmt.Errorf("--retarget expects VALUE@FRAME (got %q)", s)
	}
	target, err := parseVector(value)
	if err != nil {
		return retargetStep{}, err
	}
	n, err := parsePositiveInt("--retarget frame", frame)
	if err != nil {
		return retargetStep{}, err
	}
	return retargetStep{frame: n, target: target}, nil
}
