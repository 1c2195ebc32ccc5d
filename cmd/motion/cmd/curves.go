package cmd

import (
	"fmt"
	"sort"

	"github.com/go-drift/motion/pkg/animation"
)

func init() {
	RegisterCommand(&Command{
		Name:  "curves",
		Short: "List timing curves",
		Long: `List the timing curves available to animations.

Curves defined in motion.yaml are listed first and take precedence over
presets of the same name.`,
		Usage: "motion curves",
		Run:   runCurves,
	})
}

func runCurves(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if names := cfg.CurveNames(); len(names) > 0 {
		fmt.Fprintln(stdout, "Configured:")
		for _, name := range names {
			tf, _ := cfg.Lookup(name)
			printCurve(name, tf)
		}
		fmt.Fprintln(stdout)
	}

	fmt.Fprintln(stdout, "Presets:")
	names := animation.PresetNames()
	sort.Strings(names)
	for _, name := range names {
		tf, _ := animation.Preset(name)
		printCurve(name, tf)
	}
	return nil
}

func printCurve(name string, tf animation.TimingFunction) {
	detail := ""
	if b, ok := tf.UnitBezier(); ok {
		detail = fmt.Sprintf("(%g, %g) (%g, %g)", b.P1.X, b.P1.Y, b.P2.X, b.P2.Y)
	}
	fmt.Fprintf(stdout, "  %-18s %-9s %s\n", name, tf.Kind(), detail)
}
