package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-drift/motion/cmd/motion/internal/project"
	"github.com/go-drift/motion/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "status",
		Short: "Show resolved configuration",
		Long: `Show the enclosing Go module and the animation defaults resolved from
motion.yaml, or the built-in defaults when there is none.`,
		Usage: "motion status",
		Run:   runStatus,
	})
}

func runStatus(args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	if root, err := project.FindRoot(cwd); err == nil {
		info, err := project.Load(root)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Module: %s (%s)\n", info.ModulePath, info.Name)
		if info.Invalid != nil {
			fmt.Fprintf(stdout, "  warning: %v\n", info.Invalid)
		}
	} else {
		fmt.Fprintln(stdout, "Module: none")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := filepath.Join(cfg.Root, config.FileName)
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(stdout, "Config: %s\n", path)
	} else {
		fmt.Fprintln(stdout, "Config: built-in defaults")
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Defaults:")
	fmt.Fprintf(stdout, "  %-16s %v\n", "duration:", cfg.Duration)
	fmt.Fprintf(stdout, "  %-16s %v\n", "curve:", cfg.Curve)
	fmt.Fprintf(stdout, "  %-16s %t\n", "integralize:", cfg.Integralize)
	fmt.Fprintf(stdout, "  %-16s %g\n", "pixelScale:", cfg.PixelScale)
	fmt.Fprintf(stdout, "  %-16s %t\n", "scrubsLinearly:", cfg.ScrubsLinearly)
	fmt.Fprintf(stdout, "  %-16s %t\n", "autoStarts:", cfg.AutoStarts)
	return nil
}
