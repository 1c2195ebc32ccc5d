package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/config"
)

// loadConfig resolves motion.yaml from --config, or from the nearest parent
// of the working directory that has one. Without a file the built-in
// defaults are used.
func loadConfig() (*config.Resolved, error) {
	dir := configDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
		if found, err := config.FindConfigDir(cwd); err == nil {
			dir = found
		}
	}
	return config.Resolve(dir)
}

// parseVector parses comma-separated components such as "10,20.5".
func parseVector(s string) (animation.Vector, error) {
	fields := strings.Split(s, ",")
	v := make(animation.Vector, 0, len(fields))
	for _, f := range fields {
		c, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid vector %q: %w", s, err)
		}
		v = append(v, c)
	}
	return v, nil
}

// flagValue returns the value following the flag at args[i].
func flagValue(args []string, i int) (string, error) {
	if i+1 >= len(args) {
		return "", fmt.Errorf("%s requires a value", args[i])
	}
	return args[i+1], nil
}

func parseDuration(flag, s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", flag, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative (got %s)", flag, s)
	}
	return d, nil
}

func parsePositiveInt(flag, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer (got %q)", flag, s)
	}
	return n, nil
}

func lookupCurve(cfg *config.Resolved, name string) (animation.TimingFunction, error) {
	tf, ok := cfg.Lookup(name)
	if !ok {
		return animation.TimingFunction{}, fmt.Errorf("unknown curve %q (see \"motion curves\")", name)
	}
	return tf, nil
}
