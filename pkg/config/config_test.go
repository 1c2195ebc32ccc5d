package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	merrors "github.com/go-drift/motion/pkg/errors"
)

func writeConfig(t *testing.T, dir, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveWithoutFile(t *testing.T) {
	dir := t.TempDir()
	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Root != dir {
		t.Errorf("Root = %q, want %q", r.Root, dir)
	}
	if r.Duration != DefaultDuration {
		t.Errorf("Duration = %v, want %v", r.Duration, DefaultDuration)
	}
	if !r.Curve.Equal(animation.EaseInEaseOut) {
		t.Errorf("Curve = %v, want easeInEaseOut", r.Curve)
	}
	if r.PixelScale != DefaultPixelScale {
		t.Errorf("PixelScale = %v, want %v", r.PixelScale, DefaultPixelScale)
	}
}

func TestResolveFromFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
defaults:
  duration: 400ms
  curve: brand
  integralize: true
  pixelScale: 2
  scrubsLinearly: true
  autoStarts: true
curves:
  brand:
    bezier: [0.2, 0.0, 0.0, 1.0]
  snappy:
    preset: swiftOut
`)

	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Duration != 400*time.Millisecond {
		t.Errorf("Duration = %v, want 400ms", r.Duration)
	}
	if !r.Curve.Equal(animation.Bezier(0.2, 0, 0, 1)) {
		t.Errorf("Curve = %v, want brand bezier", r.Curve)
	}
	if !r.Integralize || !r.ScrubsLinearly || !r.AutoStarts || r.PixelScale != 2 {
		t.Errorf("flags = %+v", r)
	}
	if got := strings.Join(r.CurveNames(), ","); got != "brand,snappy" {
		t.Errorf("CurveNames = %q", got)
	}
	snappy, ok := r.Lookup("snappy")
	if !ok || !snappy.Equal(animation.SwiftOut) {
		t.Errorf("Lookup(snappy) = %v, %v", snappy, ok)
	}
	if _, ok := r.Lookup("easeOutBounce"); !ok {
		t.Error("Lookup should fall back to presets")
	}
}

func TestResolveZeroPixelScale(t *testing.T) {
	cfg, err := Parse([]byte("defaults:\n  pixelScale: 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	r, err := cfg.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if r.PixelScale != 0 {
		t.Errorf("PixelScale = %v, want 0", r.PixelScale)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad duration", "defaults:\n  duration: soon\n", "defaults.duration"},
		{"negative duration", "defaults:\n  duration: -1s\n", "must not be negative"},
		{"negative scale", "defaults:\n  pixelScale: -2\n", "pixelScale"},
		{"unknown default curve", "defaults:\n  curve: wobble\n", "unknown curve"},
		{"unknown preset", "curves:\n  a:\n    preset: wobble\n", "unknown preset"},
		{"short bezier", "curves:\n  a:\n    bezier: [0.1, 0.2]\n", "needs 4 numbers"},
		{"non-monotonic bezier", "curves:\n  a:\n    bezier: [1.5, 0, 0.5, 1]\n", "within [0, 1]"},
		{"both", "curves:\n  a:\n    preset: easeIn\n    bezier: [0, 0, 1, 1]\n", "mutually exclusive"},
		{"empty", "curves:\n  a: {}\n", "either preset or bezier"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			_, err = cfg.Resolve()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err, tt.want)
			}
			var aerr *merrors.AnimationError
			if !errors.As(err, &aerr) || aerr.Kind != merrors.KindConfig {
				t.Errorf("error should be a config AnimationError, got %T", err)
			}
		})
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("defaults: [")); err == nil {
		t.Error("expected parse error")
	}
}

func TestNewAnimationAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("defaults:\n  duration: 1s\n  curve: linear\n  integralize: true\n  pixelScale: 3\n  autoStarts: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	r, err := cfg.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	a := r.NewAnimation(animation.Vec(0), animation.Vec(10))
	if a.Duration != time.Second {
		t.Errorf("Duration = %v, want 1s", a.Duration)
	}
	if a.Timing.Kind() != animation.KindLinear {
		t.Errorf("Timing = %v, want linear", a.Timing)
	}
	if !a.IntegralizeValues || a.PixelScale != 3 {
		t.Errorf("IntegralizeValues = %v, PixelScale = %v", a.IntegralizeValues, a.PixelScale)
	}
	if !a.AutoStarts || a.ScrubsLinearly {
		t.Errorf("AutoStarts = %v, ScrubsLinearly = %v", a.AutoStarts, a.ScrubsLinearly)
	}
}

func TestFindConfigDir(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "defaults: {}\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindConfigDir(nested)
	if err != nil {
		t.Fatalf("FindConfigDir: %v", err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("FindConfigDir = %q, want %q", got, want)
	}
}
