package commands

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gg"

	"github.com/tabletlab/tablet"
	"github.com/tabletlab/tablet/internal/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	orig, origGG := tablet.Logger(), gg.Logger()
	t.Cleanup(func() {
		tablet.SetLogger(orig)
		gg.SetLogger(origGG)
	})
	configPath, verbose = "", false

	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.Execute()
	return out.String(), err
}

func TestPathsCommand(t *testing.T) {
	out, err := run(t, "paths", "--shape", "round", "--length", "0.01", "--axis", "length")
	if err != nil {
		t.Fatalf("paths: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("paths printed %d lines, want 4:\n%s", len(lines), out)
	}
	want := "top outline\tm 12 9 m 3.75 0 a 3.75 3.75 0 0 0 -7.5 0 a 3.75 3.75 0 0 0 7.5 0 z"
	if lines[0] != want {
		t.Errorf("first line = %q, want %q", lines[0], want)
	}
	if !strings.HasPrefix(lines[1], "top annotation\tM ") {
		t.Errorf("length annotation missing: %q", lines[1])
	}
	if lines[3] != "side annotation\t" {
		t.Errorf("side annotation = %q, want empty path", lines[3])
	}
}

func TestPathsCommand_InvalidShape(t *testing.T) {
	_, err := run(t, "paths", "--shape", "hexagon")
	var fe *config.FieldError
	if !errors.As(err, &fe) || fe.Field != "tablet.shape" {
		t.Errorf("paths --shape hexagon error = %v, want tablet.shape field error", err)
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "tablet.yaml")
	doc := `
tablet:
  shape: oval
  length: 0.014
  width: 0.007
  total_thickness: 0.006
  band_thickness: 0.003
annotation: total
output:
  formats: [svg]
  pixels_per_unit: 5
`
	if err := os.WriteFile(cfg, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	base := filepath.Join(dir, "out", "oval")
	if err := os.MkdirAll(filepath.Dir(base), 0o755); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "render", "-c", cfg, "--format", "svg,png", "-o", base, "--no-labels")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != base+".png\n"+base+".svg\n" {
		t.Errorf("render printed %q", out)
	}
	for _, ext := range []string{".svg", ".png"} {
		info, err := os.Stat(base + ext)
		if err != nil {
			t.Fatalf("missing %s output: %v", ext, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s output is empty", ext)
		}
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(svg), "Top View") {
		t.Error("--no-labels should drop the view titles")
	}
}

func TestWatchCommand_RequiresConfig(t *testing.T) {
	if _, err := run(t, "watch"); err == nil || !strings.Contains(err.Error(), "--config") {
		t.Errorf("watch without --config error = %v", err)
	}
}
