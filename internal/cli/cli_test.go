package cli

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/akmonengine/sierpinski"
	"github.com/akmonengine/sierpinski/config"
)

// execute runs the command tree with args, returning stdout and stderr
func execute(t *testing.T, view Viewer, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCommand(view)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sierpinski.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// =============================================================================
// Logging
// =============================================================================

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Debug("hidden")
	logger.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line logged at info level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("info line missing: %q", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("empty context should fall back to log.Default()")
	}

	logger := newLogger(&bytes.Buffer{}, log.DebugLevel)
	ctx := withLogger(context.Background(), logger)
	if got := loggerFromContext(ctx); got != logger {
		t.Error("loggerFromContext did not return the attached logger")
	}
}

func TestLogEvents(t *testing.T) {
	f, err := sierpinski.New(config.Default())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var buf bytes.Buffer
	logEvents(f, newLogger(&buf, log.DebugLevel))

	if err := f.SetLevel(1); err != nil {
		t.Fatalf("SetLevel(1) error = %v", err)
	}
	if err := f.SetLevel(99); err == nil {
		t.Fatal("SetLevel(99) should fail")
	}

	out := buf.String()
	for _, want := range []string{"level changed", "transition started", "level out of range"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

// =============================================================================
// generate
// =============================================================================

func TestGenerate_Level1(t *testing.T) {
	stdout, _, err := execute(t, nil, "generate", "--level", "1")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 2 header lines + 4 leaves:\n%s", len(lines), stdout)
	}
	if lines[0] != "# level 1, 4 leaves" {
		t.Errorf("header = %q", lines[0])
	}

	for i, line := range lines[2:] {
		fields := strings.Split(line, "\t")
		if len(fields) != 5 {
			t.Fatalf("line %d has %d fields: %q", i, len(fields), line)
		}
		if fields[1] != string(rune('0'+i)) {
			t.Errorf("leaf %d digits = %q", i, fields[1])
		}
		if fields[3] != "0.5" {
			t.Errorf("leaf %d scale = %q, want 0.5", i, fields[3])
		}
	}
}

func TestGenerate_Level0(t *testing.T) {
	stdout, _, err := execute(t, nil, "generate", "--level", "0")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[2], "0\t-\t") {
		t.Errorf("root leaf line = %q", lines[2])
	}
}

func TestGenerate_BoundsMatchAcrossLevels(t *testing.T) {
	bounds := func(level string) string {
		stdout, _, err := execute(t, nil, "generate", "--level", level)
		if err != nil {
			t.Fatalf("generate --level %s error = %v", level, err)
		}
		lines := strings.Split(stdout, "\n")
		if len(lines) < 2 || !strings.HasPrefix(lines[1], "# bounds min ") {
			t.Fatalf("missing bounds line:\n%s", stdout)
		}
		// The center's y is zero and may print with either sign
		extent, radius, _ := strings.Cut(lines[1], " center ")
		if i := strings.Index(radius, "radius "); i >= 0 {
			radius = radius[i:]
		}
		return extent + " " + radius
	}

	// Every level fills the hull of the root tetrahedron
	root := bounds("0")
	if !strings.HasSuffix(root, "radius 1.269296") {
		t.Errorf("root bounds = %q", root)
	}
	if deep := bounds("3"); deep != root {
		t.Errorf("level 3 bounds = %q, want %q", deep, root)
	}
}

func TestGenerate_InvalidLevel(t *testing.T) {
	_, _, err := execute(t, nil, "generate", "--level", "99")
	if !errors.Is(err, sierpinski.ErrInvalidLevel) {
		t.Errorf("error = %v, want ErrInvalidLevel", err)
	}
}

func TestDigitString(t *testing.T) {
	tests := []struct {
		level, index int
		want         string
	}{
		{0, 0, "-"},
		{1, 3, "3"},
		{2, 6, "12"},
		{3, 63, "333"},
	}

	for _, tt := range tests {
		if got := digitString(tt.level, tt.index); got != tt.want {
			t.Errorf("digitString(%d, %d) = %q, want %q", tt.level, tt.index, got, tt.want)
		}
	}
}

// =============================================================================
// snapshot
// =============================================================================

func TestSnapshot_WritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")

	_, stderr, err := execute(t, nil, "snapshot",
		"--out", out, "--from", "0", "--to", "1", "--at", "1",
		"--width", "64", "--height", "48", "--axes")
	if err != nil {
		t.Fatalf("snapshot error = %v", err)
	}
	if !strings.Contains(stderr, "snapshot written") {
		t.Errorf("missing completion log: %q", stderr)
	}

	file, err := os.Open(out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("image size = %dx%d, want 64x48", b.Dx(), b.Dy())
	}
}

func TestSnapshot_InvalidTarget(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")

	_, _, err := execute(t, nil, "snapshot", "--out", out, "--to", "42")
	if !errors.Is(err, sierpinski.ErrInvalidLevel) {
		t.Errorf("error = %v, want ErrInvalidLevel", err)
	}
	if _, statErr := os.Stat(out); statErr == nil {
		t.Error("no file should be written for a rejected level")
	}
}

// =============================================================================
// view
// =============================================================================

func TestView_CallsViewer(t *testing.T) {
	var gotLevel int
	var gotAxes bool
	view := func(f *sierpinski.Fractal, cfg config.Config) error {
		gotLevel = f.Level()
		gotAxes = cfg.Camera.Axes
		return nil
	}

	if _, _, err := execute(t, view, "view", "--level", "2", "--axes"); err != nil {
		t.Fatalf("view error = %v", err)
	}
	if gotLevel != 2 {
		t.Errorf("viewer got level %d, want 2", gotLevel)
	}
	if !gotAxes {
		t.Error("--axes not forwarded")
	}
}

func TestView_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
initial_level = 1
max_level = 3

[window]
title = "test"
`)

	var got config.Config
	view := func(f *sierpinski.Fractal, cfg config.Config) error {
		got = cfg
		return nil
	}

	if _, _, err := execute(t, view, "--config", path, "view"); err != nil {
		t.Fatalf("view error = %v", err)
	}
	if got.MaxLevel != 3 || got.InitialLevel != 1 {
		t.Errorf("levels = %d/%d, want 1/3", got.InitialLevel, got.MaxLevel)
	}
	if got.Window.Title != "test" || got.Window.Width != 1280 {
		t.Errorf("window = %+v, want title override over defaults", got.Window)
	}
}

func TestView_BadConfig(t *testing.T) {
	path := writeConfig(t, "bogus_key = 1\n")

	called := false
	view := func(f *sierpinski.Fractal, cfg config.Config) error {
		called = true
		return nil
	}

	_, _, err := execute(t, view, "--config", path, "view")
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("error = %v, want config.ErrInvalid", err)
	}
	if called {
		t.Error("viewer ran with an invalid config")
	}
}

func TestView_ViewerError(t *testing.T) {
	boom := errors.New("boom")
	view := func(f *sierpinski.Fractal, cfg config.Config) error { return boom }

	if _, _, err := execute(t, view, "view"); !errors.Is(err, boom) {
		t.Errorf("error = %v, want viewer error", err)
	}
}
