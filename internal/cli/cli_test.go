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

	"wireframe/internal/buildinfo"
	"wireframe/internal/config"
	"wireframe/wiregl"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestVersionFlag(t *testing.T) {
	defer func(v string) { buildinfo.Version = v }(buildinfo.Version)
	buildinfo.Version = "v1.2.3"

	out, _, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "wireframe version v1.2.3") {
		t.Fatalf("output = %q", out)
	}
}

func TestProjectDefaultCube(t *testing.T) {
	out, _, err := execute(t, "project")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"cube", "perspective", "12 edges", "0-1", "-57.143", "-44.444", "7-6"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestProjectAppliesCommands(t *testing.T) {
	out, _, err := execute(t, "project", "--shape", "tetrahedron", "--scale", "10", "isometric", "up")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "tetrahedron") || !strings.Contains(out, "isometric") || !strings.Contains(out, "6 edges") {
		t.Fatalf("output = %s", out)
	}
}

func TestProjectUnknownCommand(t *testing.T) {
	_, _, err := execute(t, "project", "spin")
	if !errors.Is(err, wiregl.ErrUnknownCommand) {
		t.Fatalf("err = %v, want ErrUnknownCommand", err)
	}
}

func TestProjectRejectsUnknownShape(t *testing.T) {
	_, _, err := execute(t, "project", "--shape", "teapot")
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestConfigPrintsDefaults(t *testing.T) {
	out, _, err := execute(t, "config")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"[scene]", `shape = "cube"`, `projection = "perspective"`, "[keys]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigHonoursEnvironment(t *testing.T) {
	t.Setenv("WIREFRAME_SCENE_SHAPE", "octahedron")
	out, _, err := execute(t, "config")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, `shape = "octahedron"`) {
		t.Fatalf("output = %s", out)
	}
}

func TestRunHeadlessSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	_, _, err := execute(t, "run", "--headless", "--ticks", "3", "--hz", "500",
		"--keys", "right,i", "--snapshot", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Fatalf("snapshot bounds = %v", b)
	}
}

func TestRunHeadlessEscapeQuits(t *testing.T) {
	_, stderr, err := execute(t, "-v", "run", "--headless", "--hz", "500", "--keys", "esc")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stderr, "quit requested") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestRunRejectsBadKey(t *testing.T) {
	_, _, err := execute(t, "run", "--headless", "--keys", "ctrl+alt")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Fatal("expected default logger")
	}
	var buf bytes.Buffer
	l := newLogger(&buf, log.DebugLevel)
	if loggerFromContext(withLogger(context.Background(), l)) != l {
		t.Fatal("expected attached logger")
	}
	l.Debug("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("output = %q", buf.String())
	}
}
