package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/easelab/pkg/animation"
	"github.com/go-drift/easelab/pkg/track"
)

// runCapture runs the CLI with args and returns what it printed.
func runCapture(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	defer func() { stdout = prev }()
	err := run(args)
	return buf.String(), err
}

func writeTestConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "easelab.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunHelp(t *testing.T) {
	for _, args := range [][]string{nil, {"--help"}, {"help"}, {"--verbose"}} {
		out, err := runCapture(t, args...)
		if err != nil {
			t.Fatalf("run(%q) error = %v", args, err)
		}
		for _, name := range []string{"list", "curve", "play", "config", "version"} {
			if !strings.Contains(out, name) {
				t.Errorf("run(%q) help missing %q", args, name)
			}
		}
	}
}

func TestRunVersion(t *testing.T) {
	for _, arg := range []string{"--version", "-v", "version"} {
		out, err := runCapture(t, arg)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(out, "easelab version "+Version) {
			t.Errorf("run(%q) = %q", arg, out)
		}
	}
}

func TestRunUnknownCommand(t *testing.T) {
	if _, err := runCapture(t, "dance"); err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("error = %v", err)
	}
}

func TestRunConfigFlagRequiresValue(t *testing.T) {
	if _, err := runCapture(t, "list", "--config"); err == nil {
		t.Error("expected error for --config without a path")
	}
}

func TestSubcommandHelp(t *testing.T) {
	out, err := runCapture(t, "curve", "--help")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "easelab curve [id]") {
		t.Errorf("curve help = %q", out)
	}
}

func TestParseCurveArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    curveOptions
		wantErr bool
	}{
		{"defaults", nil, curveOptions{format: "svg"}, false},
		{"id and flags", []string{"backOut", "--resolution", "20", "--format=PNG", "--out", "x.png"},
			curveOptions{id: "backOut", resolution: 20, format: "png", out: "x.png"}, false},
		{"inline resolution", []string{"--resolution=8"}, curveOptions{resolution: 8, format: "svg"}, false},
		{"bad format", []string{"--format", "gif"}, curveOptions{}, true},
		{"missing value", []string{"--out"}, curveOptions{}, true},
		{"bad int", []string{"--resolution", "many"}, curveOptions{}, true},
		{"two ids", []string{"linear", "quadIn"}, curveOptions{}, true},
		{"unknown flag", []string{"--color", "red"}, curveOptions{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCurveArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseCurveArgs(%q) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseCurveArgs(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParsePlayArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    playOptions
		wantErr bool
	}{
		{"defaults", nil, playOptions{fps: defaultFPS}, false},
		{"all flags", []string{"circOut", "--duration", "2", "--delay=0", "--width", "500",
			"--frames", "10", "--fps", "60", "--no-repeat", "--no-reverse"},
			playOptions{id: "circOut", duration: 2, hasDelay: true, width: 500, frames: 10,
				fps: 60, noRepeat: true, noReverse: true}, false},
		{"zero duration", []string{"--duration", "0"}, playOptions{}, true},
		{"negative delay", []string{"--delay", "-1"}, playOptions{}, true},
		{"negative frames", []string{"--frames", "-2"}, playOptions{}, true},
		{"fps too high", []string{"--fps", "1000"}, playOptions{}, true},
		{"bad number", []string{"--width", "wide"}, playOptions{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePlayArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePlayArgs(%q) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parsePlayArgs(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestCurvePoints(t *testing.T) {
	cfg := writeTestConfig(t, "easing: linear\n")
	out, err := runCapture(t, "--config", cfg, "curve", "--resolution", "2", "--format", "points")
	if err != nil {
		t.Fatal(err)
	}
	want := "0.0000 0.000000 20.00 180.00\n" +
		"0.5000 0.500000 200.00 100.00\n" +
		"1.0000 1.000000 380.00 20.00\n"
	if out != want {
		t.Errorf("points output:\n%s\nwant:\n%s", out, want)
	}
}

func TestCurveSVG(t *testing.T) {
	cfg := writeTestConfig(t, "curve:\n  resolution: 2\n")
	out, err := runCapture(t, "--config="+cfg, "curve", "linear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `d="M 20,180 L 200,100 L 380,20"`) {
		t.Errorf("svg output missing path:\n%s", out)
	}
}

func TestCurvePNGFile(t *testing.T) {
	cfg := writeTestConfig(t, "")
	path := filepath.Join(t.TempDir(), "back.png")
	out, err := runCapture(t, "--config", cfg, "curve", "backOut", "--format", "png", "--out", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Wrote "+path) {
		t.Errorf("output = %q", out)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 200 {
		t.Errorf("image size = %v", b)
	}
}

func TestCurvePNGNeedsOut(t *testing.T) {
	cfg := writeTestConfig(t, "")
	if _, err := runCapture(t, "--config", cfg, "curve", "--format", "png"); err == nil {
		t.Error("expected png to stdout to fail")
	}
}

func TestList(t *testing.T) {
	out, err := runCapture(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"anticipate", "backOut", "yes", "easeInOut", "-> quadInOut (default)"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
	if _, err := runCapture(t, "list", "extra"); err == nil {
		t.Error("list should reject arguments")
	}
}

func TestConfigCommand(t *testing.T) {
	cfg := writeTestConfig(t, "easing: circIn\nmotion:\n  repeat: 2\n")
	out, err := runCapture(t, "--config", cfg, "config")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# " + cfg, "easing: circIn", "repeat: 2", "duration: 1.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigCommandInvalid(t *testing.T) {
	cfg := writeTestConfig(t, "schema: v3.0.0\n")
	if _, err := runCapture(t, "--config", cfg, "config"); err == nil {
		t.Error("expected unsupported schema to fail")
	}
}

func TestPlayFrameBudget(t *testing.T) {
	cfg := writeTestConfig(t, "")
	out, err := runCapture(t, "--config", cfg, "play", "linear", "--frames", "3", "--fps", "200")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 3 frames:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "|--o-") {
		t.Errorf("first frame should start at the left edge: %q", lines[1])
	}
}

func TestPlayStopsWhenDone(t *testing.T) {
	cfg := writeTestConfig(t, "")
	out, err := runCapture(t, "--config", cfg, "play", "linear",
		"--duration", "0.03", "--no-repeat", "--fps", "200")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	last := lines[len(lines)-1]
	if !strings.Contains(last, "stopped") || !strings.Contains(last, "o-|") {
		t.Errorf("last frame = %q, want stopped at the right edge", last)
	}
}

func TestTrackLine(t *testing.T) {
	line := newTrackLine(track.DefaultTrack, 320)
	if line.cells != 40 {
		t.Fatalf("cells = %d, want 40", line.cells)
	}
	travel := track.DefaultTrack.TravelDistance(320)
	tests := []struct {
		pos  float64
		want int
	}{
		{0, 2},
		{travel, 38},
		{-500, 0},
		{1e6, 39},
	}
	for _, tt := range tests {
		if got := line.cell(tt.pos); got != tt.want {
			t.Errorf("cell(%v) = %d, want %d", tt.pos, got, tt.want)
		}
	}

	got := line.render(0, animation.PhaseRunning, animation.Forward)
	if !strings.HasPrefix(got, "|--o---") || !strings.HasSuffix(got, "running  forward") {
		t.Errorf("render = %q", got)
	}
}
