package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Trace is the serializable form of a recorded motion.
type Trace struct {
	Easing string       `json:"easing"`
	Target float64      `json:"target"`
	Frames []TraceFrame `json:"frames"`
}

// TraceFrame is one frame of a Trace. Positions are rounded to six decimals
// so traces stay stable across platforms.
type TraceFrame struct {
	Millis    int64   `json:"ms"`
	Position  float64 `json:"position"`
	Phase     string  `json:"phase"`
	Direction string  `json:"direction"`
}

// Trace captures the frames recorded so far.
func (t *MotionTester) Trace() *Trace {
	tr := &Trace{
		Easing: t.controller.Easing().ID,
		Target: t.controller.TargetDistance(),
		Frames: make([]TraceFrame, 0, len(t.frames)),
	}
	for _, f := range t.frames {
		tr.Frames = append(tr.Frames, TraceFrame{
			Millis:    f.Elapsed.Milliseconds(),
			Position:  roundTrace(f.Position),
			Phase:     f.Phase.String(),
			Direction: f.Direction.String(),
		})
	}
	return tr
}

func roundTrace(v float64) float64 {
	r := math.Round(v*1e6) / 1e6
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

// MatchesFile compares this trace against a golden file. On mismatch it
// reports a diff and instructions for updating. When EASELAB_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (tr *Trace) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("EASELAB_UPDATE_SNAPSHOTS") == "1" {
		if err := tr.UpdateFile(path); err != nil {
			t.Fatalf("failed to update trace: %v", err)
		}
		return
	}

	expected, err := loadTrace(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("trace file missing: %s\n\nTo create: EASELAB_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load trace: %v", err)
		return
	}

	if diff := tr.Diff(expected); diff != "" {
		t.Errorf("trace mismatch: %s\n%s\n\nTo update: EASELAB_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this trace to the given path, creating directories
// as needed.
func (tr *Trace) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalTrace(tr)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this trace and other. Returns the
// empty string if equal.
func (tr *Trace) Diff(other *Trace) string {
	a, _ := marshalTrace(tr)
	b, _ := marshalTrace(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return lineDiff(string(b), string(a))
}

func loadTrace(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tr Trace
	if err := json.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("invalid trace JSON: %w", err)
	}
	return &tr, nil
}

func marshalTrace(tr *Trace) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func lineDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i, n := 0, max(len(expectedLines), len(actualLines)); i < n; i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}
	return buf.String()
}
