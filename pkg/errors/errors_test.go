package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

func TestEaseErrorString(t *testing.T) {
	err := &EaseError{
		Op:   "curve.Sample",
		Kind: KindInvalidResolution,
		Err:  ErrInvalidResolution,
	}
	got := err.Error()
	want := "curve.Sample [invalid_resolution]: invalid resolution"
	if got != want {
		t.Errorf("EaseError.Error() = %q, want %q", got, want)
	}
}

func TestEaseErrorWithID(t *testing.T) {
	err := &EaseError{
		Op:   "easing.Lookup",
		Kind: KindUnknownEasing,
		ID:   "bounce",
		Err:  ErrUnknownEasing,
	}
	want := "id=bounce"
	if got := err.Error(); !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestNewWrapsSentinel(t *testing.T) {
	err := New("animation.NewController", KindInvalidPolicy, ErrInvalidPolicy, "duration %v must be positive", time.Duration(0))
	if !stderrors.Is(err, ErrInvalidPolicy) {
		t.Fatalf("errors.Is(%v, ErrInvalidPolicy) = false", err)
	}
	if stderrors.Is(err, ErrInvalidResolution) {
		t.Error("error should not match an unrelated sentinel")
	}
	if !strings.Contains(err.Error(), "duration 0s must be positive") {
		t.Errorf("error string %q is missing the detail", err.Error())
	}
}

func TestKindOf(t *testing.T) {
	wrapped := New("config.Resolve", KindConfig, ErrInvalidPolicy, "")
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, KindUnknown},
		{"plain", stderrors.New("boom"), KindUnknown},
		{"direct", wrapped, KindConfig},
		{"joined", stderrors.Join(stderrors.New("x"), wrapped), KindConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindUnknownEasing, "unknown_easing"},
		{KindInvalidResolution, "invalid_resolution"},
		{KindInvalidPolicy, "invalid_policy"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "animation.StepTickers"
	if got, want := err.Error(), "panic in animation.StepTickers: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *EaseError
	prev := SetHandler(&testHandler{
		onError: func(err *EaseError) { captured = err },
	})
	defer SetHandler(prev)

	Report(&EaseError{Op: "test.op", Kind: KindConfig, Err: ErrInvalidPolicy})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	prev := SetHandler(&testHandler{
		onPanic: func(err *PanicError) { captured = err },
	})
	defer SetHandler(prev)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestSetHandlerNil(t *testing.T) {
	prev := SetHandler(nil)
	defer SetHandler(prev)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(&EaseError{Op: "easing.Lookup", Kind: KindUnknownEasing, ID: "zig", Err: ErrUnknownEasing})
	if got, want := buf.String(), "[easelab error] easing.Lookup: unknown easing id\n"; got != want {
		t.Errorf("terse output = %q, want %q", got, want)
	}

	buf.Reset()
	h.Verbose = true
	h.HandleError(&EaseError{Op: "easing.Lookup", Kind: KindUnknownEasing, ID: "zig", Err: ErrUnknownEasing})
	if got := buf.String(); !strings.Contains(got, "[unknown_easing] id=zig") {
		t.Errorf("verbose output %q should carry kind and id", got)
	}
}

type testHandler struct {
	onError func(*EaseError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *EaseError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
