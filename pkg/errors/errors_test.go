package errors

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestAnimationErrorString(t *testing.T) {
	err := &AnimationError{
		Op:   "animation.Start",
		Kind: KindDriver,
		Err:  fmt.Errorf("negative delay -1s"),
	}
	got := err.Error()
	want := "animation.Start [driver]: negative delay -1s"
	if got != want {
		t.Errorf("AnimationError.Error() = %q, want %q", got, want)
	}
}

func TestAnimationErrorWithID(t *testing.T) {
	err := &AnimationError{
		Op:          "animation.Start",
		Kind:        KindDriver,
		AnimationID: 42,
		Err:         fmt.Errorf("boom"),
	}
	if got := err.Error(); !strings.Contains(got, "animation=42") {
		t.Errorf("error string %q should contain %q", got, "animation=42")
	}
}

func TestAnimationErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("inner")
	err := &AnimationError{Op: "op", Err: inner}
	if err.Unwrap() != inner {
		t.Error("Unwrap should return the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindCallback, "callback"},
		{KindConfig, "config"},
		{KindDriver, "driver"},
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

	err.Op = "animation.ValueChanged"
	if got, want := err.Error(), "panic in animation.ValueChanged: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *AnimationError
	restore := useHandler(&testHandler{onError: func(err *AnimationError) { captured = err }})
	defer restore()

	Report(&AnimationError{Op: "test.op", Kind: KindConfig, Err: fmt.Errorf("bad")})

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

func TestReportf(t *testing.T) {
	var captured *AnimationError
	restore := useHandler(&testHandler{onError: func(err *AnimationError) { captured = err }})
	defer restore()

	Reportf("animation.Start", KindDriver, 7, "negative delay %v", -time.Second)

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.AnimationID != 7 || captured.Kind != KindDriver {
		t.Errorf("captured = %+v", captured)
	}
	if got, want := captured.Err.Error(), "negative delay -1s"; got != want {
		t.Errorf("Err = %q, want %q", got, want)
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	restore := useHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer restore()

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
}

func TestRecoverCallback(t *testing.T) {
	var captured *AnimationError
	restore := useHandler(&testHandler{
		onError: func(err *AnimationError) { captured = err },
		onPanic: func(*PanicError) { t.Error("callback panics should be reported as errors") },
	})
	defer restore()

	func() {
		defer RecoverCallback("animation.ValueChanged", 9)
		panic(3)
	}()

	if captured == nil {
		t.Fatal("expected panic to be reported")
	}
	if captured.Kind != KindCallback || captured.AnimationID != 9 || captured.Op != "animation.ValueChanged" {
		t.Errorf("captured = %+v", captured)
	}
	var p *PanicError
	if !errors.As(captured, &p) || p.Value != 3 {
		t.Errorf("wrapped panic = %v, want value 3", captured.Err)
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestRecoverCallbackNoPanic(t *testing.T) {
	restore := useHandler(&testHandler{onError: func(err *AnimationError) { t.Errorf("unexpected report %v", err) }})
	defer restore()

	func() {
		defer RecoverCallback("animation.Completion", 1)
	}()
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Fatal("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}

	h.HandleError(&AnimationError{Op: "config.Resolve", Kind: KindConfig, Err: fmt.Errorf("bad curve")})
	h.HandlePanic(&PanicError{Op: "animation.Completion", Value: "boom"})

	want := "[motion error] config.Resolve: bad curve\n[motion panic] animation.Completion: boom\n"
	if got := buf.String(); got != want {
		t.Errorf("log output = %q, want %q", got, want)
	}
}

func TestLogHandlerVerbose(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf, Verbose: true}

	h.HandleError(&AnimationError{Op: "animation.Start", Kind: KindDriver, AnimationID: 3, Err: fmt.Errorf("x"), StackTrace: "frame"})

	got := buf.String()
	for _, want := range []string{"[driver]", "animation=3", "Stack trace:\nframe"} {
		if !strings.Contains(got, want) {
			t.Errorf("verbose output %q should contain %q", got, want)
		}
	}
}

func useHandler(h ErrorHandler) func() {
	old := DefaultHandler
	SetHandler(h)
	return func() { SetHandler(old) }
}

type testHandler struct {
	onError func(*AnimationError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *AnimationError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
