package errors

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives everything reported by the engine. It starts
	// as a non-verbose LogHandler.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler replaces DefaultHandler. nil restores a non-verbose LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

func currentHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report delivers err to the current handler, stamping it with the current
// time if it has none.
func Report(err *AnimationError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := currentHandler(); h != nil {
		h.HandleError(err)
	}
}

// Reportf reports a formatted error of the given kind.
func Reportf(op string, kind ErrorKind, animationID uint64, format string, args ...any) {
	Report(&AnimationError{
		Op:          op,
		Kind:        kind,
		Err:         fmt.Errorf(format, args...),
		AnimationID: animationID,
	})
}

// ReportPanic delivers a recovered panic to the current handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if h := currentHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// Recover reports a panic in engine code as a PanicError. It must be
// deferred directly:
//
//	defer errors.Recover("animation.FrameDriver.timer")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(panicked(op, r))
	}
}

// RecoverCallback reports a panic in a client callback of the animation
// with the given ID as a KindCallback AnimationError wrapping the
// PanicError. It must be deferred directly:
//
//	defer errors.RecoverCallback("animation.ValueChanged", a.ID())
func RecoverCallback(op string, animationID uint64) {
	if r := recover(); r != nil {
		p := panicked(op, r)
		Report(&AnimationError{
			Op:          op,
			Kind:        KindCallback,
			Err:         p,
			AnimationID: animationID,
			StackTrace:  p.StackTrace,
			Timestamp:   p.Timestamp,
		})
	}
}

func panicked(op string, r any) *PanicError {
	return &PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}

// CaptureStack formats the stack of its caller's caller, one frame per
// function and file:line pair, up to 32 frames.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var f runtime.Frame
		f, more = frames.Next()
		sb.WriteString(f.Function + "\n\t" + f.File + ":" + strconv.Itoa(f.Line) + "\n")
	}
	return sb.String()
}
