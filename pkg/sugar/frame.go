package sugar

import (
	"fmt"
	"log"
	"runtime"
	"strings"
	"sync"
)

// FrameError is a panic recovered at a frame boundary. Every guard inside the
// frame has already released by the time the error exists, so the backend
// stack is balanced.
type FrameError struct {
	// Frame is the name passed to UI.Frame.
	Frame string
	// Recovered is the panic value.
	Recovered any
	// StackTrace is the call stack captured at recovery.
	StackTrace string
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("sugar: panic in frame %q: %v", e.Frame, e.Recovered)
}

// Handler receives frame errors.
type Handler interface {
	HandleFrameError(err *FrameError)
}

// LogHandler logs frame errors with the standard log package.
type LogHandler struct {
	// Verbose includes the stack trace.
	Verbose bool
}

// HandleFrameError implements Handler.
func (h *LogHandler) HandleFrameError(err *FrameError) {
	if h.Verbose {
		log.Printf("%v\n%s", err, err.StackTrace)
		return
	}
	log.Printf("%v", err)
}

var (
	defaultHandler Handler = &LogHandler{}
	handlerMu      sync.RWMutex
)

// SetHandler configures the global frame error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		defaultHandler = &LogHandler{}
	} else {
		defaultHandler = h
	}
}

func getHandler() Handler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return defaultHandler
}

// Frame runs one frame's worth of guarded calls and converts a panic escaping
// the body into a reported *FrameError. Guards release before the recover
// observes the panic, so an error return still leaves the backend balanced.
func (u *UI) Frame(name string, body func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		fe := &FrameError{
			Frame:      name,
			Recovered:  r,
			StackTrace: captureStack(),
		}
		if h := getHandler(); h != nil {
			h.HandleFrameError(fe)
		}
		err = fe
	}()
	runBody(body)
	return nil
}

// captureStack returns the current call stack as a string, skipping the
// frames of the capture itself.
func captureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}
