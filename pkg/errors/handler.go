package errors

import (
	stderrors "errors"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultHandler receives everything passed to Report and ReportPanic. Badge
// painting never returns errors, so this is the only place a failed frame
// becomes visible. It starts as a LogHandler on the logrus standard logger.
var DefaultHandler ErrorHandler = NewLogHandler(nil)

var handlerMu sync.RWMutex

// SetHandler replaces DefaultHandler. The CLI installs a handler bound to
// its configured logger; tests install recorders. Nil restores a LogHandler
// on the standard logger.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		h = NewLogHandler(nil)
	}
	DefaultHandler = h
}

func getHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Wrap attaches op, kind and node to err. A nil err stays nil, and an err
// that already carries a BadgeError is returned as is so the innermost
// operation keeps its attribution.
func Wrap(op string, kind ErrorKind, node string, err error) error {
	if err == nil {
		return nil
	}
	var be *BadgeError
	if stderrors.As(err, &be) {
		return err
	}
	return &BadgeError{Op: op, Kind: kind, Node: node, Err: err}
}

// Report stamps err and hands it to DefaultHandler.
func Report(err *BadgeError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}

// ReportErr reports err as a failure of op on node. Nil errors are ignored.
func ReportErr(op string, kind ErrorKind, node string, err error) {
	if err == nil {
		return
	}
	var be *BadgeError
	if !stderrors.As(err, &be) {
		be = &BadgeError{Op: op, Kind: kind, Node: node, Err: err}
	}
	Report(be)
}

// ReportPanic stamps err and hands it to DefaultHandler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// Recover turns a panic in the deferring function into a PanicError report,
// so a faulty painter costs one frame instead of the host's event loop.
//
//	defer errors.Recover("badge.Paint")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{
			Op:         op,
			Value:      r,
			StackTrace: CaptureStack(),
			Timestamp:  time.Now(),
		})
	}
}

// CaptureStack returns the caller's stack, one "function\n\tfile:line" entry
// per frame. Frames inside the runtime (panic machinery) and this package
// are left out, so a recovered paint panic starts at the painter that
// raised it.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(2, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if !skipFrame(frame.Function) {
			sb.WriteString(frame.Function)
			sb.WriteString("\n\t")
			sb.WriteString(frame.File)
			sb.WriteString(":")
			sb.WriteString(strconv.Itoa(frame.Line))
			sb.WriteString("\n")
		}
		if !more {
			break
		}
	}
	return sb.String()
}

const packagePath = "github.com/go-drift/badger/pkg/errors."

func skipFrame(function string) bool {
	return strings.HasPrefix(function, "runtime.") || strings.HasPrefix(function, packagePath)
}
