package errors

import (
	"github.com/sirupsen/logrus"
)

// LogHandler is an ErrorHandler that writes through a logrus logger.
type LogHandler struct {
	// Verbose adds stack traces to panic reports.
	Verbose bool

	log *logrus.Entry
}

// NewLogHandler returns a handler logging to logger, or to the logrus
// standard logger when logger is nil.
func NewLogHandler(logger *logrus.Logger) *LogHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogHandler{log: logger.WithField("component", "errors")}
}

func (h *LogHandler) entry() *logrus.Entry {
	if h.log == nil {
		h.log = logrus.StandardLogger().WithField("component", "errors")
	}
	return h.log
}

// HandleError logs a BadgeError at warning level.
func (h *LogHandler) HandleError(err *BadgeError) {
	if err == nil {
		return
	}
	fields := logrus.Fields{
		"op":   err.Op,
		"kind": err.Kind.String(),
	}
	if err.Node != "" {
		fields["node"] = err.Node
	}
	h.entry().WithFields(fields).Warn(err.Err)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	e := h.entry().WithField("op", err.Op)
	if h.Verbose && err.StackTrace != "" {
		e = e.WithField("stack", err.StackTrace)
	}
	e.Errorf("panic: %v", err.Value)
}
