// Package logging provides the structured logging helper shared by the
// purecipher packages. It is a thin layer over logrus that stamps every entry
// with the emitting package and function.
package logging

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// Helper carries the standard fields for one logging call site.
type Helper struct {
	function string
	pkg      string
	fields   logrus.Fields
}

// NewLogger creates a Helper tagged with the given package and function.
func NewLogger(pkg, function string) *Helper {
	return &Helper{
		function: function,
		pkg:      pkg,
		fields: logrus.Fields{
			"function": function,
			"package":  pkg,
		},
	}
}

// WithCaller adds the caller's file, line and function name.
func (l *Helper) WithCaller() *Helper {
	if pc, file, line, ok := runtime.Caller(1); ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			funcName := fn.Name()
			if lastSlash := strings.LastIndex(funcName, "/"); lastSlash >= 0 {
				funcName = funcName[lastSlash+1:]
			}
			l.fields["caller"] = fmt.Sprintf("%s:%d", file, line)
			l.fields["caller_func"] = funcName
		}
	}
	return l
}

// WithField adds a custom field.
func (l *Helper) WithField(key string, value interface{}) *Helper {
	l.fields[key] = value
	return l
}

// WithFields adds several custom fields.
func (l *Helper) WithFields(fields logrus.Fields) *Helper {
	for k, v := range fields {
		l.fields[k] = v
	}
	return l
}

// WithError records err together with the operation that produced it.
func (l *Helper) WithError(err error, operation string) *Helper {
	if err != nil {
		l.fields["error"] = err.Error()
	}
	l.fields["operation"] = operation
	return l
}

// Fields returns a copy of the accumulated fields.
func (l *Helper) Fields() logrus.Fields {
	out := make(logrus.Fields, len(l.fields))
	for k, v := range l.fields {
		out[k] = v
	}
	return out
}

// Debug logs a debug message.
func (l *Helper) Debug(message string) {
	logrus.WithFields(l.fields).Debug(message)
}

// Info logs an info message.
func (l *Helper) Info(message string) {
	logrus.WithFields(l.fields).Info(message)
}

// Warn logs a warning message.
func (l *Helper) Warn(message string) {
	logrus.WithFields(l.fields).Warn(message)
}

// Error logs an error message.
func (l *Helper) Error(message string) {
	logrus.WithFields(l.fields).Error(message)
}

// ParseLevel maps a case-insensitive level name onto a logrus level and
// applies it globally. Unknown names leave the level untouched.
func ParseLevel(name string) error {
	level, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", name, err)
	}
	logrus.SetLevel(level)
	return nil
}

// BytePreview renders the first bytes of data for a log field, in the style
// of a hex dump prefix. Longer inputs are suffixed with "...".
func BytePreview(data []byte, name string) logrus.Fields {
	preview := "nil"
	if len(data) > 0 {
		previewLen := 8
		if len(data) < previewLen {
			previewLen = len(data)
		}
		preview = fmt.Sprintf("%x", data[:previewLen])
		if len(data) > previewLen {
			preview += "..."
		}
	}

	return logrus.Fields{
		name + "_preview": preview,
		name + "_size":    len(data),
	}
}
