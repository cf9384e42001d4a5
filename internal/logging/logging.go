// Package logging holds the logger defaults shared by the orbit containers.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Discard returns a logger that drops every entry. Containers use it until a
// caller opts in with WithLogger.
func Discard() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// Component tags l with the name of the container emitting entries.
func Component(l logrus.FieldLogger, name string) *logrus.Entry {
	return l.WithField("component", name)
}

// Debug reports whether e would emit debug entries, so hot paths can skip
// building fields.
func Debug(e *logrus.Entry) bool {
	return e.Logger.IsLevelEnabled(logrus.DebugLevel)
}
