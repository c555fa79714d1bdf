// Package logrus adapts a *logrus.Entry to the jsonmap.Logger interface.
package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/jsonmap"
)

type Logger struct{ E *logrus.Entry }

var _ jsonmap.Logger = Logger{}

func New(e *logrus.Entry) Logger { return Logger{E: e} }

func (l Logger) Debug(msg string, f jsonmap.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l Logger) Info(msg string, f jsonmap.Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l Logger) Warn(msg string, f jsonmap.Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l Logger) Error(msg string, f jsonmap.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
