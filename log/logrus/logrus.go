// Package logrus adapts a logrus.Entry to the sessioncache Logger.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/mythfish/sessioncache"
)

type Logger struct{ E *logrus.Entry }

var _ sessioncache.Logger = Logger{}

func (l Logger) Debug(msg string, f sessioncache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}

func (l Logger) Info(msg string, f sessioncache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}

func (l Logger) Warn(msg string, f sessioncache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}

func (l Logger) Error(msg string, f sessioncache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
