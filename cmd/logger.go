package cmd

import "github.com/sirupsen/logrus"

type logrusLogger struct {
	log    *logrus.Logger
	fields logrus.Fields
}

func newLogrusLogger(log *logrus.Logger, fields logrus.Fields) *logrusLogger {
	return &logrusLogger{
		log:    log,
		fields: fields,
	}
}

func (l *logrusLogger) Debug(args ...interface{}) {
	l.log.WithFields(l.fields).Debug(args...)
}

func (l *logrusLogger) Debugf(format string, args ...interface{}) {
	l.log.WithFields(l.fields).Debugf(format, args...)
}
