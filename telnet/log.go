package telnet

// Log is the logging surface the session writes negotiation traffic to.
type Log interface {
	Debug(...interface{})
	Debugf(string, ...interface{})
}

type maybeLog struct {
	log Log
}

func (l *maybeLog) Debug(args ...interface{}) {
	if l.log != nil {
		l.log.Debug(args...)
	}
}

func (l *maybeLog) Debugf(fmt string, args ...interface{}) {
	if l.log != nil {
		l.log.Debugf(fmt, args...)
	}
}
