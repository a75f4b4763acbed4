package telnet

// Notifier receives advisory signals about session traffic. SendStarted
// fires before a physical write is attempted, ReadCompleted after a read
// yields its result, which may be empty. The signals carry no protocol
// meaning; a session without a notifier behaves identically.
type Notifier interface {
	SendStarted(text string)
	ReadCompleted(text string)
}

// FuncNotifier adapts plain functions to the Notifier interface. Nil
// fields are skipped.
type FuncNotifier struct {
	OnSend func(text string)
	OnRead func(text string)
}

func (f FuncNotifier) SendStarted(text string) {
	if f.OnSend != nil {
		f.OnSend(text)
	}
}

func (f FuncNotifier) ReadCompleted(text string) {
	if f.OnRead != nil {
		f.OnRead(text)
	}
}

type maybeNotifier struct {
	n Notifier
}

func (m *maybeNotifier) SendStarted(text string) {
	if m.n != nil {
		m.n.SendStarted(text)
	}
}

func (m *maybeNotifier) ReadCompleted(text string) {
	if m.n != nil {
		m.n.ReadCompleted(text)
	}
}
