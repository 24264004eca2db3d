package framework

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Logger is what the suite writes debug output to. *log.Logger and *CapturingLogger both
// satisfy it.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (nullLogger) Printf(string, ...interface{}) {}

// NullLogger returns a Logger that discards everything.
func NullLogger() Logger { return nullLogger{} }

// LoggerOrNull returns logger, or NullLogger() if logger is nil.
func LoggerOrNull(logger Logger) Logger {
	if logger == nil {
		return nullLogger{}
	}
	return logger
}

// CapturedMessage is one line of debug output with the time it was logged.
type CapturedMessage struct {
	Time    time.Time
	Message string
}

// CapturedOutput is the debug output of one test, in the order it was logged.
type CapturedOutput []CapturedMessage

// CapturingLogger keeps everything logged during a test so that the test logger can decide,
// once the test is over, whether to show it. The zero value is ready to use.
type CapturingLogger struct {
	lock     sync.Mutex
	messages CapturedOutput
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	m := CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)}
	l.lock.Lock()
	defer l.lock.Unlock()
	l.messages = append(l.messages, m)
}

// Output returns a copy of the messages logged so far.
func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	defer l.lock.Unlock()
	return append(CapturedOutput(nil), l.messages...)
}

// Dump writes each message on its own line, timestamped, after the given prefix.
func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		fmt.Fprintf(dest, "%s[%s] %s\n", prefix, m.Time.Format(timestampFormat), m.Message)
	}
}
