package app

import (
	"sync"
)

type logEntry struct {
	level     string
	component string
	message   string
	fields    map[string]interface{}
}

// recordingLogger keeps every entry for inspection.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) add(level, component, message string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level, component, message, fields})
}

func (l *recordingLogger) Info(component, message string, fields map[string]interface{}) {
	l.add("info", component, message, fields)
}

func (l *recordingLogger) Error(component string, err error, fields map[string]interface{}) {
	l.add("error", component, err.Error(), fields)
}

func (l *recordingLogger) Warning(component, message string, fields map[string]interface{}) {
	l.add("warn", component, message, fields)
}

func (l *recordingLogger) Debug(component, message string, fields map[string]interface{}) {
	l.add("debug", component, message, fields)
}

func (l *recordingLogger) find(level, message string) []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []logEntry
	for _, e := range l.entries {
		if e.level == level && e.message == message {
			out = append(out, e)
		}
	}
	return out
}
