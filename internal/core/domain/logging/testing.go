package logging

import (
	"context"
	"sync"
)

type FakeRecord struct {
	Level   string
	Message string
	Entries []LogEntry
}

type FakeLogger struct {
	Records []FakeRecord
	lock    sync.Mutex
}

func NewFakeLogger() *FakeLogger {
	return &FakeLogger{}
}

func (l *FakeLogger) Debug(ctx context.Context, msg string, entries ...LogEntry) {
	l.append("debug", msg, entries)
}

func (l *FakeLogger) Info(ctx context.Context, msg string, entries ...LogEntry) {
	l.append("info", msg, entries)
}

func (l *FakeLogger) Warning(ctx context.Context, msg string, entries ...LogEntry) {
	l.append("warning", msg, entries)
}

func (l *FakeLogger) Error(ctx context.Context, msg string, entries ...LogEntry) {
	l.append("error", msg, entries)
}

func (l *FakeLogger) RecordCount() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	return len(l.Records)
}

func (l *FakeLogger) append(level string, msg string, entries []LogEntry) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.Records = append(l.Records, FakeRecord{Level: level, Message: msg, Entries: entries})
}
