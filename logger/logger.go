package logger

import (
	"context"
	"sync"
)

const (
	PanicLevel uint = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

type Logger interface {
	Log(ctx context.Context, level uint, fields map[string]interface{}, v ...interface{})
}

var (
	dl sync.RWMutex
	d  Logger = New()
)

func SetLogger(l Logger) {
	dl.Lock()
	d = l
	dl.Unlock()
}

// Log writes through the package default logger.
func Log(ctx context.Context, level uint, fields map[string]interface{}, v ...interface{}) {
	dl.RLock()
	l := d
	dl.RUnlock()
	l.Log(ctx, level, fields, v...)
}
