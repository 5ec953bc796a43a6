package logger

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type log struct {
	*logrus.Logger
	name string
}

type logEntity struct {
	name         string
	level        logrus.Level
	formatter    logrus.Formatter
	writer       io.Writer
	reportCaller bool
}

type FuncOpts func(*logEntity)

func WithSrvName(name string) FuncOpts {
	return func(l *logEntity) {
		l.name = name
	}
}

func WithLevel(level string) FuncOpts {
	return func(l *logEntity) {
		lv, err := logrus.ParseLevel(level)
		if err != nil {
			panic(fmt.Errorf("logrus parse level fail, level:%s, err:%+v", level, err))
		}
		l.level = lv
	}
}

func WithFormatter(formatter logrus.Formatter) FuncOpts {
	return func(l *logEntity) {
		l.formatter = formatter
	}
}

func WithWriter(writer io.Writer) FuncOpts {
	return func(l *logEntity) {
		l.writer = writer
	}
}

func WithReportCaller(caller bool) FuncOpts {
	return func(l *logEntity) {
		l.reportCaller = caller
	}
}

func New(opts ...FuncOpts) Logger {
	le := &logEntity{
		name:  "weigh",
		level: logrus.DebugLevel,
		formatter: &logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
		},
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(le)
	}
	l := logrus.New()
	l.SetFormatter(le.formatter)
	l.SetLevel(le.level)
	l.SetOutput(le.writer)
	l.SetReportCaller(le.reportCaller)
	return &log{Logger: l, name: le.name}
}

func (l *log) Log(ctx context.Context, level uint, fields map[string]interface{}, v ...interface{}) {
	var logrusLevel logrus.Level
	switch level {
	case DebugLevel:
		logrusLevel = logrus.DebugLevel
	case InfoLevel:
		logrusLevel = logrus.InfoLevel
	case WarnLevel:
		logrusLevel = logrus.WarnLevel
	case ErrorLevel:
		logrusLevel = logrus.ErrorLevel
	case FatalLevel:
		logrusLevel = logrus.FatalLevel
	case PanicLevel:
		logrusLevel = logrus.PanicLevel
	case TraceLevel:
		logrusLevel = logrus.TraceLevel
	default:
		logrusLevel = logrus.DebugLevel
	}
	if fields == nil {
		fields = map[string]interface{}{}
	}
	fields["log-name"] = l.name
	l.WithContext(ctx).WithFields(fields).Log(logrusLevel, v...)
}
