package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(WithSrvName("test"), WithLevel("info"), WithWriter(buf))
	l.Log(context.TODO(), InfoLevel, map[string]interface{}{"weight": 42}, "dispatch weighed")
	assert.Contains(t, buf.String(), `"weight":42`)
	assert.Contains(t, buf.String(), "dispatch weighed")
	assert.Contains(t, buf.String(), `"log-name":"test"`)
}

func TestLevelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(WithLevel("warn"), WithWriter(buf))
	l.Log(context.TODO(), DebugLevel, nil, "below threshold")
	assert.Empty(t, buf.String())
	l.Log(context.TODO(), ErrorLevel, nil, "above threshold")
	assert.NotEmpty(t, buf.String())
}

func TestDefaultLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(New(WithWriter(buf)))
	Log(context.TODO(), InfoLevel, nil, "default")
	assert.Contains(t, buf.String(), "default")
}
