package logger

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

// Logrus implements Logger on top of logrus
type Logrus struct {
	log       *logrus.Logger
	namespace string
}

// NewLogrus creates a logger that writes to stdout.
// If levels is non-nil, it sets the level of modules it names;
// see util.ParseLogLevel.
func NewLogrus(levels map[string]logrus.Level) Logger {
	log := logrus.New()
	log.Out = os.Stdout
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	l := &Logrus{log: log}
	if lvl, ok := levels["*"]; ok {
		log.SetLevel(lvl)
	}
	return l
}

// NewLogrusNoOp creates a logger that discards everything
func NewLogrusNoOp() Logger {
	log := logrus.New()
	log.Out = ioutil.Discard
	return &Logrus{log: log}
}

// NewLogrusWithFileRotation creates a logger that writes to stdout and
// a daily rotated file at path.
func NewLogrusWithFileRotation(path string) Logger {
	log := logrus.New()
	log.Out = os.Stdout
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true}

	writer, err := rotatelogs.New(
		path+".%Y%m%d",
		rotatelogs.WithLinkName(path),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create rotating log writer: %s", err))
	}

	log.Hooks.Add(lfshook.NewHook(lfshook.WriterMap{
		logrus.DebugLevel: writer,
		logrus.InfoLevel:  writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
	}, &logrus.JSONFormatter{}))

	return &Logrus{log: log}
}

// Module returns a logger whose entries carry the given module name.
// The underlying logger (and its level) is shared.
func (l *Logrus) Module(ns string) Logger {
	return &Logrus{log: l.log, namespace: ns}
}

// SetToDebug sets the level to debug
func (l *Logrus) SetToDebug() {
	l.log.SetLevel(logrus.DebugLevel)
}

// SetToInfo sets the level to info
func (l *Logrus) SetToInfo() {
	l.log.SetLevel(logrus.InfoLevel)
}

// SetToError sets the level to error
func (l *Logrus) SetToError() {
	l.log.SetLevel(logrus.ErrorLevel)
}

func (l *Logrus) entry(keyValues []interface{}) *logrus.Entry {
	fields := logrus.Fields{}
	if l.namespace != "" {
		fields["module"] = l.namespace
	}
	for i := 0; i < len(keyValues); i += 2 {
		key := fmt.Sprintf("%v", keyValues[i])
		if i+1 < len(keyValues) {
			fields[key] = keyValues[i+1]
		} else {
			fields[key] = nil
		}
	}
	return l.log.WithFields(fields)
}

// Debug logs a message at level Debug
func (l *Logrus) Debug(msg string, keyValues ...interface{}) {
	l.entry(keyValues).Debug(msg)
}

// Info logs a message at level Info
func (l *Logrus) Info(msg string, keyValues ...interface{}) {
	l.entry(keyValues).Info(msg)
}

// Warn logs a message at level Warn
func (l *Logrus) Warn(msg string, keyValues ...interface{}) {
	l.entry(keyValues).Warn(msg)
}

// Error logs a message at level Error
func (l *Logrus) Error(msg string, keyValues ...interface{}) {
	l.entry(keyValues).Error(msg)
}

// Fatal logs a message at level Fatal then exits
func (l *Logrus) Fatal(msg string, keyValues ...interface{}) {
	l.entry(keyValues).Fatal(msg)
}
