package utils

import (
	"io"
	"log"
	"os"
)

const (
	// Log levels
	INFO = iota
	ERROR
	DEBUG
)

type logger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
}

func NewLogger(out io.Writer) *logger {
	if out == nil {
		out = os.Stdout
	}

	return &logger{
		infoLogger:  log.New(out, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile),
		errorLogger: log.New(out, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile),
		debugLogger: log.New(out, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile),
	}
}

func (l *logger) SetOutput(w io.Writer) {
	l.infoLogger.SetOutput(w)
	l.errorLogger.SetOutput(w)
	l.debugLogger.SetOutput(w)
}

func (l *logger) Debug(args ...any) {
	l.debugLogger.Println(args...)
}

func (l *logger) Debugf(format string, args ...any) {
	l.debugLogger.Printf(format, args...)
}

func (l *logger) Info(args ...any) {
	l.infoLogger.Println(args...)
}

func (l *logger) Infof(format string, args ...any) {
	l.infoLogger.Printf(format, args...)
}

func (l *logger) Error(args ...any) {
	l.errorLogger.Println(args...)
}

func (l *logger) Errorf(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
}
