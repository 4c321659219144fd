// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Record is a structured diagnostic emitted when an input is rejected.
type Record struct {
	Severity log.Level
	Message  string
	Property string
	Value    string
	Err      error
}

func (r Record) String() string {
	var b strings.Builder
	b.WriteString(r.Severity.String())
	b.WriteString(": ")
	b.WriteString(r.Message)
	if r.Property != "" {
		fmt.Fprintf(&b, " property=%s", r.Property)
	}
	if r.Value != "" {
		fmt.Fprintf(&b, " value=%s", r.Value)
	}
	if r.Err != nil {
		fmt.Fprintf(&b, " err=%v", r.Err)
	}
	return b.String()
}

func (r Record) keyvals() []any {
	var kv []any
	if r.Property != "" {
		kv = append(kv, "property", r.Property)
	}
	if r.Value != "" {
		kv = append(kv, "value", r.Value)
	}
	if r.Err != nil {
		kv = append(kv, "err", r.Err)
	}
	return kv
}

// Sink receives diagnostic records.
type Sink interface {
	Emit(r Record)
}

type Options struct {
	Prefix string
	Level  string
	Format string
}

// New creates a logger writing to w. An empty level defaults to info, an
// empty format to text.
func New(w io.Writer, o Options) (*log.Logger, error) {
	level := log.InfoLevel
	if o.Level != "" {
		var err error
		level, err = log.ParseLevel(o.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", o.Level, err)
		}
	}
	var formatter log.Formatter
	switch strings.ToLower(o.Format) {
	case "", "text":
		formatter = log.TextFormatter
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	default:
		return nil, fmt.Errorf("invalid log format %q", o.Format)
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          o.Prefix,
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
	}), nil
}

// LogSink forwards records to a logger.
type LogSink struct {
	Logger *log.Logger
}

func NewLogSink(l *log.Logger) *LogSink {
	return &LogSink{Logger: l}
}

func (s *LogSink) Emit(r Record) {
	l := s.Logger
	if l == nil {
		l = log.Default()
	}
	kv := r.keyvals()
	switch {
	case r.Severity >= log.ErrorLevel:
		l.Error(r.Message, kv...)
	case r.Severity >= log.WarnLevel:
		l.Warn(r.Message, kv...)
	case r.Severity >= log.InfoLevel:
		l.Info(r.Message, kv...)
	default:
		l.Debug(r.Message, kv...)
	}
}

type multi []Sink

func (m multi) Emit(r Record) {
	for _, s := range m {
		s.Emit(r)
	}
}

// Multi returns a sink which forwards every record to all given sinks.
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

type discard struct{}

func (discard) Emit(Record) {}

// Discard drops all records.
var Discard Sink = discard{}

// Default forwards records to the default charm logger.
func Default() Sink {
	return NewLogSink(log.Default())
}
