package logger

import (
	"io"
	"log"
	"os"
)

// A Sink receives fully formatted log lines. Write is called once per
// emitted record, synchronously, from the goroutine that logged.
type Sink interface {
	Write(line string) error
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(line string) error

// Write calls f(line).
func (f SinkFunc) Write(line string) error {
	return f(line)
}

// LogSink writes each line through a *log.Logger.
type LogSink struct {
	logger *log.Logger
}

var _ Sink = (*LogSink)(nil)

// NewLogSink returns a sink writing to the given logger. The logger's own
// prefix and flags are kept, so pass log.New(w, "", 0) for bare lines.
// With log.Lshortfile or log.Llongfile the reported location is the caller
// of the SimpleLogger method that emitted the record.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// NewWriterSink returns a sink writing one line per record to w.
func NewWriterSink(w io.Writer) *LogSink {
	return NewLogSink(log.New(w, "", 0))
}

// NewStdoutSink returns the default sink, which writes to standard output.
func NewStdoutSink() *LogSink {
	return NewWriterSink(os.Stdout)
}

// callDepth skips LogSink.Write, SimpleLogger.log and the exported
// SimpleLogger method.
const callDepth = 4

// Write writes line followed by a newline.
func (s *LogSink) Write(line string) error {
	return s.logger.Output(callDepth, line)
}
