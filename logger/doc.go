/*
Package logger provides a small leveled logger with a pluggable sink.

Levels, from most to least verbose:
  - LevelTrace (0)
  - LevelDebug (10)
  - LevelInfo  (20)
  - LevelWarn  (30)
  - LevelError (40)
  - LevelFatal (50)

A record is emitted only if the logger's level is at or below the level of
the record. Emitted records are formatted as

	2017-03-04T05:06:07.089Z [WARN ] disk almost full

and passed to the Sink. The default sink writes to standard output; provide
your own by implementing logger.Sink

	type Sink interface {
		Write(line string) error
	}

or by wrapping a function with [logger.SinkFunc]. Errors returned by the sink
are returned from the logging call.

Construct a [SimpleLogger] and pass it around, or use the package-level
functions, which log through the default logger (see [SetDefault]).
*/
package logger
