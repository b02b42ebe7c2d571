package logger_test

import (
	"fmt"
	"strings"

	"github.com/shaelmaar/out/logger"
)

// This example routes records to a custom sink and filters below WARN.
func ExampleSimpleLogger() {
	sink := logger.SinkFunc(func(line string) error {
		// drop the timestamp to keep the output stable
		_, rest, _ := strings.Cut(line, " ")
		fmt.Println(rest)
		return nil
	})

	l := logger.NewSimpleLogger(sink, logger.LevelWarn)
	_ = l.Info("not shown")
	_ = l.Warn("disk almost full")
	_ = l.Error("disk full")
	// Output:
	// [WARN ] disk almost full
	// [ERROR] disk full
}

func ExampleParseLevel() {
	level, err := logger.ParseLevel("d")
	if err != nil {
		panic(err)
	}
	fmt.Println(level, int(level))
	// Output: DEBUG 10
}
