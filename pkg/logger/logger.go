// Package logger holds the process-wide zerolog logger.
//
// Call Init once from main, then pass the returned logger down through
// constructors. Get exists for the rare place that cannot receive one.
package logger

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	instance zerolog.Logger
	once     sync.Once
	ready    bool
)

// Init configures the singleton logger for the given level and environment.
// In development the output is a human-readable console writer; everywhere
// else it is JSON on stdout. Repeated calls return the first result.
func Init(level, env string) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
		if err != nil || lvl == zerolog.NoLevel {
			lvl = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(lvl)

		logger := zerolog.New(os.Stdout)
		if env == "development" {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
		}

		instance = logger.Level(lvl).With().Timestamp().Caller().Logger()
		ready = true
	})
	return instance
}

// Get returns the singleton logger. Panics when Init has not run.
func Get() zerolog.Logger {
	if !ready {
		panic("logger: Get called before Init")
	}
	return instance
}
