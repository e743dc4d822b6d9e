// Package logging sets up the process-wide structured logger used by every
// other package in this engine. It wraps github.com/op/go-logging behind a
// single GetLog() accessor so callers never construct their own backend.
package logging

import (
	"os"

	logging "github.com/op/go-logging"

	"github.com/mkopp/zorro/internal/config"
)

var (
	log         *logging.Logger
	initialized = false
)

// GetLog returns the process-wide logger, configuring the backend on first
// call. Subsequent calls reset the level from config.LogLevel so that
// command line overrides applied after config.Setup() still take effect.
func GetLog() *logging.Logger {
	if !initialized {
		log = logging.MustGetLogger("zorro")
		backend := logging.NewLogBackend(os.Stdout, "", 0)
		format := logging.MustStringFormatter(
			`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
		)
		backendFormatter := logging.NewBackendFormatter(backend, format)
		leveled := logging.AddModuleLevel(backendFormatter)
		leveled.SetLevel(logging.Level(config.LogLevel), "")
		logging.SetBackend(leveled)
		initialized = true
		return log
	}
	logging.SetLevel(logging.Level(config.LogLevel), "zorro")
	return log
}
