// Package logging configures the op/go-logging backend used by the
// library's diagnostic output.
package logging

import (
	"os"
	"sync"

	logging "github.com/op/go-logging"
)

var (
	log  *logging.Logger
	once sync.Once
)

const format = "%{time:15:04:05.000} %{level:-7.7s} %{shortpkg:-8.8s} %{message}"

// GetLog returns the shared logger, creating and configuring it on
// first use. Diagnostic output goes to stderr at Warning level unless
// raised by the caller.
func GetLog() *logging.Logger {
	once.Do(func() {
		log = logging.MustGetLogger("chess")
		backend := logging.NewLogBackend(os.Stderr, "", 0)
		formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(format))
		leveled := logging.AddModuleLevel(formatted)
		leveled.SetLevel(logging.WARNING, "")
		log.SetBackend(leveled)
	})
	return log
}
