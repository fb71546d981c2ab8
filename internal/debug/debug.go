// Package debug is the library's optional debug-print hook. The core
// packages never write to standard output directly; they call Printf
// here, which is a no-op until a host application installs a hook. The
// one library path that logs is geozone.LoadZonesFromJSON, which reports
// rejected registry entries through the logrus logger it is given.
package debug

import (
	"fmt"
	"sync"
)

var (
	mu   sync.RWMutex
	hook func(string)
)

// SetPrintHook installs fn as the destination for debug prints. Passing
// nil silences them again.
func SetPrintHook(fn func(string)) {
	mu.Lock()
	defer mu.Unlock()
	hook = fn
}

// Enabled reports whether a hook is installed, so callers can skip
// expensive message formatting.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return hook != nil
}

// Printf formats a message and delivers it to the installed hook, if any.
func Printf(format string, args ...any) {
	mu.RLock()
	fn := hook
	mu.RUnlock()
	if fn == nil {
		return
	}
	fn(fmt.Sprintf(format, args...))
}
