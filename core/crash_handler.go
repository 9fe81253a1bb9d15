package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashHandler is injected by main so core stays independent of the terminal backend
var crashHandler atomic.Pointer[func(any)]

// SetCrashHandler installs the function called with the recovered value of a crashed goroutine
// The handler is expected to restore the terminal; HandleCrash prints and exits afterwards
func SetCrashHandler(fn func(any)) {
	if fn == nil {
		crashHandler.Store(nil)
		return
	}
	crashHandler.Store(&fn)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn := crashHandler.Load(); fn != nil {
		(*fn)(r)
	}

	os.Stdout.Sync()
	os.Stderr.Sync()

	// \r\n keeps the trace readable if the terminal is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()
	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
