// Package js exposes documents and their namespaces to JavaScript. It uses
// the goja JavaScript engine (pure Go ES5.1+ implementation).
package js

import (
	"fmt"
	"strings"

	"github.com/dop251/goja"
)

// ConsoleSink receives console output from scripts. The default sink writes
// to stdout.
type ConsoleSink func(level, message string)

// Runtime wraps a goja runtime with the console globals and the document
// binding used by the inspection surface.
type Runtime struct {
	vm      *goja.Runtime
	console *goja.Object
	sink    ConsoleSink
	errors  []error
}

// NewRuntime creates a JavaScript runtime with console support.
func NewRuntime() *Runtime {
	r := &Runtime{
		vm: goja.New(),
		sink: func(level, message string) {
			if level == "log" {
				fmt.Println(message)
			} else {
				fmt.Printf("[%s] %s\n", strings.ToUpper(level), message)
			}
		},
	}
	r.setupConsole()
	return r
}

// VM returns the underlying goja runtime.
func (r *Runtime) VM() *goja.Runtime {
	return r.vm
}

// SetConsoleSink redirects console output, e.g. into a test buffer.
func (r *Runtime) SetConsoleSink(sink ConsoleSink) {
	if sink != nil {
		r.sink = sink
	}
}

// SetDocument installs doc as the global `document`.
func (r *Runtime) SetDocument(doc *goja.Object) {
	r.vm.Set("document", doc)
}

// Execute runs JavaScript code and returns the result.
func (r *Runtime) Execute(code string) (result goja.Value, err error) {
	// Recover from panics in the goja parser/runtime.
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("script execution panic: %v", p)
			r.errors = append(r.errors, err)
		}
	}()

	result, err = r.vm.RunString(code)
	if err != nil {
		r.errors = append(r.errors, err)
	}
	return result, err
}

// Errors returns the errors collected from Execute calls.
func (r *Runtime) Errors() []error {
	return r.errors
}

func (r *Runtime) setupConsole() {
	console := r.vm.NewObject()
	for _, level := range []string{"log", "info", "warn", "error", "debug"} {
		level := level
		console.Set(level, func(call goja.FunctionCall) goja.Value {
			r.sink(level, formatArgs(call.Arguments))
			return goja.Undefined()
		})
	}
	r.console = console
	r.vm.Set("console", console)
}

func formatArgs(args []goja.Value) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, a.String())
	}
	return strings.Join(parts, " ")
}
