//go:build js && wasm

package jshost

import (
	"context"
	"syscall/js"
)

// ExportPromise installs a function under name on the global object.
// Every invocation returns a Promise that is settled with the outcome of fn,
// which runs on its own goroutine so that it may block on host callbacks.
// The returned function removes the global and releases the wrapper.
func ExportPromise(ctx context.Context, name string, fn func(ctx context.Context) (string, error)) (release func()) {
	handler := js.FuncOf(func(js.Value, []js.Value) any {
		executor := js.FuncOf(func(_ js.Value, args []js.Value) any {
			resolve, reject := args[0], args[1]
			go func() {
				out, err := fn(ctx)
				if err != nil {
					reject.Invoke(js.Global().Get("Error").New(err.Error()))
					return
				}
				resolve.Invoke(out)
			}()
			return nil
		})
		// the executor runs synchronously inside the Promise constructor
		defer executor.Release()
		return js.Global().Get("Promise").New(executor)
	})
	js.Global().Set(name, handler)
	return func() {
		js.Global().Delete(name)
		handler.Release()
	}
}
