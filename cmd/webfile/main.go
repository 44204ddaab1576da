//go:build js && wasm

package main

import (
	"context"
	"os"

	"ocm.software/open-component-model/bindings/go/webfile/cmd/webfile/app"
	"ocm.software/open-component-model/bindings/go/webfile/host/jshost"
)

func main() {
	cmd := app.New(app.Options{
		Environment: jshost.Environment{},
		Export: func(ctx context.Context, name string, handler app.Handler) func() {
			return jshost.ExportPromise(ctx, name, handler)
		},
	})
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
