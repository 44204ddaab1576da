//go:build js && wasm

package webfile

import (
	"ocm.software/open-component-model/bindings/go/webfile/host"
	"ocm.software/open-component-model/bindings/go/webfile/host/jshost"
)

// DefaultEnvironment returns the browser environment.
func DefaultEnvironment() host.Environment {
	return jshost.Environment{}
}
