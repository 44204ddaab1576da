//go:build !(js && wasm)

package webfile

import (
	"sync"

	"ocm.software/open-component-model/bindings/go/webfile/host"
	"ocm.software/open-component-model/bindings/go/webfile/host/memory"
)

var defaultEnvironment = sync.OnceValue(func() *memory.Environment {
	return memory.New()
})

// DefaultEnvironment returns a process wide in-memory environment,
// as there is no browser outside of js/wasm.
func DefaultEnvironment() host.Environment {
	return defaultEnvironment()
}
