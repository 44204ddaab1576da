package memory

import (
	"strings"
	"sync"

	"ocm.software/open-component-model/bindings/go/webfile/host"
)

var _ host.Environment = (*Environment)(nil)

// Environment is an in-memory host runtime.
type Environment struct {
	mu     sync.RWMutex
	inputs map[string]host.InputElement
	fault  Fault
}

// EnvironmentOption configures an Environment.
type EnvironmentOption interface {
	ApplyToEnvironment(*Environment)
}

// WithFault is an EnvironmentOption that makes every reader of the environment
// complete its reads with the given Fault.
type WithFault Fault

func (w WithFault) ApplyToEnvironment(e *Environment) {
	e.fault = Fault(w)
}

// New creates an empty Environment.
func New(opts ...EnvironmentOption) *Environment {
	e := &Environment{
		inputs: make(map[string]host.InputElement),
	}
	for _, opt := range opts {
		opt.ApplyToEnvironment(e)
	}
	return e
}

// NewBlob concatenates parts into a new Blob.
func (e *Environment) NewBlob(parts []string, mediaType string) (host.Blob, error) {
	return NewBlob([]byte(strings.Join(parts, "")), mediaType), nil
}

func (e *Environment) NewFileReader() (host.FileReader, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return NewReader(e.fault), nil
}

func (e *Environment) InputByID(id string) (host.InputElement, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	input, ok := e.inputs[id]
	return input, ok
}

// SetInput registers input under id, replacing any previous registration.
func (e *Environment) SetInput(id string, input host.InputElement) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.inputs[id] = input
}
