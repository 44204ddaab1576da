package memory

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"ocm.software/open-component-model/bindings/go/webfile/host"
)

var _ host.FileReader = (*Reader)(nil)

// ErrNotReadable is reported by readers that were configured with FaultError.
var ErrNotReadable = errors.New("NotReadableError: the requested file could not be read")

// Fault selects how a Reader completes a read.
type Fault int

const (
	// FaultNone completes the read with the text content of the blob.
	FaultNone Fault = iota
	// FaultNonText completes the read with a result that is not text.
	FaultNonText
	// FaultError fails the read with ErrNotReadable.
	FaultError
	// FaultAbort aborts the read.
	FaultAbort
	// FaultSilent never completes the read.
	FaultSilent
)

func (f Fault) String() string {
	switch f {
	case FaultNone:
		return "none"
	case FaultNonText:
		return "non-text"
	case FaultError:
		return "error"
	case FaultAbort:
		return "abort"
	case FaultSilent:
		return "silent"
	default:
		return fmt.Sprintf("unknown(%d)", int(f))
	}
}

type readyState int

const (
	stateEmpty readyState = iota
	stateLoading
	stateDone
)

// Reader is an in-memory FileReader.
// Reads complete on a separate goroutine. Exactly one callback fires per read,
// except for FaultSilent where none does.
type Reader struct {
	mu    sync.Mutex
	fault Fault
	state readyState

	onLoad, onError, onAbort func()

	result   string
	resultOK bool
	err      error
	fired    bool
}

// NewReader creates a Reader that completes reads according to fault.
func NewReader(fault Fault) *Reader {
	return &Reader{fault: fault}
}

func (r *Reader) OnLoad(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onLoad = fn
}

func (r *Reader) OnError(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onError = fn
}

func (r *Reader) OnAbort(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onAbort = fn
}

// ReadAsText begins reading a blob created by this package.
// Invalid UTF-8 sequences are replaced the way a browser decodes them.
func (r *Reader) ReadAsText(blob host.Blob) error {
	type contentAware interface{ Bytes() []byte }
	src, ok := blob.(contentAware)
	if !ok {
		return fmt.Errorf("blob %T is not backed by memory", blob)
	}

	r.mu.Lock()
	if r.state == stateLoading {
		r.mu.Unlock()
		return errors.New("InvalidStateError: a read is already in progress")
	}
	r.state = stateLoading
	r.fired = false
	r.result, r.resultOK, r.err = "", false, nil
	r.mu.Unlock()

	if r.fault == FaultSilent {
		return nil
	}

	data := src.Bytes()
	go r.complete(data)
	return nil
}

func (r *Reader) complete(data []byte) {
	switch r.fault {
	case FaultNone:
		r.finish(func() func() {
			r.result, r.resultOK = strings.ToValidUTF8(string(data), "\uFFFD"), true
			return r.onLoad
		})
	case FaultNonText:
		r.finish(func() func() {
			return r.onLoad
		})
	case FaultError:
		r.finish(func() func() {
			r.err = ErrNotReadable
			return r.onError
		})
	case FaultAbort:
		r.Abort()
	}
}

// finish records the outcome through set under lock and then fires the returned
// callback outside of it, so callbacks may call back into the reader.
func (r *Reader) finish(set func() func()) {
	r.mu.Lock()
	if r.fired || r.state != stateLoading {
		r.mu.Unlock()
		return
	}
	r.fired = true
	r.state = stateDone
	cb := set()
	r.mu.Unlock()

	if cb != nil {
		cb()
	}
}

func (r *Reader) Result() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.result, r.resultOK
}

func (r *Reader) Error() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *Reader) Abort() {
	r.finish(func() func() {
		return r.onAbort
	})
}
