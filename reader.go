package webfile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	slogcontext "github.com/veqryn/slog-context"

	"ocm.software/open-component-model/bindings/go/webfile/host"
)

var (
	// ErrReaderConsumed is returned when a FileReader is used for a second read.
	ErrReaderConsumed = errors.New("file reader was already used")
	// ErrReadFailed is returned when the host failed the read or its result is not text.
	ErrReadFailed = errors.New("read failed")
	// ErrReadCanceled is returned when the host aborted the read before delivering a result.
	ErrReadCanceled = errors.New("read canceled")
)

// ReadState is the state of a read.
type ReadState int32

const (
	// ReadStateIdle means no read was issued yet.
	ReadStateIdle ReadState = iota
	// ReadStatePending means the read was issued and no outcome was delivered yet.
	ReadStatePending
	// ReadStateResolved means the read delivered its text.
	ReadStateResolved
	// ReadStateFailed means the read delivered an error.
	ReadStateFailed
)

func (s ReadState) String() string {
	switch s {
	case ReadStateIdle:
		return "idle"
	case ReadStatePending:
		return "pending"
	case ReadStateResolved:
		return "resolved"
	case ReadStateFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int32(s))
	}
}

// FileReader reads one blob as text through a host reader.
// A FileReader is single-use: Start may only be called once.
type FileReader struct {
	inner host.FileReader

	mu      sync.Mutex
	pending *PendingRead
}

// NewFileReader allocates a host reader.
func NewFileReader(opts ...ReaderOption) (*FileReader, error) {
	options := resolveReaderOptions(opts)
	inner, err := options.Environment.NewFileReader()
	if err != nil {
		return nil, fmt.Errorf("failed to construct file reader: %w", err)
	}
	return &FileReader{inner: inner}, nil
}

// State returns ReadStateIdle before Start and the state of the started read afterwards.
func (r *FileReader) State() ReadState {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending == nil {
		return ReadStateIdle
	}
	return r.pending.State()
}

// Start issues the read of b and returns the PendingRead that resolves with its outcome.
// The context is only used for logging; the read itself cannot be canceled once issued.
//
// The host callbacks keep references to the host reader until the first of them
// fires. Exactly one outcome is delivered, any later callback is ignored.
func (r *FileReader) Start(ctx context.Context, b ReadableBlob) (*PendingRead, error) {
	raw := b.Raw()
	logger := slogcontext.FromCtx(ctx).With(slog.String("mediaType", raw.Type()), slog.Int64("size", raw.Size()))

	r.mu.Lock()
	if r.pending != nil {
		r.mu.Unlock()
		return nil, ErrReaderConsumed
	}
	p := newPendingRead(logger)
	r.pending = p
	r.mu.Unlock()

	inner := r.inner
	inner.OnLoad(func() {
		text, ok := inner.Result()
		if !ok {
			p.resolve("", fmt.Errorf("%w: result is not text", ErrReadFailed))
			return
		}
		p.resolve(text, nil)
	})
	inner.OnError(func() {
		err := ErrReadFailed
		if hostErr := inner.Error(); hostErr != nil {
			err = fmt.Errorf("%w: %w", ErrReadFailed, hostErr)
		}
		p.resolve("", err)
	})
	inner.OnAbort(func() {
		p.resolve("", ErrReadCanceled)
	})

	logger.Log(ctx, slog.LevelDebug, "reading blob as text")
	if err := inner.ReadAsText(raw); err != nil {
		err = fmt.Errorf("%w: could not issue read: %w", ErrReadFailed, err)
		p.resolve("", err)
		return nil, err
	}
	return p, nil
}

// ReadAsString reads b as text and waits for the outcome.
func (r *FileReader) ReadAsString(ctx context.Context, b ReadableBlob) (string, error) {
	p, err := r.Start(ctx, b)
	if err != nil {
		return "", err
	}
	return p.Await(ctx)
}

// ReadAsString reads b as text with a new FileReader.
func ReadAsString(ctx context.Context, b ReadableBlob, opts ...ReaderOption) (string, error) {
	r, err := NewFileReader(opts...)
	if err != nil {
		return "", err
	}
	return r.ReadAsString(ctx, b)
}

// PendingRead is the single outcome of a read started with FileReader.Start.
// It is safe for concurrent use. Dropping a PendingRead before it resolves is safe;
// the late host callback is discarded.
type PendingRead struct {
	once   sync.Once
	done   chan struct{}
	state  atomic.Int32
	logger *slog.Logger

	text string
	err  error
}

func newPendingRead(logger *slog.Logger) *PendingRead {
	p := &PendingRead{done: make(chan struct{}), logger: logger}
	p.state.Store(int32(ReadStatePending))
	return p
}

func (p *PendingRead) resolve(text string, err error) {
	p.once.Do(func() {
		p.text, p.err = text, err
		if err != nil {
			p.state.Store(int32(ReadStateFailed))
			p.logger.Debug("read failed", slog.String("error", err.Error()))
		} else {
			p.state.Store(int32(ReadStateResolved))
			p.logger.Debug("read resolved")
		}
		close(p.done)
	})
}

// Done returns a channel that is closed once the read resolved or failed.
func (p *PendingRead) Done() <-chan struct{} {
	return p.done
}

// State returns the current state of the read.
func (p *PendingRead) State() ReadState {
	return ReadState(p.state.Load())
}

// Await blocks until the read delivered its outcome or ctx is done.
// If ctx ends first, its error is returned and the read stays pending;
// Await may be called again later and observes the same outcome.
func (p *PendingRead) Await(ctx context.Context) (string, error) {
	select {
	case <-p.done:
		return p.text, p.err
	default:
	}
	select {
	case <-p.done:
		return p.text, p.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
