//go:build js && wasm

// Package jshost implements the host interfaces on top of syscall/js.
//
// Every type wraps a js.Value and forwards to the corresponding browser API.
// JavaScript exceptions thrown by the browser are recovered and returned as errors.
package jshost

import (
	"errors"
	"fmt"
	"sync"
	"syscall/js"
	"time"

	"ocm.software/open-component-model/bindings/go/webfile/host"
)

var (
	_ host.Blob         = Blob{}
	_ host.File         = File{}
	_ host.FileList     = FileList{}
	_ host.InputElement = Input{}
	_ host.FileReader   = (*Reader)(nil)
	_ host.Environment  = Environment{}
)

// Valuer is implemented by every wrapper of this package.
type Valuer interface {
	JSValue() js.Value
}

func isAbsent(v js.Value) bool {
	return v.IsNull() || v.IsUndefined()
}

// catch converts a thrown JavaScript exception into an error.
func catch(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if jsErr, ok := r.(js.Error); ok {
		*err = jsErr
		return
	}
	panic(r)
}

// Blob wraps a browser Blob.
type Blob struct {
	value js.Value
}

// NewBlob wraps an existing browser Blob.
func NewBlob(v js.Value) Blob {
	return Blob{value: v}
}

func (b Blob) JSValue() js.Value { return b.value }

// Size returns the byte size. It is read as a float, as blobs may exceed 2 GiB.
func (b Blob) Size() int64 {
	return int64(b.value.Get("size").Float())
}

func (b Blob) Type() string {
	return b.value.Get("type").String()
}

// File wraps a browser File.
type File struct {
	Blob
}

// NewFile wraps an existing browser File.
func NewFile(v js.Value) File {
	return File{Blob: Blob{value: v}}
}

func (f File) Name() string {
	return f.value.Get("name").String()
}

func (f File) LastModified() time.Time {
	return time.UnixMilli(int64(f.value.Get("lastModified").Float()))
}

// FileList wraps a browser FileList.
type FileList struct {
	value js.Value
}

// NewFileList wraps an existing browser FileList.
func NewFileList(v js.Value) FileList {
	return FileList{value: v}
}

func (l FileList) JSValue() js.Value { return l.value }

func (l FileList) Length() int {
	return l.value.Get("length").Int()
}

func (l FileList) Item(index int) (host.File, bool) {
	if index < 0 {
		return nil, false
	}
	v := l.value.Call("item", index)
	if isAbsent(v) {
		return nil, false
	}
	return NewFile(v), true
}

// Input wraps a browser HTMLInputElement of type file.
type Input struct {
	value js.Value
}

// NewInput wraps an existing browser HTMLInputElement.
func NewInput(v js.Value) Input {
	return Input{value: v}
}

func (i Input) JSValue() js.Value { return i.value }

func (i Input) Files() (host.FileList, bool) {
	v := i.value.Get("files")
	if isAbsent(v) {
		return nil, false
	}
	return NewFileList(v), true
}

// Reader wraps a browser FileReader.
//
// Callbacks are installed as js.Func values on onload, onerror and onabort.
// The first event to fire detaches and releases all of them, so the Go closures
// stay alive exactly until the read completed.
type Reader struct {
	value js.Value

	mu      sync.Mutex
	onLoad  func()
	onError func()
	onAbort func()
	funcs   []js.Func
}

// NewReader constructs a new browser FileReader.
func NewReader() (r *Reader, err error) {
	defer catch(&err)
	ctor := js.Global().Get("FileReader")
	if isAbsent(ctor) {
		return nil, errors.New("FileReader is not supported by this host")
	}
	return &Reader{value: ctor.New()}, nil
}

func (r *Reader) JSValue() js.Value { return r.value }

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

func (r *Reader) ReadAsText(blob host.Blob) (err error) {
	v, ok := blob.(Valuer)
	if !ok {
		return fmt.Errorf("blob %T is not backed by a browser object", blob)
	}
	r.install()
	defer func() {
		if err != nil {
			r.detach()
		}
	}()
	defer catch(&err)
	r.value.Call("readAsText", v.JSValue())
	return nil
}

func (r *Reader) install() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.releaseLocked()
	for _, event := range []struct {
		property string
		fn       func()
	}{
		{"onload", r.onLoad},
		{"onerror", r.onError},
		{"onabort", r.onAbort},
	} {
		fn := event.fn
		f := js.FuncOf(func(js.Value, []js.Value) any {
			r.detach()
			if fn != nil {
				fn()
			}
			return nil
		})
		r.funcs = append(r.funcs, f)
		r.value.Set(event.property, f)
	}
}

// detach removes the event handlers from the reader and releases them.
// Releasing a js.Func while it is running is permitted by syscall/js.
func (r *Reader) detach() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.releaseLocked()
}

func (r *Reader) releaseLocked() {
	if len(r.funcs) == 0 {
		return
	}
	for _, property := range []string{"onload", "onerror", "onabort"} {
		r.value.Set(property, js.Null())
	}
	for _, f := range r.funcs {
		f.Release()
	}
	r.funcs = nil
}

func (r *Reader) Result() (string, bool) {
	v := r.value.Get("result")
	if v.Type() != js.TypeString {
		return "", false
	}
	return v.String(), true
}

func (r *Reader) Error() error {
	v := r.value.Get("error")
	if isAbsent(v) {
		return nil
	}
	return fmt.Errorf("%s: %s", v.Get("name").String(), v.Get("message").String())
}

// Abort calls abort on the browser FileReader. The browser fires the abort event,
// which releases the installed callbacks like any other event.
func (r *Reader) Abort() {
	r.value.Call("abort")
}

// Environment is the browser runtime reachable through js.Global.
type Environment struct{}

// NewBlob constructs a browser Blob from string parts.
func (Environment) NewBlob(parts []string, mediaType string) (b host.Blob, err error) {
	defer catch(&err)
	seq := make([]any, len(parts))
	for i, p := range parts {
		seq[i] = p
	}
	options := map[string]any{"type": mediaType}
	return NewBlob(js.Global().Get("Blob").New(js.ValueOf(seq), js.ValueOf(options))), nil
}

func (Environment) NewFileReader() (host.FileReader, error) {
	return NewReader()
}

func (Environment) InputByID(id string) (host.InputElement, bool) {
	document := js.Global().Get("document")
	if isAbsent(document) {
		return nil, false
	}
	v := document.Call("getElementById", id)
	if isAbsent(v) {
		return nil, false
	}
	return NewInput(v), true
}
