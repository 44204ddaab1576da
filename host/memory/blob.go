// Package memory implements the host interfaces in memory.
//
// It is used wherever no browser is available: on every platform other than js/wasm and
// in tests. Readers complete asynchronously on their own goroutine, the same way a
// browser completes a read on a later turn of its event loop. Faults can be injected
// into readers to exercise the failure paths of a read.
package memory

import (
	"bytes"
	"sync"
	"time"

	"ocm.software/open-component-model/bindings/go/webfile/host"
)

var (
	_ host.Blob         = (*Blob)(nil)
	_ host.File         = (*File)(nil)
	_ host.FileList     = (*FileList)(nil)
	_ host.InputElement = (*Input)(nil)
)

// Blob is an immutable in-memory blob.
type Blob struct {
	data      []byte
	mediaType string
}

// NewBlob creates a Blob from data. The data is cloned.
func NewBlob(data []byte, mediaType string) *Blob {
	return &Blob{
		data:      bytes.Clone(data),
		mediaType: mediaType,
	}
}

func (b *Blob) Size() int64 {
	return int64(len(b.data))
}

func (b *Blob) Type() string {
	return b.mediaType
}

// Bytes returns a copy of the blob content.
func (b *Blob) Bytes() []byte {
	return bytes.Clone(b.data)
}

// File is an in-memory file.
type File struct {
	*Blob
	name     string
	modified time.Time
}

// NewFile creates a File with the given name, content, MIME type and modification time.
func NewFile(name string, data []byte, mediaType string, modified time.Time) *File {
	return &File{
		Blob:     NewBlob(data, mediaType),
		name:     name,
		modified: modified,
	}
}

func (f *File) Name() string {
	return f.name
}

func (f *File) LastModified() time.Time {
	return f.modified
}

// FileList is an in-memory file collection.
// Unlike a browser FileList it can be mutated through Append and Remove,
// which makes it possible to observe how consumers react to host side changes.
type FileList struct {
	mu    sync.RWMutex
	files []host.File
}

// NewFileList creates a FileList over the given files in order.
func NewFileList(files ...host.File) *FileList {
	return &FileList{files: append([]host.File(nil), files...)}
}

func (l *FileList) Length() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.files)
}

func (l *FileList) Item(index int) (host.File, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if index < 0 || index >= len(l.files) {
		return nil, false
	}
	return l.files[index], true
}

// Append adds files to the end of the collection.
func (l *FileList) Append(files ...host.File) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.files = append(l.files, files...)
}

// Remove drops the file at index. It is a no-op for an index out of range.
func (l *FileList) Remove(index int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.files) {
		return
	}
	l.files = append(l.files[:index], l.files[index+1:]...)
}

// Input is an in-memory file input control.
type Input struct {
	mu   sync.RWMutex
	list host.FileList
}

// NewInput creates an Input with the given collection attached.
// A nil list means that nothing is selected.
func NewInput(list host.FileList) *Input {
	return &Input{list: list}
}

func (i *Input) Files() (host.FileList, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.list == nil {
		return nil, false
	}
	return i.list, true
}

// SetFiles replaces the attached collection. A nil list clears the selection.
func (i *Input) SetFiles(list host.FileList) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.list = list
}
