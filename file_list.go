package webfile

import (
	"fmt"
	"iter"

	"ocm.software/open-component-model/bindings/go/webfile/host"
)

// FileList is a view over the files of a file input.
//
// The length is captured once on construction. The host collection is assumed not
// to change for the lifetime of the FileList, which holds for browser FileList objects.
// Get always consults the host, while Len and All rely on the captured length.
// A collection that shrinks below the captured length while All is iterating is a
// programming error and panics.
type FileList struct {
	inner  host.FileList
	length int
}

// NewFileList wraps the files currently associated with input.
// It returns false if nothing is associated, for example if nothing was selected.
func NewFileList(input host.InputElement) (*FileList, bool) {
	list, ok := input.Files()
	if !ok {
		return nil, false
	}
	return FileListFromRaw(list), true
}

// FileListFromRaw wraps a host collection directly.
func FileListFromRaw(list host.FileList) *FileList {
	return &FileList{
		inner:  list,
		length: list.Length(),
	}
}

// Get returns the file at index, or false if index is out of the host collection's bounds.
func (l *FileList) Get(index int) (*File, bool) {
	f, ok := l.inner.Item(index)
	if !ok {
		return nil, false
	}
	return &File{inner: f}, true
}

// Len returns the length captured on construction.
func (l *FileList) Len() int {
	return l.length
}

// All returns a sequence over the files at 0..Len() in order.
// Each call returns a new sequence.
func (l *FileList) All() iter.Seq[*File] {
	return func(yield func(*File) bool) {
		for i := range l.length {
			f, ok := l.Get(i)
			if !ok {
				panic(fmt.Sprintf("webfile: file list changed after construction: no file at index %d of %d", i, l.length))
			}
			if !yield(f) {
				return
			}
		}
	}
}

// Slice returns all files in order.
func (l *FileList) Slice() []*File {
	files := make([]*File, 0, l.length)
	for f := range l.All() {
		files = append(files, f)
	}
	return files
}
