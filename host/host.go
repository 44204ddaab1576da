// Package host describes the browser objects that the webfile package forwards to.
//
// The interfaces mirror the parts of the File API that are consumed:
//   - Blob: a sized chunk of data with a declared content type.
//   - File: a Blob that originates from a user selection.
//   - FileList: the fixed, indexed collection attached to a file input.
//   - InputElement: a file input that may or may not have a collection attached.
//   - FileReader: the callback driven reader that turns a Blob into text.
//   - Environment: the constructors of the host runtime.
//
// The objects are owned by the host runtime. Implementations only forward calls and
// never copy or cache host state unless stated otherwise.
//
// Two implementations exist: package jshost forwards to syscall/js values when compiled
// for js/wasm, and package memory provides an in-memory host for every other platform.
package host

import "time"

// Blob is a host blob object.
type Blob interface {
	// Size returns the byte length reported by the host.
	Size() int64
	// Type returns the MIME type string reported by the host, which may be empty.
	Type() string
}

// File is a host file object.
type File interface {
	Blob
	// Name returns the name of the file without any path information.
	Name() string
	// LastModified returns the modification time reported by the host.
	LastModified() time.Time
}

// FileList is a host file collection.
type FileList interface {
	// Length returns the current number of files in the collection.
	Length() int
	// Item returns the file at index, or false if index is out of range.
	Item(index int) (File, bool)
}

// InputElement is a host file input control.
type InputElement interface {
	// Files returns the file collection currently associated with the input,
	// or false if there is none.
	Files() (FileList, bool)
}

// FileReader is a host asynchronous reader.
//
// A read is started with ReadAsText and completes by firing exactly one of the
// registered load, error or abort callbacks. Callbacks MUST be registered before the
// read is started. Callbacks MAY fire on a different goroutine or event loop turn than
// the one that started the read.
type FileReader interface {
	// ReadAsText begins reading the blob as text.
	// It returns an error if the read could not be issued at all.
	ReadAsText(blob Blob) error
	// OnLoad registers the callback fired when the read completed.
	OnLoad(fn func())
	// OnError registers the callback fired when the read failed.
	OnError(fn func())
	// OnAbort registers the callback fired when the read was aborted.
	OnAbort(fn func())
	// Result returns the last read result if it can be interpreted as text.
	// It is only meaningful after the load callback fired.
	Result() (text string, ok bool)
	// Error returns the error of the last failed read, if the host reported one.
	Error() error
	// Abort aborts a read in flight and fires the abort callback.
	// It is a no-op if no read is in flight.
	// Package webfile never calls it: a started read cannot be canceled, and a
	// canceled context only stops waiting for it. Abort exists so that the host page
	// or a test can end a read from outside, which webfile then reports as canceled.
	Abort()
}

// Environment provides the constructors of a host runtime.
type Environment interface {
	// NewBlob constructs a host blob from string parts and a MIME type.
	NewBlob(parts []string, mediaType string) (Blob, error)
	// NewFileReader constructs a new host reader.
	NewFileReader() (FileReader, error)
	// InputByID looks up a file input control by its element id.
	InputByID(id string) (InputElement, bool)
}
