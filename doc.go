// Package webfile provides a thin layer over the browser File API for programs compiled to WebAssembly.
//
// When working with this package, it is important to understand the following concepts:
//   - Blob: An interface that represents anything sized with a declared media type, classified as MimeType.
//   - RawBlob: An interface that exposes the underlying host blob, used to hand a Blob to a FileReader.
//   - DataBlob: A Blob constructed in the host from a string.
//   - File: A Blob that originates from a user selection in a file input.
//   - FileList: A snapshot view over the files of a file input.
//   - FileReader: A single-use bridge that turns the callback driven browser read into a PendingRead
//     that resolves exactly once.
//
// The browser objects remain the source of truth. All types forward to the interfaces of package host,
// which is implemented by package jshost on js/wasm and by package memory everywhere else.
// The environment used by constructors defaults to the one of the current platform and can be
// overridden with WithEnvironment.
//
// Both DataBlob and File also satisfy blob.SizeAware and blob.MediaTypeAware, and Load converts any
// readable blob into an inmemory.Blob, so browser content can be used with the rest of the blob bindings.
package webfile
