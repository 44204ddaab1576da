package webfile

import (
	"time"

	"ocm.software/open-component-model/bindings/go/blob"

	"ocm.software/open-component-model/bindings/go/webfile/host"
)

var (
	_ ReadableBlob        = (*File)(nil)
	_ blob.SizeAware      = (*File)(nil)
	_ blob.MediaTypeAware = (*File)(nil)
)

// File is a file selected in a file input. It is obtained from a FileList.
type File struct {
	inner host.File
}

// Size returns the size of the file in bytes as reported by the host.
func (f *File) Size() int64 {
	return f.inner.Size()
}

func (f *File) MimeType() MimeType {
	return ClassifyMimeType(f.inner.Type())
}

// MediaType returns the media type reported by the host, which is unknown if it is empty.
func (f *File) MediaType() (string, bool) {
	return mediaTypeOf(f.inner)
}

// Name returns the file name without any path.
func (f *File) Name() string {
	return f.inner.Name()
}

// LastModified returns the modification time reported by the host.
// It is the zero time if the host does not know it.
func (f *File) LastModified() time.Time {
	return f.inner.LastModified()
}

// Raw returns the underlying host file.
// Because host.File embeds host.Blob, it can be read by any FileReader.
func (f *File) Raw() host.Blob {
	return f.inner
}
