package webfile

import (
	"fmt"

	"ocm.software/open-component-model/bindings/go/blob"

	"ocm.software/open-component-model/bindings/go/webfile/host"
)

// Blob is an interface that represents any blob-like host object.
//
// Both methods are pure forwards to the host and are safe to call repeatedly.
type Blob interface {
	// Size returns the byte size reported by the host.
	Size() int64
	// MimeType returns the classification of the media type reported by the host.
	MimeType() MimeType
}

// RawBlob is an interface that exposes the host blob backing a Blob.
// It exists to hand a Blob to a FileReader and is not meant for inspection.
type RawBlob interface {
	Raw() host.Blob
}

// ReadableBlob is a Blob that can be read by a FileReader.
type ReadableBlob interface {
	Blob
	RawBlob
}

var (
	_ ReadableBlob        = (*DataBlob)(nil)
	_ blob.SizeAware      = (*DataBlob)(nil)
	_ blob.MediaTypeAware = (*DataBlob)(nil)
)

// DataBlob is a host blob constructed from a string.
// The host owns the storage of the content.
type DataBlob struct {
	inner host.Blob
}

// NewDataBlob constructs a host blob with content as its only part.
// Without WithMediaType the host reports an empty media type.
func NewDataBlob(content string, opts ...DataBlobOption) (*DataBlob, error) {
	options := DataBlobOptions{Environment: DefaultEnvironment()}
	for _, opt := range opts {
		opt.ApplyToDataBlob(&options)
	}
	inner, err := options.Environment.NewBlob([]string{content}, options.MediaType)
	if err != nil {
		return nil, fmt.Errorf("failed to construct blob: %w", err)
	}
	return &DataBlob{inner: inner}, nil
}

// Size returns the size of the blob in bytes.
func (b *DataBlob) Size() int64 {
	return b.inner.Size()
}

// MimeType classifies the media type of the blob.
func (b *DataBlob) MimeType() MimeType {
	return ClassifyMimeType(b.inner.Type())
}

// MediaType returns the media type reported by the host, which is unknown if it is empty.
func (b *DataBlob) MediaType() (string, bool) {
	return mediaTypeOf(b.inner)
}

// Raw returns the underlying host blob.
func (b *DataBlob) Raw() host.Blob {
	return b.inner
}

func mediaTypeOf(b host.Blob) (string, bool) {
	mediaType := b.Type()
	return mediaType, mediaType != ""
}
