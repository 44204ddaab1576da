package webfile

import (
	"context"
	"strings"

	"github.com/opencontainers/go-digest"

	"ocm.software/open-component-model/bindings/go/blob/inmemory"
)

// Load reads b as text and returns its content as an inmemory.Blob.
// The media type of b is carried over if the host reports one, otherwise the
// blob keeps the inmemory default.
func Load(ctx context.Context, b ReadableBlob, opts ...ReaderOption) (*inmemory.Blob, error) {
	text, err := ReadAsString(ctx, b, opts...)
	if err != nil {
		return nil, err
	}
	var blobOpts []inmemory.MemoryBlobOption
	if mediaType, known := mediaTypeOf(b.Raw()); known {
		blobOpts = append(blobOpts, inmemory.WithMediaType(mediaType))
	}
	return inmemory.New(strings.NewReader(text), blobOpts...), nil
}

// Digest reads b as text and returns the canonical digest of the text.
func Digest(ctx context.Context, b ReadableBlob, opts ...ReaderOption) (digest.Digest, error) {
	text, err := ReadAsString(ctx, b, opts...)
	if err != nil {
		return "", err
	}
	return digest.FromString(text), nil
}
