package webfile

import "fmt"

// MediaTypeJSON is the only media type that is classified.
const MediaTypeJSON = "application/json"

// MimeType is the classification of a media type reported by the host.
type MimeType int

const (
	// MimeTypeUnknown is any media type that is not classified, including an empty one.
	MimeTypeUnknown MimeType = iota
	// MimeTypeApplicationJSON is exactly "application/json".
	MimeTypeApplicationJSON
)

func (m MimeType) String() string {
	switch m {
	case MimeTypeUnknown:
		return "unknown"
	case MimeTypeApplicationJSON:
		return "json"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// ClassifyMimeType classifies a media type string by exact match.
// Parameters such as "; charset=utf-8" are not stripped, so they yield MimeTypeUnknown.
func ClassifyMimeType(mediaType string) MimeType {
	switch mediaType {
	case MediaTypeJSON:
		return MimeTypeApplicationJSON
	default:
		return MimeTypeUnknown
	}
}
