package webfile

import "ocm.software/open-component-model/bindings/go/webfile/host"

// DataBlobOptions are the resolved options of NewDataBlob.
type DataBlobOptions struct {
	Environment host.Environment
	MediaType   string
}

// DataBlobOption configures NewDataBlob.
type DataBlobOption interface {
	ApplyToDataBlob(*DataBlobOptions)
}

// ReaderOptions are the resolved options of NewFileReader.
type ReaderOptions struct {
	Environment host.Environment
}

// ReaderOption configures NewFileReader and the helpers built on it.
type ReaderOption interface {
	ApplyToReader(*ReaderOptions)
}

// ReadAllOptions are the resolved options of ReadAll.
type ReadAllOptions struct {
	ReaderOptions
	// Concurrency limits the number of reads in flight. Zero or less means unlimited.
	Concurrency int
}

// ReadAllOption configures ReadAll.
type ReadAllOption interface {
	ApplyToReadAll(*ReadAllOptions)
}

// WithMediaType is a DataBlobOption that sets the media type the host blob is constructed with.
type WithMediaType string

func (w WithMediaType) ApplyToDataBlob(o *DataBlobOptions) {
	o.MediaType = string(w)
}

// WithConcurrency is a ReadAllOption that limits the number of concurrent reads.
type WithConcurrency int

func (w WithConcurrency) ApplyToReadAll(o *ReadAllOptions) {
	o.Concurrency = int(w)
}

// EnvironmentOption overrides the host environment of a constructor.
// It applies to NewDataBlob, NewFileReader and ReadAll alike.
type EnvironmentOption struct {
	Environment host.Environment
}

// WithEnvironment returns an EnvironmentOption for env.
// A nil env keeps the platform default.
func WithEnvironment(env host.Environment) EnvironmentOption {
	return EnvironmentOption{Environment: env}
}

func (w EnvironmentOption) ApplyToDataBlob(o *DataBlobOptions) {
	if w.Environment != nil {
		o.Environment = w.Environment
	}
}

func (w EnvironmentOption) ApplyToReader(o *ReaderOptions) {
	if w.Environment != nil {
		o.Environment = w.Environment
	}
}

func (w EnvironmentOption) ApplyToReadAll(o *ReadAllOptions) {
	w.ApplyToReader(&o.ReaderOptions)
}

func resolveReaderOptions(opts []ReaderOption) ReaderOptions {
	options := ReaderOptions{Environment: DefaultEnvironment()}
	for _, opt := range opts {
		opt.ApplyToReader(&options)
	}
	return options
}
