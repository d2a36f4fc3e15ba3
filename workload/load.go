package workload

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/viant/afs"
)

// Loader downloads workloads from any location supported by afs, such as
// local paths, file://, mem:// or cloud storage URLs.
type Loader struct {
	fs afs.Service
}

// LoaderOption configures a [Loader].
type LoaderOption func(*Loader)

// WithFS sets the file system service used to download workloads.
func WithFS(fs afs.Service) LoaderOption {
	return func(l *Loader) {
		l.fs = fs
	}
}

// NewLoader creates a new [Loader].
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.fs == nil {
		l.fs = afs.New()
	}
	return l
}

// Load downloads and decodes the workload at URL. A URL without an extension
// is assumed to be YAML.
func (l *Loader) Load(ctx context.Context, URL string) (*Spec, error) {
	if filepath.Ext(URL) == "" {
		URL += ".yaml"
	}
	data, err := l.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("workload: failed to load %s: %w", URL, err)
	}
	spec, err := Decode(URL, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", URL, err)
	}
	return spec, nil
}

// Load downloads and decodes the workload at URL with a default [Loader].
func Load(ctx context.Context, URL string) (*Spec, error) {
	return NewLoader().Load(ctx, URL)
}
