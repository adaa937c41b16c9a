// Package media resolves the site's image references: the three-state image
// wrapper, header-only probing against the static files, a TTL cache of probe
// results and gallery thumbnails.
package media

import (
	"errors"
	"fmt"
	"io/fs"
)

// State is the render state of one image instance.
type State int

const (
	StateLoading State = iota
	StateLoaded
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// ResourceLoadError reports an image that could not be fetched or decoded.
type ResourceLoadError struct {
	Src string
	Err error
}

func (e *ResourceLoadError) Error() string {
	return fmt.Sprintf("load image %q: %v", e.Src, e.Err)
}

func (e *ResourceLoadError) Unwrap() error { return e.Err }

// NotFound reports whether the image is missing rather than unreadable.
func (e *ResourceLoadError) NotFound() bool {
	return errors.Is(e.Err, fs.ErrNotExist)
}

// Info is what a successful probe learns about an image.
type Info struct {
	Format string
	Width  int
	Height int
}

// Image wraps a single image reference. It starts loading and settles once
// into loaded or errored; both are terminal.
type Image struct {
	Src string
	Alt string

	state State
	info  Info
	err   error
}

// NewImage returns an image in the loading state.
func NewImage(src, alt string) *Image {
	return &Image{Src: src, Alt: alt}
}

// Resolve settles the image: loaded when err is nil, errored otherwise.
// Calls after the first are ignored.
func (i *Image) Resolve(info Info, err error) {
	if i.state != StateLoading {
		return
	}
	if err != nil {
		i.state = StateErrored
		i.err = err
		return
	}
	i.state = StateLoaded
	i.info = info
}

// State returns the current state.
func (i *Image) State() State { return i.state }

// Info returns probe details once loaded.
func (i *Image) Info() Info { return i.info }

// Err returns the load error once errored.
func (i *Image) Err() error { return i.err }
