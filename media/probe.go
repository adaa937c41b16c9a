package media

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"net/url"
	"path"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Prober checks image references against a static file system, decoding
// only the image header.
type Prober struct {
	fsys  fs.FS
	cache *ProbeCache
}

// NewProber returns a Prober over fsys with results cached for ttl.
// A zero ttl disables caching.
func NewProber(fsys fs.FS, ttl time.Duration) *Prober {
	p := &Prober{fsys: fsys}
	if ttl > 0 {
		p.cache = NewProbeCache(ttl)
	}
	return p
}

// Probe resolves src. Failures are always *ResourceLoadError.
func (p *Prober) Probe(ctx context.Context, src string) (Info, error) {
	if err := ctx.Err(); err != nil {
		return Info{}, &ResourceLoadError{Src: src, Err: err}
	}
	if p.cache == nil {
		return p.probe(src)
	}
	return p.cache.Get(src, p.probe)
}

func (p *Prober) probe(src string) (Info, error) {
	name, err := staticPath(src)
	if err != nil {
		return Info{}, &ResourceLoadError{Src: src, Err: err}
	}
	f, err := p.fsys.Open(name)
	if err != nil {
		return Info{}, &ResourceLoadError{Src: src, Err: err}
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Info{}, &ResourceLoadError{Src: src, Err: fmt.Errorf("decode header: %w", err)}
	}
	return Info{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// Load probes img.Src and settles img. It never panics and never returns an
// error: a failed probe leaves the image errored.
func (p *Prober) Load(ctx context.Context, img *Image) {
	defer func() {
		if r := recover(); r != nil {
			img.Resolve(Info{}, &ResourceLoadError{Src: img.Src, Err: fmt.Errorf("panic: %v", r)})
		}
	}()
	info, err := p.Probe(ctx, img.Src)
	img.Resolve(info, err)
}

// staticPath turns a site-relative reference such as "/images/A B.jpg" or
// "./images/A%20B.jpg" into an fs.FS path.
func staticPath(src string) (string, error) {
	if src == "" {
		return "", fmt.Errorf("empty image reference")
	}
	u, err := url.Parse(src)
	if err != nil {
		return "", fmt.Errorf("parse reference: %w", err)
	}
	if u.Scheme != "" || u.Host != "" {
		return "", fmt.Errorf("remote references are not served locally")
	}
	name := strings.TrimPrefix(path.Clean("/"+u.Path), "/")
	if !fs.ValidPath(name) || name == "." {
		return "", fmt.Errorf("invalid path %q", u.Path)
	}
	return name, nil
}
