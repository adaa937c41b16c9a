package media

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	"golang.org/x/image/draw"
)

const (
	// MaxThumbWidth caps the width of gallery thumbnails.
	MaxThumbWidth = 800
	jpegQuality   = 80
)

// Thumbnail decodes an image from r, resizes it down to maxWidth when wider,
// and encodes it as JPEG.
func Thumbnail(r io.Reader, maxWidth int) ([]byte, Info, error) {
	if maxWidth <= 0 {
		maxWidth = MaxThumbWidth
	}
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, Info{}, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxWidth {
		newH := h * maxWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w = maxWidth
		h = newH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, Info{}, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), Info{Format: "jpeg", Width: w, Height: h}, nil
}

// ThumbnailFile opens src on the prober's file system and thumbnails it.
func (p *Prober) ThumbnailFile(src string, maxWidth int) ([]byte, Info, error) {
	name, err := staticPath(src)
	if err != nil {
		return nil, Info{}, &ResourceLoadError{Src: src, Err: err}
	}
	f, err := p.fsys.Open(name)
	if err != nil {
		return nil, Info{}, &ResourceLoadError{Src: src, Err: err}
	}
	defer f.Close()
	data, info, err := Thumbnail(f, maxWidth)
	if err != nil {
		return nil, Info{}, &ResourceLoadError{Src: src, Err: err}
	}
	return data, info, nil
}
