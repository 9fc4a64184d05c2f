package imaging

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/BruksfildServices01/hirely-api/internal/httperr"
)

const (
	MaxSide     = 512
	MaxUpload   = 5 << 20
	MaxPixels   = 40_000_000
	ContentType = "image/webp"
)

// ToWebP decodes jpeg, png, gif or webp input, shrinks it to fit
// MaxSide x MaxSide and encodes it as WebP. The header is checked against
// MaxPixels before any pixel buffer is allocated.
func ToWebP(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxUpload+1))
	if err != nil {
		return nil, err
	}
	if len(raw) > MaxUpload {
		return nil, httperr.ErrBusiness("image_too_large")
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, httperr.ErrBusiness("invalid_image")
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	img := fit(src, MaxSide)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fit(src image.Image, max int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return src
	}

	nw, nh := max, max
	if w > h {
		nh = h * max / w
	} else {
		nw = w * max / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
