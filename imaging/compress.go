// Package imaging normalises uploaded pictures (payment proofs, receipts,
// catalog photos) into compact JPEG data URLs.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	stddraw "image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

const (
	MaxWidth    = 800
	JPEGQuality = 70
	MaxUpload   = 10 << 20
)

var (
	ErrTooLarge    = errors.New("imaging: file too large")
	ErrNotAnImage  = errors.New("imaging: unsupported image")
	allowedFormats = map[string]bool{
		"image/png":  true,
		"image/jpeg": true,
		"image/gif":  true,
		"image/webp": true,
	}
)

// CompressReader reads at most MaxUpload bytes from r and returns a
// data:image/jpeg;base64 URL of the downscaled picture.
func CompressReader(r io.Reader) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxUpload+1))
	if err != nil {
		return "", fmt.Errorf("imaging: read upload: %w", err)
	}
	if len(raw) > MaxUpload {
		return "", ErrTooLarge
	}
	return Compress(raw)
}

// Compress decodes raw, scales it down to MaxWidth keeping the aspect ratio
// and re-encodes it as JPEG. Images narrower than MaxWidth keep their size.
func Compress(raw []byte) (string, error) {
	img, err := decode(raw)
	if err != nil {
		return "", err
	}

	out := resize(img)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return "", fmt.Errorf("imaging: encode jpeg: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func decode(raw []byte) (image.Image, error) {
	if len(raw) == 0 {
		return nil, ErrNotAnImage
	}
	if !allowedFormats[http.DetectContentType(raw)] {
		return nil, ErrNotAnImage
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err == nil {
		return img, nil
	}
	if decoded, webpErr := webp.Decode(bytes.NewReader(raw)); webpErr == nil {
		return decoded, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrNotAnImage, err)
}

func resize(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	// JPEG has no alpha; flatten onto white so transparent PNGs don't turn black.
	if w <= MaxWidth {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		stddraw.Draw(dst, dst.Bounds(), image.White, image.Point{}, stddraw.Src)
		stddraw.Draw(dst, dst.Bounds(), src, b.Min, stddraw.Over)
		return dst
	}

	newH := h * MaxWidth / w
	if newH < 1 {
		newH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, MaxWidth, newH))
	stddraw.Draw(dst, dst.Bounds(), image.White, image.Point{}, stddraw.Src)
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
