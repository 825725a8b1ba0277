package ansiterm

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ansimd/ansimd"
)

// loadAndFit decodes the image at url (a file:// or http(s):// URL
// produced by ansimd.ResolveReference) and downsamples it to fit within
// size, mirroring the decode-then-imaging.Resize pipeline the teacher's
// fb2/images.go uses for cover art: decode whatever raster format the
// image package registry recognises, then resize with Lanczos only when
// the source exceeds the target bounds.
func loadAndFit(url string, size ansimd.TerminalSize) (image.Image, bool) {
	r, err := openResource(url)
	if err != nil {
		return nil, false
	}
	defer r.Close()

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, false
	}

	maxW, maxH := size.Width, size.Height*2
	if img.Bounds().Dx() > maxW || img.Bounds().Dy() > maxH {
		img = imaging.Fit(img, maxW, maxH, imaging.Lanczos)
	}
	return img, true
}

func openResource(url string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(url, "file://"):
		return os.Open(strings.TrimPrefix(url, "file://"))
	case strings.HasPrefix(url, "http://"), strings.HasPrefix(url, "https://"):
		resp, err := http.Get(url) //nolint:gosec // destination already passed ansimd.ResourceAccess
		if err != nil {
			return nil, err
		}
		return resp.Body, nil
	default:
		return os.Open(url)
	}
}

func encodePNG(img image.Image) ([]byte, bool) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}

// ITerm2ImageAdapter renders images inline via iTerm2's OSC 1337 File
// protocol (§4.4, §6).
type ITerm2ImageAdapter struct{}

func (ITerm2ImageAdapter) imageCap() {}

// RenderInline decodes and fits the image, then writes an iTerm2 inline
// image escape sequence. It reports false (falling back to the "(url)"
// annotation) on any decode or write failure.
func (ITerm2ImageAdapter) RenderInline(sink io.Writer, size ansimd.TerminalSize, url string) bool {
	img, ok := loadAndFit(url, size)
	if !ok {
		return false
	}
	data, ok := encodePNG(img)
	if !ok {
		return false
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	_, err := fmt.Fprintf(sink, "\x1b]1337;File=inline=1;size=%d:%s\a", len(data), encoded)
	return err == nil
}

// KittyImageAdapter renders images inline via the Kitty graphics protocol.
type KittyImageAdapter struct{}

func (KittyImageAdapter) imageCap() {}

// RenderInline decodes and fits the image, then transmits it in base64
// chunks no larger than 4096 bytes as the Kitty protocol requires.
func (KittyImageAdapter) RenderInline(sink io.Writer, size ansimd.TerminalSize, url string) bool {
	img, ok := loadAndFit(url, size)
	if !ok {
		return false
	}
	data, ok := encodePNG(img)
	if !ok {
		return false
	}
	encoded := base64.StdEncoding.EncodeToString(data)

	const chunkSize = 4096
	for i := 0; i < len(encoded); i += chunkSize {
		end := i + chunkSize
		if end > len(encoded) {
			end = len(encoded)
		}
		more := 0
		if end < len(encoded) {
			more = 1
		}
		control := "a=T,f=100"
		if i > 0 {
			control = ""
		}
		if _, err := fmt.Fprintf(sink, "\x1b_G%s,m=%d;%s\x1b\\", control, more, encoded[i:end]); err != nil {
			return false
		}
	}
	return true
}

// TerminologyImageAdapter renders images inline via Terminology's tycat
// escape sequence.
type TerminologyImageAdapter struct{}

func (TerminologyImageAdapter) imageCap() {}

// RenderInline decodes and fits the image, then emits Terminology's raw
// image-transfer escape sequence.
func (TerminologyImageAdapter) RenderInline(sink io.Writer, size ansimd.TerminalSize, url string) bool {
	img, ok := loadAndFit(url, size)
	if !ok {
		return false
	}
	data, ok := encodePNG(img)
	if !ok {
		return false
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	bounds := img.Bounds()
	_, err := fmt.Fprintf(sink, "\x1b}ic#%d;%d;%d\x00%s\x1b\\",
		bounds.Dx(), bounds.Dy(), len(data), encoded)
	return err == nil
}

var (
	_ ansimd.ImageCap = ITerm2ImageAdapter{}
	_ ansimd.ImageCap = KittyImageAdapter{}
	_ ansimd.ImageCap = TerminologyImageAdapter{}
)
