// Package imageio wraps the image library used to decode, preview, crop and encode
// source images.
package imageio

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // decode-only

	"github.com/soocke/imagecrop-go/domain/crop"
)

// DefaultExtension is appended by the save dialog when the user types no extension.
const DefaultExtension = ".png"

// DefaultJPEGQuality is used when Save is given a quality outside 1..100.
const DefaultJPEGQuality = 95

// DecodeError reports a file that could not be opened as an image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode %s: %v", e.Path, e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a crop that could not be written.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string { return fmt.Sprintf("encode %s: %v", e.Path, e.Err) }
func (e *EncodeError) Unwrap() error { return e.Err }

type openOptions struct {
	autoOrient bool
}

// OpenOption configures Open.
type OpenOption func(*openOptions)

// WithAutoOrientation rotates JPEGs according to their EXIF orientation tag.
func WithAutoOrientation(enabled bool) OpenOption {
	return func(o *openOptions) { o.autoOrient = enabled }
}

// Open decodes the image at path.
func Open(path string, opts ...OpenOption) (image.Image, error) {
	var o openOptions
	for _, opt := range opts {
		opt(&o)
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(o.autoOrient))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &DecodeError{Path: path, Err: crop.ErrInvalidImageDimensions}
	}
	return img, nil
}

// Preview resamples img to the scaled size of fit with a Lanczos filter.
func Preview(img image.Image, fit crop.DisplayFit) image.Image {
	if img == nil {
		return nil
	}
	return imaging.Resize(img, fit.ScaledWidth, fit.ScaledHeight, imaging.Lanczos)
}

// Crop extracts bounds from img. Bounds are relative to the image origin.
func Crop(img image.Image, bounds crop.CropBounds) image.Image {
	if img == nil {
		return nil
	}
	r := bounds.Rect().Add(img.Bounds().Min)
	return imaging.Crop(img, r)
}

// Save encodes img to path; the format follows the file extension.
func Save(img image.Image, path string, quality int) error {
	if img == nil {
		return &EncodeError{Path: path, Err: crop.ErrNoActiveImage}
	}
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}

// FileType is one entry of a file dialog filter list.
type FileType struct {
	Name       string
	Extensions []string
}

// SaveFileTypes lists the filters offered by the save dialog.
func SaveFileTypes() []FileType {
	return []FileType{
		{Name: "PNG files", Extensions: []string{".png"}},
		{Name: "JPEG files", Extensions: []string{".jpg", ".jpeg"}},
		{Name: "All Files", Extensions: []string{"*"}},
	}
}

// OpenFileTypes lists the filters offered by the open dialog. Any file is accepted;
// the decoder decides.
func OpenFileTypes() []FileType {
	return []FileType{{Name: "All Image Files", Extensions: []string{"*"}}}
}

// SuggestName proposes a file name for the cropped output of source.
func SuggestName(source string) string {
	base := filepath.Base(source)
	if base == "." || base == string(filepath.Separator) || source == "" {
		return "crop" + DefaultExtension
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		base = "image"
	}
	return base + "_crop" + DefaultExtension
}

// Codec bundles the codec operations with the user's settings.
type Codec struct {
	AutoOrient  bool
	JPEGQuality int
}

// Open decodes path honoring AutoOrient.
func (c Codec) Open(path string) (image.Image, error) {
	return Open(path, WithAutoOrientation(c.AutoOrient))
}

// Preview resamples img for display.
func (c Codec) Preview(img image.Image, fit crop.DisplayFit) image.Image { return Preview(img, fit) }

// Crop extracts bounds from img.
func (c Codec) Crop(img image.Image, bounds crop.CropBounds) image.Image { return Crop(img, bounds) }

// Save writes img to path with the configured JPEG quality.
func (c Codec) Save(img image.Image, path string) error { return Save(img, path, c.JPEGQuality) }
