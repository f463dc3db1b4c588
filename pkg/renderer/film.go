package renderer

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Film is the shared pixel grid workers write finished pixels into.
// Each pixel is written exactly once, under the film mutex; contention is
// proportional to pixel count, not sample count.
type Film struct {
	mu  sync.Mutex
	img *image.RGBA
}

// NewFilm creates a film of the given dimensions
func NewFilm(width, height int) *Film {
	return &Film{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// SetPixel writes one finished pixel. (0,0) is the top-left corner.
func (f *Film) SetPixel(i, j int, c color.RGBA) {
	f.mu.Lock()
	f.img.SetRGBA(i, j, c)
	f.mu.Unlock()
}

// Image returns the underlying image. Only call after all workers joined.
func (f *Film) Image() *image.RGBA {
	return f.img
}

// WriteJPEG encodes the film as a JPEG at quality 100, creating parent
// directories as needed
func (f *Film) WriteJPEG(path string) error {
	return WriteJPEG(f.img, path)
}

// WriteJPEG encodes an image as a JPEG at quality 100
func WriteJPEG(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create output directory %q", dir)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create output file %q", path)
	}
	defer file.Close()

	if err := jpeg.Encode(file, img, &jpeg.Options{Quality: 100}); err != nil {
		return errors.Wrapf(err, "encode %q", path)
	}
	return nil
}
