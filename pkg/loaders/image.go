package loaders

import (
	"image"
	_ "image/jpeg" // Register texture input formats
	_ "image/png"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/emberline/go-path-tracer/pkg/texture"
)

// LoadImageTexture decodes a bitmap file into an image texture.
// JPEG, PNG, BMP and TIFF inputs are accepted; anything the decoders can
// convert to RGB works.
func LoadImageTexture(path string) (*texture.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open texture %q", path)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "decode texture %q", path)
	}
	return texture.NewImage(img), nil
}
