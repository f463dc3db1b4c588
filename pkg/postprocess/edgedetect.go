package postprocess

import (
	"image"
	"image/color"
	"math"
	"sync"
)

// Sobel kernels, row-major 3x3
var (
	sobelGx = [9]int{-1, 0, 1, -2, 0, 2, -1, 0, 1}
	sobelGy = [9]int{-1, -2, -1, 0, 0, 0, 1, 2, 1}
)

// edgeThreshold is the gradient magnitude above which a pixel is painted
// as an edge
const edgeThreshold = 64.0

// EdgeDetect runs a Sobel edge filter over an image: pixels whose gradient
// magnitude exceeds the threshold are painted black, everything else is
// copied through, as are the border pixels. The work is split over row
// stripes {j : j mod workers == p} like the renderer's scheduler.
func EdgeDetect(src image.Image, workers int) *image.RGBA {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for p := 0; p < workers; p++ {
		wg.Add(1)
		go func(stripe int) {
			defer wg.Done()
			for j := stripe; j < height; j += workers {
				for i := 0; i < width; i++ {
					dst.SetRGBA(i, j, edgePixel(src, bounds, i, j, width, height))
				}
			}
		}(p)
	}
	wg.Wait()
	return dst
}

// edgePixel evaluates the Sobel response at (i, j)
func edgePixel(src image.Image, bounds image.Rectangle, i, j, width, height int) color.RGBA {
	center := rgbaAt(src, bounds, i, j)
	if i == 0 || j == 0 || i == width-1 || j == height-1 {
		return center
	}

	gx, gy := 0, 0
	k := 0
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			g := grayValue(rgbaAt(src, bounds, i+di, j+dj))
			gx += g * sobelGx[k]
			gy += g * sobelGy[k]
			k++
		}
	}

	if math.Sqrt(float64(gx*gx+gy*gy)) > edgeThreshold {
		return color.RGBA{A: 255}
	}
	return center
}

// grayValue is the maximum of the three channels
func grayValue(c color.RGBA) int {
	g := c.R
	if c.G > g {
		g = c.G
	}
	if c.B > g {
		g = c.B
	}
	return int(g)
}

func rgbaAt(src image.Image, bounds image.Rectangle, i, j int) color.RGBA {
	r, g, b, a := src.At(bounds.Min.X+i, bounds.Min.Y+j).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
