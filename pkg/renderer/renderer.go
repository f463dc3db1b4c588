package renderer

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"go.uber.org/zap"

	"github.com/emberline/go-path-tracer/pkg/integrator"
)

// Options configures a render
type Options struct {
	Width           int
	Height          int
	SamplesPerPixel int
	Workers         int  // Must divide Height evenly
	Quiet           bool // Suppress progress bars (tests, CI)
}

// Renderer drives the integrator over the film with one worker per stripe.
// Worker p owns the rows {j : j mod workers == p}; stripes are disjoint,
// so workers never compete for a pixel.
type Renderer struct {
	camera   *Camera
	tracer   *integrator.PathTracer
	opts     Options
	logger   *zap.Logger
	baseSeed int64
}

// NewRenderer creates a renderer over an immutable scene
func NewRenderer(camera *Camera, tracer *integrator.PathTracer, opts Options, logger *zap.Logger) (*Renderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}
	if opts.SamplesPerPixel <= 0 {
		return nil, errors.Errorf("samples per pixel must be positive, got %d", opts.SamplesPerPixel)
	}
	if opts.Workers <= 0 || opts.Height%opts.Workers != 0 {
		return nil, errors.Errorf("worker count %d must evenly divide image height %d", opts.Workers, opts.Height)
	}
	return &Renderer{
		camera:   camera,
		tracer:   tracer,
		opts:     opts,
		logger:   logger,
		baseSeed: time.Now().UnixNano(),
	}, nil
}

// Render runs all stripe workers to completion and returns the film
func (r *Renderer) Render() *Film {
	film := NewFilm(r.opts.Width, r.opts.Height)

	var progress *mpb.Progress
	var wg sync.WaitGroup
	if r.opts.Quiet {
		progress = mpb.New(mpb.WithWaitGroup(&wg), mpb.WithOutput(nil))
	} else {
		progress = mpb.New(mpb.WithWaitGroup(&wg))
	}

	start := time.Now()
	pixelsPerStripe := (r.opts.Height / r.opts.Workers) * r.opts.Width

	for p := 0; p < r.opts.Workers; p++ {
		bar := progress.AddBar(int64(pixelsPerStripe),
			mpb.PrependDecorators(
				decor.Name(fmt.Sprintf("stripe %2d", p)),
				decor.Percentage(decor.WCSyncSpace),
			),
			mpb.AppendDecorators(decor.AverageETA(decor.ET_STYLE_GO)),
		)

		wg.Add(1)
		go func(stripe int, bar *mpb.Bar) {
			defer wg.Done()
			r.renderStripe(stripe, film, bar)
		}(p, bar)
	}

	progress.Wait()
	r.logger.Info("render finished",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("workers", r.opts.Workers),
		zap.Int("samples_per_pixel", r.opts.SamplesPerPixel),
	)
	return film
}

// renderStripe renders every row j with j mod workers == stripe. Samples
// accumulate in a local register; the film sees one write per pixel.
func (r *Renderer) renderStripe(stripe int, film *Film, bar *mpb.Bar) {
	random := rand.New(rand.NewSource(r.baseSeed + int64(stripe)))
	width, height := r.opts.Width, r.opts.Height

	for j := stripe; j < height; j += r.opts.Workers {
		for i := 0; i < width; i++ {
			var accum [3]float64
			for s := 0; s < r.opts.SamplesPerPixel; s++ {
				u := (float64(i) + random.Float64()) / float64(max(width-1, 1))
				v := (float64(height-j-1) + random.Float64()) / float64(max(height-1, 1))
				ray := r.camera.GetRay(u, v, random)
				c := r.tracer.RayColor(ray, random)
				accum[0] += c.X
				accum[1] += c.Y
				accum[2] += c.Z
			}
			film.SetPixel(i, j, WriteColor(accum, r.opts.SamplesPerPixel))
			bar.Increment()
		}
	}
}

// StripeRows returns the row indices owned by a stripe
func StripeRows(stripe, workers, height int) []int {
	var rows []int
	for j := stripe; j < height; j += workers {
		rows = append(rows, j)
	}
	return rows
}
