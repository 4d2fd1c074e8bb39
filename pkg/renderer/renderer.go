package renderer

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains rendering configuration
type Config struct {
	Width      int // Output image width in pixels
	Height     int // Output image height in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// Renderer drives the parallel sampling loop: rows are independent units of
// work distributed over a fixed pool of workers, each writing only its own
// disjoint rows of the pixel buffer.
type Renderer struct {
	scene  *scene.Scene
	camera *Camera
	config Config
	logger core.Logger
}

// NewRenderer validates the scene and builds the camera basis. Configuration
// errors surface here, before any ray is cast.
func NewRenderer(s *scene.Scene, config Config, logger core.Logger) (*Renderer, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("image dimensions must be positive, got %dx%d", config.Width, config.Height)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	camera, err := NewCamera(s.CameraConfig, config.Width, config.Height)
	if err != nil {
		return nil, fmt.Errorf("invalid camera: %w", err)
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		scene:  s,
		camera: camera,
		config: config,
		logger: logger,
	}, nil
}

// Render traces the whole image and returns the packed pixel buffer. Workers
// pull row indices from a channel until it drains; the context is checked
// between rows for cooperative cancellation.
func (r *Renderer) Render(ctx context.Context) (*PixelBuffer, RenderStats, error) {
	buffer := NewPixelBuffer(r.config.Width, r.config.Height)
	startTime := time.Now()

	r.logger.Printf("Rendering %dx%d, %d samples/pixel, %d workers\n",
		r.config.Width, r.config.Height, r.scene.Config.SamplesPerPixel, r.config.NumWorkers)

	rows := make(chan int, r.config.Height)
	for y := 0; y < r.config.Height; y++ {
		rows <- y
	}
	close(rows)

	rayCounts := make([]int64, r.config.NumWorkers)
	var wg sync.WaitGroup
	for worker := 0; worker < r.config.NumWorkers; worker++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			// Per-worker integrator and random source: the scene is
			// shared read-only, but ray counters and generators are not.
			tracer := integrator.NewWhitted(r.scene)
			random := rand.New(rand.NewSource(42 + int64(workerID)))
			for y := range rows {
				if ctx.Err() != nil {
					break
				}
				r.renderRow(y, buffer, tracer, random)
			}
			rayCounts[workerID] = tracer.RayCount()
		}(worker)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("render canceled: %w", err)
	}

	stats := RenderStats{
		TotalPixels: r.config.Width * r.config.Height,
		Samples:     r.scene.Config.SamplesPerPixel,
		Duration:    time.Since(startTime),
	}
	for _, count := range rayCounts {
		stats.TotalRays += count
	}

	return buffer, stats, nil
}

// renderRow traces every pixel of one row with jittered supersampling
func (r *Renderer) renderRow(y int, buffer *PixelBuffer, tracer *integrator.Whitted, random *rand.Rand) {
	samples := r.scene.Config.SamplesPerPixel
	invWidth := 1.0 / float64(r.config.Width)
	invHeight := 1.0 / float64(r.config.Height)

	for x := 0; x < r.config.Width; x++ {
		colorAccum := core.Vec3{}
		for sample := 0; sample < samples; sample++ {
			// Uniform jitter in [-0.5, 0.5) around the pixel center
			jx := random.Float64() - 0.5
			jy := random.Float64() - 0.5
			s := (float64(x) + 0.5 + jx) * invWidth
			t := (float64(y) + 0.5 + jy) * invHeight

			ray := r.camera.GetRay(s, t)
			colorAccum = colorAccum.Add(tracer.TraceRay(ray))
		}
		buffer.Set(x, y, colorAccum.Multiply(1.0/float64(samples)))
	}
}
