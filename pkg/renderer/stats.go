package renderer

import "time"

// RenderStats contains statistics about a completed render. Ray counts are
// accumulated per worker and reduced at the join, never shared mutable state.
type RenderStats struct {
	TotalRays   int64         // Primary, secondary and shadow rays fired
	TotalPixels int           // Width * height
	Samples     int           // Samples per pixel
	Duration    time.Duration // Wall-clock render time
}

// RaysPerPixel returns the average number of rays fired per output pixel
func (rs RenderStats) RaysPerPixel() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.TotalRays) / float64(rs.TotalPixels)
}

// TimePerRay returns the average wall-clock time spent per ray
func (rs RenderStats) TimePerRay() time.Duration {
	if rs.TotalRays == 0 {
		return 0
	}
	return rs.Duration / time.Duration(rs.TotalRays)
}
