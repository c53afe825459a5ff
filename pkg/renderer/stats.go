package renderer

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels  int     // Total number of pixels traced
	HitPixels    int     // Pixels whose ray found a surface
	MissedPixels int     // Pixels that kept the background
	TotalSteps   int     // March steps summed over all primary rays
	MaxSteps     int     // Most steps any single primary ray took
	AverageSteps float64 // Average march steps per pixel
}

// merge folds a tile's statistics into the frame totals
func (rs *RenderStats) merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.HitPixels += other.HitPixels
	rs.MissedPixels += other.MissedPixels
	rs.TotalSteps += other.TotalSteps
	rs.MaxSteps = max(rs.MaxSteps, other.MaxSteps)
}

// finalize computes derived statistics after all tiles are merged
func (rs *RenderStats) finalize() {
	if rs.TotalPixels > 0 {
		rs.AverageSteps = float64(rs.TotalSteps) / float64(rs.TotalPixels)
	}
}
