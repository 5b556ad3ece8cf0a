package webseo

import "fmt"

// Stats describes the size change produced by minification.
type Stats struct {
	OriginalBytes int
	FinalBytes    int
	Minified      bool
}

// Reduction is the percentage of bytes removed, 0 for an empty input.
func (s Stats) Reduction() float64 {
	if s.OriginalBytes == 0 {
		return 0
	}
	return float64(s.OriginalBytes-s.FinalBytes) / float64(s.OriginalBytes) * 100
}

// String formats the stats as "<orig> bytes → <final> bytes (<pct>% reduction)".
func (s Stats) String() string {
	return fmt.Sprintf("%d bytes → %d bytes (%.1f%% reduction)", s.OriginalBytes, s.FinalBytes, s.Reduction())
}
